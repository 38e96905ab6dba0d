package inventory

// PathForTest exposes the inventory path check for testing.
func (s *Store) PathForTest(file string) (string, error) {
	return s.path(file)
}
