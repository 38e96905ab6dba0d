package domain

// Requirement is a top-level ask for a cookbook whose version satisfies a range,
// e.g. {Name: "apt", Constraint: "~> 2.0"}.
type Requirement struct {
	Name       string
	Constraint string
}

// String returns "name (constraint)".
func (r Requirement) String() string {
	return r.Name + " (" + r.Constraint + ")"
}

// ResolvedRequirement is a concrete cookbook version selected to satisfy a requirement.
type ResolvedRequirement struct {
	Name    string
	Version Version
}

// String returns "name-version".
func (r ResolvedRequirement) String() string {
	return r.Name + "-" + r.Version.String()
}
