// Package inventory implements the on-disk store of mirrored cookbook archives.
package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.InventoryStore        = (*Store)(nil)
	_ ports.InventoryStoreFactory = Factory{}
)

// Store implements ports.InventoryStore as a flat directory of
// <name>-<version>.tgz archives, each with a JSON metadata record beside it.
type Store struct {
	dir     string
	mu      sync.RWMutex
	entries map[string]domain.InventoryEntry
	now     func() time.Time
}

// NewStore opens the inventory at dir, creating the directory if needed.
// Metadata records whose archive is missing are ignored.
func NewStore(dir string) (*Store, error) {
	s := &Store{
		dir:     filepath.Clean(dir),
		entries: make(map[string]domain.InventoryEntry),
		now:     time.Now,
	}
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrInventoryWriteFailed, err), "dir", s.dir)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Factory opens Stores.
type Factory struct{}

// Open implements ports.InventoryStoreFactory.
func (Factory) Open(dir string) (ports.InventoryStore, error) {
	store, err := NewStore(dir)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func baseName(name string, version domain.Version) string {
	return name + "-" + version.String()
}

// path joins file onto the inventory directory. file must be a plain file name.
func (s *Store) path(file string) (string, error) {
	if file == "" || file == "." || file == ".." || filepath.Base(file) != file {
		return "", zerr.With(zerr.Wrap(domain.ErrInventoryWriteFailed, "file escapes inventory directory"), "file", file)
	}
	return filepath.Join(s.dir, file), nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := os.ReadDir(s.dir)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrInventoryReadFailed, err), "dir", s.dir)
	}

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), domain.MetadataExt) {
			continue
		}

		path := filepath.Join(s.dir, f.Name())
		//nolint:gosec // Path is cleaned and provided by trusted caller
		data, err := os.ReadFile(path)
		if err != nil {
			return zerr.With(errors.Join(domain.ErrInventoryReadFailed, err), "path", path)
		}

		var entry domain.InventoryEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return zerr.With(errors.Join(domain.ErrInventoryReadFailed, err), "path", path)
		}

		archivePath, err := s.path(entry.Archive)
		if err != nil {
			continue
		}
		if _, err := os.Stat(archivePath); err != nil {
			continue
		}
		s.entries[baseName(entry.Name, entry.Version)] = entry
	}

	return nil
}

// Has reports whether the cookbook version is already in the inventory.
func (s *Store) Has(name string, version domain.Version) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[baseName(name, version)]
	return ok, nil
}

// Put streams archive into the inventory and records its metadata.
// The archive becomes visible only once fully written.
func (s *Store) Put(ctx context.Context, cookbook domain.RemoteCookbook, archive io.Reader) (domain.InventoryEntry, error) {
	base := baseName(cookbook.Name(), cookbook.Version())
	archiveName := base + domain.ArchiveExt

	archivePath, err := s.path(archiveName)
	if err != nil {
		return domain.InventoryEntry{}, zerr.With(err, "cookbook", base)
	}
	metaPath, err := s.path(base + domain.MetadataExt)
	if err != nil {
		return domain.InventoryEntry{}, zerr.With(err, "cookbook", base)
	}

	digest, size, err := s.writeArchive(ctx, archivePath, archive)
	if err != nil {
		return domain.InventoryEntry{}, zerr.With(err, "cookbook", base)
	}

	entry := domain.InventoryEntry{
		Name:         cookbook.Name(),
		Version:      cookbook.Version(),
		Dependencies: dependencyMap(cookbook.Dependencies()),
		Source:       cookbook.Source,
		DownloadURL:  cookbook.DownloadURL,
		Archive:      archiveName,
		Digest:       digest,
		Size:         size,
		MirroredAt:   s.now().UTC(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return domain.InventoryEntry{}, zerr.With(errors.Join(domain.ErrInventoryWriteFailed, err), "cookbook", base)
	}

	if err := s.atomicWrite(metaPath, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}); err != nil {
		return domain.InventoryEntry{}, zerr.With(errors.Join(domain.ErrInventoryWriteFailed, err), "cookbook", base)
	}

	s.mu.Lock()
	s.entries[base] = entry
	s.mu.Unlock()

	return entry, nil
}

// List returns every mirrored cookbook sorted by name and ascending version.
func (s *Store) List() ([]domain.InventoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.InventoryEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Version.Compare(out[j].Version) < 0
	})
	return out, nil
}

func (s *Store) writeArchive(ctx context.Context, path string, archive io.Reader) (string, int64, error) {
	hasher := xxhash.New()
	var size int64

	err := s.atomicWrite(path, func(w io.Writer) error {
		n, err := io.Copy(io.MultiWriter(w, hasher), contextReader{ctx: ctx, r: archive})
		size = n
		return err
	})
	if err != nil {
		return "", 0, errors.Join(domain.ErrInventoryWriteFailed, err)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), size, nil
}

// atomicWrite fills a temp file in the inventory directory and renames it over path.
func (s *Store) atomicWrite(path string, fill func(io.Writer) error) error {
	tmpFile, err := os.CreateTemp(s.dir, ".partial-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err := fill(tmpFile); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

func dependencyMap(deps []domain.Dependency) map[string]string {
	if len(deps) == 0 {
		return nil
	}
	out := make(map[string]string, len(deps))
	for _, d := range deps {
		out[d.Name] = d.Constraint
	}
	return out
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
