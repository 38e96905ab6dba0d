package domain

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Dependency is a declared requirement of one cookbook on another.
type Dependency struct {
	// Name is the name of the cookbook depended upon.
	Name string

	// Constraint is the version range expression, e.g. ">= 1.0.0".
	Constraint string
}

// Cookbook describes one discovered cookbook at one version together with
// the dependencies it declares. It is immutable once constructed and is
// identified by its name and version.
type Cookbook struct {
	name         InternedString
	version      Version
	dependencies []Dependency
}

// cookbookName is the character set Chef allows in cookbook names.
var cookbookName = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// NewCookbook validates and builds a cookbook descriptor.
// It returns ErrMalformedDescriptor if name is empty, contains characters outside
// [A-Za-z0-9_.-], is "." or "..", or version is not a valid version.
func NewCookbook(name, version string, dependencies []Dependency) (*Cookbook, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, zerr.With(zerr.With(err, "name", name), "version", version)
	}

	v, err := ParseVersion(version)
	if err != nil {
		malformed := zerr.With(errors.Join(ErrMalformedDescriptor, err), "name", name)
		return nil, zerr.With(malformed, "version", version)
	}

	return &Cookbook{
		name:         NewInternedString(name),
		version:      v,
		dependencies: slices.Clone(dependencies),
	}, nil
}

func validateName(name string) error {
	switch {
	case name == "":
		return zerr.Wrap(ErrMalformedDescriptor, "cookbook name is empty")
	case name == "." || name == "..":
		return zerr.Wrap(ErrMalformedDescriptor, "cookbook name is a path element")
	case !cookbookName.MatchString(name):
		return zerr.Wrap(ErrMalformedDescriptor, "cookbook name has invalid characters")
	}
	return nil
}

// MustNewCookbook is like NewCookbook but panics on error.
func MustNewCookbook(name, version string, dependencies ...Dependency) *Cookbook {
	c, err := NewCookbook(name, version, dependencies)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the cookbook name.
func (c *Cookbook) Name() string {
	return c.name.String()
}

// Version returns the cookbook version.
func (c *Cookbook) Version() Version {
	return c.version
}

// Dependencies returns a copy of the declared dependencies in declaration order.
func (c *Cookbook) Dependencies() []Dependency {
	return slices.Clone(c.dependencies)
}

// String returns "name-version".
func (c *Cookbook) String() string {
	return c.Name() + "-" + c.version.String()
}

// RemoteCookbook is a cookbook discovered in a source's universe together
// with the information needed to download it.
type RemoteCookbook struct {
	*Cookbook

	// Source is the base URL of the index the cookbook was discovered in.
	Source string

	// LocationType is the index's storage type, e.g. "opscode" or "supermarket".
	LocationType string

	// DownloadURL is the URL of the cookbook's tarball.
	DownloadURL string
}
