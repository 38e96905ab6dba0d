package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// Version is a semantic cookbook version.
// It is a thin wrapper around github.com/Masterminds/semver/v3 that
// compares and prints in canonical MAJOR.MINOR.PATCH form.
type Version struct {
	v *semver.Version
}

// chefVersion matches the MAJOR[.MINOR[.PATCH]] form Chef accepts for cookbook versions.
var chefVersion = regexp.MustCompile(`^\d+(\.\d+){0,2}$`)

// ParseVersion parses a cookbook version such as "1.2.3" or "1.2".
// Missing minor and patch segments are treated as zero. A "v" prefix,
// prerelease tags and build metadata are rejected.
func ParseVersion(raw string) (Version, error) {
	trimmed := strings.TrimSpace(raw)
	if !chefVersion.MatchString(trimmed) {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersion, "expected MAJOR[.MINOR[.PATCH]]"), "version", raw)
	}
	v, err := semver.NewVersion(trimmed)
	if err != nil {
		return Version{}, zerr.With(errors.Join(ErrInvalidVersion, err), "version", raw)
	}
	return Version{v: v}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether v holds no version.
func (v Version) IsZero() bool {
	return v.v == nil
}

// String returns the canonical form of the version.
func (v Version) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.String()
}

// Compare returns -1, 0 or 1 when v is lower than, equal to or greater than o.
// The zero Version sorts before every other version.
func (v Version) Compare(o Version) int {
	switch {
	case v.v == nil && o.v == nil:
		return 0
	case v.v == nil:
		return -1
	case o.v == nil:
		return 1
	}
	return v.v.Compare(o.v)
}

// Equal reports whether v and o denote the same version.
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Constraint is a version range expression such as ">= 1.0.0" or "~> 2.1".
// Chef's pessimistic operator "~>" is honoured with Chef semantics:
//
//	~> 2      >= 2.0.0, < 3.0.0
//	~> 2.1    >= 2.1.0, < 3.0.0
//	~> 2.1.3  >= 2.1.3, < 2.2.0
//
// Partial versions with "=", "<" or "<=" are padded with zeros, so "= 1.0" means exactly 1.0.0.
type Constraint struct {
	raw string
	c   *semver.Constraints
}

// ParseConstraint parses a version range expression.
// An empty expression matches every version.
func ParseConstraint(raw string) (Constraint, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultConstraint
	}

	c, err := semver.NewConstraint(normalizeConstraint(trimmed))
	if err != nil {
		return Constraint{}, zerr.With(errors.Join(ErrInvalidConstraint, err), "constraint", raw)
	}
	return Constraint{raw: trimmed, c: c}, nil
}

// MustParseConstraint is like ParseConstraint but panics on error.
func MustParseConstraint(raw string) Constraint {
	c, err := ParseConstraint(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Check reports whether v satisfies the constraint.
func (c Constraint) Check(v Version) bool {
	if c.c == nil || v.v == nil {
		return false
	}
	return c.c.Check(v.v)
}

// String returns the expression as written.
func (c Constraint) String() string {
	return c.raw
}

var chefClause = regexp.MustCompile(`^(~>|>=|<=|!=|=|>|<)?\s*v?(\d+)(?:\.(\d+))?(?:\.(\d+))?(-[0-9A-Za-z.-]+)?$`)

// normalizeConstraint rewrites Chef-style clauses into the syntax understood by semver.
// Clauses it does not recognise are passed through untouched.
func normalizeConstraint(expr string) string {
	clauses := strings.Split(expr, ",")
	out := make([]string, 0, len(clauses))
	for _, clause := range clauses {
		clause = strings.TrimSpace(clause)
		m := chefClause.FindStringSubmatch(clause)
		if m == nil {
			out = append(out, clause)
			continue
		}
		out = append(out, rewriteClause(m[1], m[2], m[3], m[4], m[5]))
	}
	return strings.Join(out, ", ")
}

func rewriteClause(op, major, minor, patch, pre string) string {
	full := fmt.Sprintf("%s.%s.%s%s", major, orZero(minor), orZero(patch), pre)
	if op != "~>" {
		if op == "" {
			op = "="
		}
		return op + " " + full
	}

	maj, _ := strconv.ParseUint(major, 10, 64)
	switch {
	case patch != "":
		mnr, _ := strconv.ParseUint(minor, 10, 64)
		return fmt.Sprintf(">= %s, < %d.%d.0", full, maj, mnr+1)
	default:
		return fmt.Sprintf(">= %s, < %d.0.0", full, maj+1)
	}
}

func orZero(segment string) string {
	if segment == "" {
		return "0"
	}
	return segment
}
