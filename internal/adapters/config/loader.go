// Package config provides the inventory configuration loader for mart.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.trai.ch/mart/internal/core/domain"
	"go.trai.ch/mart/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader for YAML inventory files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a Loader that reports recoverable problems to logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the inventory file at path.
func (l *Loader) Load(path string) (*domain.Inventory, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	inv, err := l.parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return inv, nil
}

func (l *Loader) parse(data []byte) (*domain.Inventory, error) {
	var file InventoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, err)
	}

	sources := l.sources(file.Sources)
	if len(sources) == 0 {
		return nil, zerr.Wrap(domain.ErrNoSources, "at least one source is required")
	}

	requirements, err := l.requirements(&file.Cookbooks)
	if err != nil {
		return nil, err
	}

	return &domain.Inventory{Sources: sources, Requirements: requirements}, nil
}

// sources normalizes source URLs and drops blanks and duplicates, keeping priority order.
func (l *Loader) sources(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimRight(strings.TrimSpace(s), "/")
		if s == "" {
			continue
		}
		if seen[s] {
			l.logger.Warn(fmt.Sprintf("ignoring duplicate source %s", s))
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// requirements walks the cookbooks mapping in document order.
// Each listed version becomes its own requirement.
func (l *Loader) requirements(node *yaml.Node) ([]domain.Requirement, error) {
	if node.Kind == 0 || isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "cookbooks must be a mapping"), "line", node.Line)
	}

	var reqs []domain.Requirement
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		name := strings.TrimSpace(key.Value)
		if name == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "cookbook name is empty"), "line", key.Line)
		}

		constraints, err := decodeConstraints(value)
		if err != nil {
			return nil, zerr.With(err, "cookbook", name)
		}

		for _, raw := range constraints {
			constraint, err := domain.ParseConstraint(raw)
			if err != nil {
				return nil, zerr.With(err, "cookbook", name)
			}
			reqs = append(reqs, domain.Requirement{Name: name, Constraint: constraint.String()})
		}
	}
	return reqs, nil
}

// decodeConstraints accepts a null entry, a bare constraint string or a CookbookDTO.
func decodeConstraints(node *yaml.Node) ([]string, error) {
	switch {
	case isNull(node):
		return []string{domain.DefaultConstraint}, nil
	case node.Kind == yaml.ScalarNode:
		return []string{node.Value}, nil
	case node.Kind == yaml.MappingNode:
		var dto CookbookDTO
		if err := node.Decode(&dto); err != nil {
			return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "line", node.Line)
		}
		constraints := dto.Versions
		if dto.Version != "" {
			constraints = append([]string{dto.Version}, constraints...)
		}
		if len(constraints) == 0 {
			constraints = []string{domain.DefaultConstraint}
		}
		return constraints, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "unsupported cookbook entry"), "line", node.Line)
	}
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}
