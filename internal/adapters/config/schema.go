package config

import "gopkg.in/yaml.v3"

// InventoryFile represents the structure of the inventory.yml configuration file.
type InventoryFile struct {
	Sources []string `yaml:"sources"`

	// Cookbooks is kept as a raw node so that document order survives decoding.
	Cookbooks yaml.Node `yaml:"cookbooks"`
}

// CookbookDTO represents a single cookbook entry of the inventory file.
type CookbookDTO struct {
	Version  string   `yaml:"version"`
	Versions []string `yaml:"versions"`
}
