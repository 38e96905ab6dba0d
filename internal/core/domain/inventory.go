package domain

import "time"

// Inventory is the parsed inventory configuration: where to look for cookbooks
// and which cookbooks to mirror.
type Inventory struct {
	// Sources are the base URLs of the cookbook indexes, in priority order.
	Sources []string

	// Requirements are the top-level requirements in declaration order.
	// A cookbook listed with several versions yields one requirement per version.
	Requirements []Requirement
}

// InventoryEntry is the metadata record stored next to each mirrored archive.
type InventoryEntry struct {
	Name         string            `json:"name"`
	Version      Version           `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
	Source       string            `json:"source"`
	DownloadURL  string            `json:"download_url"`
	Archive      string            `json:"archive"`
	Digest       string            `json:"digest"`
	Size         int64             `json:"size"`
	MirroredAt   time.Time         `json:"mirrored_at"`
}

// MirrorReport summarises a mirroring run.
type MirrorReport struct {
	// Resolved is the deduplicated list of cookbooks selected by resolution.
	Resolved []ResolvedRequirement

	// Downloaded lists the cookbooks fetched during this run.
	Downloaded []ResolvedRequirement

	// Cached lists the resolved cookbooks that were already in the inventory.
	Cached []ResolvedRequirement
}
