package supermarket

import "time"

// universeResponse is the body of GET <source>/universe:
// cookbook name → version → entry.
type universeResponse map[string]map[string]universeEntry

// universeEntry describes a single published cookbook version.
type universeEntry struct {
	LocationType string            `json:"location_type"`
	LocationPath string            `json:"location_path"`
	DownloadURL  string            `json:"download_url"`
	Dependencies map[string]string `json:"dependencies"`
}

// cacheEntry is the on-disk representation of a cached universe.
type cacheEntry struct {
	Source    string           `json:"source"`
	Universe  universeResponse `json:"universe"`
	Timestamp time.Time        `json:"timestamp"`
}
