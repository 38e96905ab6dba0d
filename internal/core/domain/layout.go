package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppDirName is the name of the per-user cache directory.
	AppDirName = "mart"

	// UniverseDirName is the name of the universe cache directory.
	UniverseDirName = "universe"

	// InventoryFileName is the default name of the inventory configuration file.
	InventoryFileName = "inventory.yml"

	// InventoryDirName is the default directory cookbooks are mirrored into.
	InventoryDirName = "inventory"

	// ArchiveExt is the file extension of mirrored cookbook archives.
	ArchiveExt = ".tgz"

	// MetadataExt is the file extension of inventory metadata records.
	MetadataExt = ".json"

	// DefaultConstraint is used for cookbooks listed without a version.
	DefaultConstraint = ">= 0.0.0"

	// DefaultUniverseTTL is how long a cached universe is served without refetching.
	DefaultUniverseTTL = time.Hour

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the root of the per-user cache.
// It honours XDG_CACHE_HOME and falls back to the OS user cache directory.
func DefaultCachePath() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join("."+AppDirName, "cache")
}

// DefaultUniverseCachePath returns the default path for cached universes.
func DefaultUniverseCachePath() string {
	return filepath.Join(DefaultCachePath(), UniverseDirName)
}
