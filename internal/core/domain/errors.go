package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedDescriptor is returned when a cookbook descriptor has an empty name or an invalid version.
	ErrMalformedDescriptor = zerr.New("malformed cookbook descriptor")

	// ErrInvalidVersion is returned when a version string is not a valid semantic version.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidConstraint is returned when a version constraint cannot be parsed.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrArtifactNotFound is returned when looking up an artifact that was never registered in the graph.
	ErrArtifactNotFound = zerr.New("artifact not found")

	// ErrUnresolvedDependency is returned when a requirement has no consistent solution in the graph.
	ErrUnresolvedDependency = zerr.New("unresolved dependency")

	// ErrNoSolution is returned by a solver when no assignment satisfies every constraint.
	ErrNoSolution = zerr.New("no solution")

	// ErrSolverStepLimit is returned when the solver gives up after exhausting its search budget.
	ErrSolverStepLimit = zerr.New("solver step limit exceeded")

	// ErrConfigReadFailed is returned when the inventory file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read inventory file")

	// ErrConfigParseFailed is returned when the inventory file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse inventory file")

	// ErrNoSources is returned when the inventory file declares no cookbook sources.
	ErrNoSources = zerr.New("inventory declares no sources")

	// ErrIndexCacheCreateFailed is returned when the universe cache directory cannot be created.
	ErrIndexCacheCreateFailed = zerr.New("failed to create universe cache directory")

	// ErrIndexCacheReadFailed is returned when reading from the universe cache fails.
	ErrIndexCacheReadFailed = zerr.New("failed to read from universe cache")

	// ErrIndexCacheWriteFailed is returned when writing to the universe cache fails.
	ErrIndexCacheWriteFailed = zerr.New("failed to write to universe cache")

	// ErrIndexRequestFailed is returned when a universe request fails.
	ErrIndexRequestFailed = zerr.New("failed to fetch universe")

	// ErrIndexParseFailed is returned when a universe response cannot be parsed.
	ErrIndexParseFailed = zerr.New("failed to parse universe")

	// ErrIndexNotFound is returned when a source has no universe endpoint.
	ErrIndexNotFound = zerr.New("universe not found")

	// ErrDownloadFailed is returned when a cookbook archive cannot be downloaded.
	ErrDownloadFailed = zerr.New("failed to download cookbook")

	// ErrInventoryReadFailed is returned when the inventory directory cannot be read.
	ErrInventoryReadFailed = zerr.New("failed to read inventory")

	// ErrInventoryWriteFailed is returned when a cookbook cannot be written into the inventory.
	ErrInventoryWriteFailed = zerr.New("failed to write inventory")

	// ErrMirrorFailed is returned when mirroring the resolved cookbooks fails.
	ErrMirrorFailed = zerr.New("mirror failed")
)
