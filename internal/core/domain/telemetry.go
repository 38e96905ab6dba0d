package domain

// MirrorStatus is the lifecycle state of one cookbook during a mirroring run.
type MirrorStatus string

const (
	// MirrorStatusPending indicates the cookbook is waiting for a download slot.
	MirrorStatusPending MirrorStatus = "pending"
	// MirrorStatusDownloading indicates the archive is being fetched.
	MirrorStatusDownloading MirrorStatus = "downloading"
	// MirrorStatusDownloaded indicates the archive was fetched and stored.
	MirrorStatusDownloaded MirrorStatus = "downloaded"
	// MirrorStatusCached indicates the cookbook was already in the inventory.
	MirrorStatusCached MirrorStatus = "cached"
	// MirrorStatusFailed indicates the download or store step failed.
	MirrorStatusFailed MirrorStatus = "failed"
)

// IsTerminal reports whether no further transition is expected.
func (s MirrorStatus) IsTerminal() bool {
	switch s {
	case MirrorStatusDownloaded, MirrorStatusCached, MirrorStatusFailed:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
