package engine

import "errors"

// Sentinel errors for engine operations. All of them are hard
// failures: the invocation aborts and no output is produced.
var (
	// ErrEmptyProject is returned when a scan yields zero included
	// files, leaving nothing useful to compose.
	ErrEmptyProject = errors.New("no files survived filtering")

	// ErrMissingFile is returned when an explicitly requested file
	// does not exist or cannot be read. Silently dropping it would
	// corrupt the discovery round trip.
	ErrMissingFile = errors.New("requested file missing or unreadable")

	// ErrNoChanges is returned when the git diff is empty.
	ErrNoChanges = errors.New("no git changes detected")
)
