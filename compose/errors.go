package compose

import "errors"

// Sentinel errors for composition.
var (
	// ErrUnknownKind is returned for a kind with no registered builder.
	ErrUnknownKind = errors.New("unknown document kind")

	// ErrNoSnapshot is returned when a snapshot-driven kind is
	// composed without a snapshot.
	ErrNoSnapshot = errors.New("request has no snapshot")

	// ErrNoTask is returned when a task-driven kind is composed with
	// an empty task description.
	ErrNoTask = errors.New("request has no task description")

	// ErrNoFiles is returned when file delivery is requested with an
	// empty file list.
	ErrNoFiles = errors.New("request has no files")

	// ErrEmptyDiff is returned when a commit-message document is
	// requested without diff text.
	ErrEmptyDiff = errors.New("request has no diff text")
)
