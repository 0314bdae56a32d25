package extract

import "errors"

// Error classes for a single sheet or task. None of them aborts a run;
// callers log them and move on to the next task or sheet.
var (
	// ErrDecode marks an unreadable or corrupt sheet.
	ErrDecode = errors.New("decode error")

	// ErrInvalidRegion marks a region that does not lie inside the sheet.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrWrite marks a directory-creation or file-write failure.
	ErrWrite = errors.New("write error")
)
