package container

import (
	"errors"
	"fmt"
)

// Sentinel errors for the format violations a replay file can exhibit.
// All of them are fatal; a file that trips one produced no partial output.
var (
	ErrBadMagic           = errors.New("unknown format signature")
	ErrUnsupportedVersion = errors.New("unsupported container version")
	ErrZeroLength         = errors.New("zero block length")
	ErrTruncated          = errors.New("file truncated")
	ErrMalformedBlock     = errors.New("block edges do not look like JSON")
)

// FormatError wraps a sentinel error with enough position context to tell
// a truncated upload apart from a genuinely foreign file.
type FormatError struct {
	Offset int
	Detail string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Offset, e.Detail)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
