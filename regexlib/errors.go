package regexlib

import (
	"errors"
	"fmt"
)

// NoMatch is the symbol of a non-accepting state.
const NoMatch = -1

var (
	ErrMalformedPattern = errors.New("malformed pattern")
	ErrEmptyClass       = errors.New("empty character class")
)

// PatternError describes where parsing a pattern failed.
type PatternError struct {
	Pattern string
	Offset  int
	Msg     string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d in %q", e.Err, e.Msg, e.Offset, e.Pattern)
}

func (e *PatternError) Unwrap() error { return e.Err }
