package rulelang

import (
	"errors"
	"fmt"
)

// Sentinel errors for rulelang failures. Callers branch with errors.Is;
// sentinels are never wrapped with formatted text at definition site,
// only via parseErrorf at the call site (lvlath error-policy convention).
var (
	// ErrEmptyScript indicates the script contained no statements.
	ErrEmptyScript = errors.New("rulelang: empty script")

	// ErrUnknownCommand indicates an identifier before '(' is not one of
	// the recognised command names.
	ErrUnknownCommand = errors.New("rulelang: unknown command")

	// ErrArgCount indicates a command was called with the wrong number
	// of arguments.
	ErrArgCount = errors.New("rulelang: wrong argument count")

	// ErrBranchSelectorRange indicates a trailing "/k" selector fell
	// outside [0, 16].
	ErrBranchSelectorRange = errors.New("rulelang: branch selector out of range")

	// ErrMalformedRule indicates a rule statement could not be parsed
	// (missing arrow, unbalanced tuple, stray token, ...).
	ErrMalformedRule = errors.New("rulelang: malformed rule")

	// ErrMalformedTuple indicates a "(" was not followed by a
	// well-formed comma-separated list of identifiers/numbers and ")".
	ErrMalformedTuple = errors.New("rulelang: malformed tuple")

	// ErrUnexpectedToken indicates the parser found a token it could
	// not place in the current grammar position.
	ErrUnexpectedToken = errors.New("rulelang: unexpected token")

	// ErrUnknownOption indicates an unrecognised rule/command option
	// character or keyword after a trailing "/".
	ErrUnknownOption = errors.New("rulelang: unknown option")
)

// parseErrorf wraps sentinel with a byte-offset and formatted detail,
// following the corpus's "<Method>: <message>" wrapping convention.
func parseErrorf(pos int, sentinel error, format string, args ...interface{}) error {
	detail := fmt.Sprintf(format, args...)
	return fmt.Errorf("rulelang: at byte %d: %s: %w", pos, detail, sentinel)
}
