package engine

import "errors"

// Sentinel errors for engine configuration and execution.
var (
	// ErrEmptyScript indicates a script with no rules and no commands.
	ErrEmptyScript = errors.New("engine: script has no rules or commands")

	// ErrUnknownGenerator indicates a command names a generator this
	// engine revision does not recognize.
	ErrUnknownGenerator = errors.New("engine: unknown generator command")

	// ErrNoSeed indicates a script produced zero initial edges.
	ErrNoSeed = errors.New("engine: no seed edges produced")
)
