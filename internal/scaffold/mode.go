package scaffold

import "strings"

// InitMode selects the kind of package skeleton to generate.
type InitMode int

const (
	// ModeLibrary generates a source library with a test suite stub.
	ModeLibrary InitMode = iota
	// ModeExecutable generates a runnable program.
	ModeExecutable
	// ModeSystemModule generates a wrapper around a pre-built system
	// library: a module map and nothing to compile.
	ModeSystemModule
)

// Modes returns every init mode in declaration order.
func Modes() []InitMode {
	return []InitMode{ModeLibrary, ModeExecutable, ModeSystemModule}
}

// String returns the canonical spelling of the mode, which ParseMode
// accepts back.
func (m InitMode) String() string {
	switch m {
	case ModeLibrary:
		return "library"
	case ModeExecutable:
		return "executable"
	case ModeSystemModule:
		return "system-module"
	default:
		return "unknown"
	}
}

// Description returns a one-line summary of what the mode generates.
func (m InitMode) Description() string {
	switch m {
	case ModeLibrary:
		return "a source library with a test suite stub"
	case ModeExecutable:
		return "a runnable program"
	case ModeSystemModule:
		return "a wrapper around a system library"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode string to an InitMode. Matching is
// case-insensitive; unrecognized input returns an *InvalidModeError
// carrying the raw string.
func ParseMode(s string) (InitMode, error) {
	switch strings.ToLower(s) {
	case "library":
		return ModeLibrary, nil
	case "executable":
		return ModeExecutable, nil
	case "system-module":
		return ModeSystemModule, nil
	default:
		return 0, &InvalidModeError{Input: s}
	}
}
