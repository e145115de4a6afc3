package scaffold

import (
	"errors"
	"fmt"
)

// ErrManifestExists signals that the target directory already holds a
// manifest and is therefore an initialized package. Wrapped errors carry
// the conflicting path.
var ErrManifestExists = errors.New("manifest already exists")

// InvalidNameError reports a directory base name that is not a legal
// package identifier.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid package name %q: the directory name must be a legal identifier", e.Name)
}

// InvalidModeError reports an unrecognized init mode string.
type InvalidModeError struct {
	Input string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid init mode %q (expected library, executable, or system-module)", e.Input)
}
