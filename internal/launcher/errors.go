package launcher

import (
	"errors"
	"fmt"
)

var (
	// ErrNothingToLaunch is returned for entries without a command
	ErrNothingToLaunch = errors.New("entry has no command")
	// ErrNoTerminalAvailable is returned when a terminal entry cannot be
	// wrapped because no known emulator is installed
	ErrNoTerminalAvailable = errors.New("no terminal emulator found")
	// ErrExecutableNotFound matches every ExecutableNotFoundError
	ErrExecutableNotFound = errors.New("executable not found")
	// ErrProcessCreation matches every ProcessError
	ErrProcessCreation = errors.New("process creation failed")
)

// ExecutableNotFoundError reports a program missing from PATH
type ExecutableNotFoundError struct {
	Name string
}

func (e *ExecutableNotFoundError) Error() string {
	return fmt.Sprintf("executable not found: %s", e.Name)
}

func (e *ExecutableNotFoundError) Is(target error) bool {
	return target == ErrExecutableNotFound
}

// ProcessError wraps an OS error raised while spawning the child
type ProcessError struct {
	Err error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("failed to start process: %v", e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

func (e *ProcessError) Is(target error) bool {
	return target == ErrProcessCreation
}
