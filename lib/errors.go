package changewallpaperlib

import (
	"errors"
	"fmt"
)

// Exit statuses from sysexits.h
const (
	ExOK      = 0
	ExFailure = 1
	ExUsage   = 64
	ExNoInput = 66
)

var (
	ErrUsage   = errors.New("usage error")
	ErrNoInput = errors.New("input error")

	ErrPathNotFound = errors.New("path does not exist")
	ErrNotDirectory = errors.New("path is not a directory")
	ErrNoImages     = errors.New("no supported images found in directory")

	ErrEmptyCollection = errors.New("cannot pick from an empty collection")
	ErrInvalidPath     = errors.New("path is not valid UTF-8")
	ErrSetterNotFound  = errors.New("wallpaper setter not found")
)

// PathError is an input error about a user supplied path.
// It matches both its Kind and ErrNoInput with errors.Is.
type PathError struct {
	Kind error
	Path string
}

func (e *PathError) Error() string {
	return e.Kind.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Kind
}

func (e *PathError) Is(target error) bool {
	return target == ErrNoInput
}

// ExitStatusError means the setter was launched but exited unsuccessfully.
// Step counts from 1 out of Steps commands.
type ExitStatusError struct {
	Program string
	Code    int
	Step    int
	Steps   int
}

func (e *ExitStatusError) Error() string {
	if e.Steps > 1 {
		return fmt.Sprintf("%s exited with status %d (step %d of %d)",
			e.Program, e.Code, e.Step, e.Steps)
	}
	return fmt.Sprintf("%s exited with status %d", e.Program, e.Code)
}

// Final reports whether the failing command was the last one, so every
// earlier step took effect.
func (e *ExitStatusError) Final() bool {
	return e.Step >= e.Steps
}

func UsageErrorf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, a...))
}

func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExOK
	case errors.Is(err, ErrUsage):
		return ExUsage
	case errors.Is(err, ErrNoInput):
		return ExNoInput
	default:
		return ExFailure
	}
}
