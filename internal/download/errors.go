package download

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDirectory is returned when the form is submitted without a directory
	ErrNoDirectory = errors.New("no directory selected")

	// ErrEmptyURL is returned when the form is submitted without a URL
	ErrEmptyURL = errors.New("please enter a URL")
)

// LaunchError means the downloader could not be started
type LaunchError struct {
	Downloader string
	Err        error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Downloader, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ExitError means the downloader ran and exited with a non-zero status
type ExitError struct {
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("download failed (exit status %d): %s", e.ExitCode, e.Stderr)
}

// IsValidationError reports whether err came from form validation,
// i.e. nothing was spawned
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoDirectory) || errors.Is(err, ErrEmptyURL)
}
