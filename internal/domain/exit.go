// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
)

// Exit codes following Unix conventions.
const (
	ExitSuccess        = 0  // Command completed successfully
	ExitGeneralError   = 1  // General errors
	ExitUsageError     = 2  // Invalid arguments/usage
	ExitConfigError    = 3  // Configuration issues
	ExitNotFoundError  = 5  // Pokémon not found
	ExitSystemError    = 12 // Filesystem issues, lock contention
	ExitInterruptError = 14 // User Ctrl+C interrupt
	ExitNetworkError   = 11 // API unreachable or malformed
)

// ExitError provides specific exit codes for different failure modes.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps a domain error to the exit code a command should return.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNotFound):
		return ExitNotFoundError
	case errors.Is(err, ErrNetworkFailure):
		return ExitNetworkError
	case errors.Is(err, ErrEmptySearch), errors.Is(err, ErrInvalidPage):
		return ExitUsageError
	default:
		return ExitGeneralError
	}
}
