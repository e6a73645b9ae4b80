// Package errors provides sentinel errors and error types for the chess client.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidNotation indicates a malformed position notation string.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrEmptyHistory indicates an undo was requested with no recorded moves.
	ErrEmptyHistory = errors.New("history is empty")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptySquare indicates a move whose source square holds no piece.
	ErrEmptySquare = errors.New("source square is empty")

	// ErrInvalidSquare indicates coordinates outside the 8x8 board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrLogDirectory indicates the log path exists but is not a directory.
	ErrLogDirectory = errors.New("log path is not a directory")

	// ErrEngine indicates the search engine failed to produce a move.
	ErrEngine = errors.New("engine failure")
)

// NotationError describes why a notation string could not be parsed.
// It unwraps to ErrInvalidNotation.
type NotationError struct {
	Input  string // The full notation string
	Field  string // Which field was being read ("board", "castling", ...)
	Char   rune   // The offending character, 0 if not applicable
	Reason string // Human readable detail
}

// Error returns a formatted error message including all available context.
func (e *NotationError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field+" field")
	}
	if e.Char != 0 {
		parts = append(parts, fmt.Sprintf("character %q", e.Char))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	parts = append(parts, fmt.Sprintf("in %q", e.Input))

	return fmt.Sprintf("%v: %s", ErrInvalidNotation, strings.Join(parts, ", "))
}

// Unwrap returns ErrInvalidNotation so callers can use errors.Is.
func (e *NotationError) Unwrap() error {
	return ErrInvalidNotation
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
