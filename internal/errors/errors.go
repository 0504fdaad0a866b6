// Package errors provides sentinel errors and error types for the chess
// rules engine and its front ends. It defines common error conditions and
// structured error types that preserve context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidBoardFile indicates a malformed board file.
	ErrInvalidBoardFile = errors.New("invalid board file")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoLegalMove indicates the side to move has no legal move.
	ErrNoLegalMove = errors.New("no legal move")

	// ErrNoFileName indicates a save or load without a file name.
	ErrNoFileName = errors.New("no file name given")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Reason classifies why a move was rejected.
type Reason int

const (
	ReasonOutOfBounds Reason = iota
	ReasonNoPiece
	ReasonNotYourPiece
	ReasonCaptureKing
	ReasonSquareOccupied
	ReasonInvalidMove
	ReasonStillInCheck
	ReasonSelfCheck
	ReasonPinned
	ReasonPinnedInCheck
	ReasonMustMoveKing
)

var reasonText = map[Reason]string{
	ReasonOutOfBounds:    "out of bounds",
	ReasonNoPiece:        "No piece exists in this location.",
	ReasonNotYourPiece:   "This piece does not belong to you.",
	ReasonCaptureKing:    "Cannot capture the King.",
	ReasonSquareOccupied: "Can't move here. Square occupied.",
	ReasonInvalidMove:    "Invalid move.",
	ReasonStillInCheck:   "King is still in check.",
	ReasonSelfCheck:      "King cannot place himself in check.",
	ReasonPinned:         "This piece is pinned. It cannot be moved in this direction.",
	ReasonPinnedInCheck:  "This piece is pinned. Move another piece to get King out of check.",
	ReasonMustMoveKing:   "Must move King out of check.",
}

// String returns the message shown to a player for the reason.
func (r Reason) String() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return "unknown reason"
}

// MoveError reports a rejected move. It is an ordinary, recoverable result:
// the caller reports it and asks for another move.
type MoveError struct {
	Reason Reason
	From   chess.Square
	To     chess.Square
	// Square is the square the reason refers to, for ReasonOutOfBounds.
	Square chess.Square
}

// Error returns the player-facing message for the rejection.
func (e *MoveError) Error() string {
	if e.Reason == ReasonOutOfBounds {
		return fmt.Sprintf("%s is out of bounds.", e.Square)
	}
	return e.Reason.String()
}

// Unwrap returns ErrIllegalMove so callers can use errors.Is.
func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}

// ReasonOf returns the rejection reason carried by err, if any.
func ReasonOf(err error) (Reason, bool) {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Reason, true
	}
	return 0, false
}

// ParseError represents a parsing error with file location context.
// It's used for board file decoding errors.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file name
	Line int    // Line number (1-based)
	Got  string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	// Add file location
	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	// Add underlying error
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// PreconditionError describes a caller violating an operation's contract.
// It is raised with panic, never returned: it signals a programming bug,
// not a game state problem.
type PreconditionError struct {
	Op     string
	Detail string
}

// Error returns the violated contract.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition violated: %s", e.Op, e.Detail)
}

// Precondition panics with a PreconditionError when ok is false.
func Precondition(ok bool, op, format string, args ...interface{}) {
	if !ok {
		panic(&PreconditionError{Op: op, Detail: fmt.Sprintf(format, args...)})
	}
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
