package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GameStatus labels a position from the point of view of the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of the status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// IsOver reports whether the game has ended.
func (s GameStatus) IsOver() bool {
	return s == Checkmate || s == Stalemate
}

// Status combines the check and no-legal-move tests for the side to move.
func Status(board chess.Board) GameStatus {
	colour := board.ToMove
	inCheck := IsInCheck(board, colour)
	if HasNoLegalMove(board, colour) {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if inCheck {
		return Check
	}
	return Ongoing
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board chess.Board) bool {
	return Status(board) == Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board chess.Board) bool {
	return Status(board) == Stalemate
}

// Winner returns the winning colour of a finished game. It reports false
// for stalemate and for games still in progress.
func Winner(board chess.Board) (chess.Colour, bool) {
	if Status(board) == Checkmate {
		return board.ToMove.Opposite(), true
	}
	return chess.White, false
}
