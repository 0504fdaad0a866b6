package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CanMove checks whether the piece on from can geometrically reach to,
// taking occupancy into account for pawns and sliding pieces. Check and
// pins are not considered here. from must hold a piece and both squares
// must be on the board.
func CanMove(board chess.Board, from, to chess.Square) error {
	piece := board.Get(from)
	errors.Precondition(piece.IsPiece(), "CanMove", "no piece on %v", from)
	errors.Precondition(to.InBounds(), "CanMove", "%v is off the board", to)

	if canPieceMove(board, piece, from, to) {
		return nil
	}
	return &errors.MoveError{Reason: errors.ReasonInvalidMove, From: from, To: to}
}

// canPieceMove applies the movement rule of the piece's type.
func canPieceMove(board chess.Board, piece chess.Piece, from, to chess.Square) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch piece.Type {
	case chess.Pawn:
		return canPawnMove(board, piece.Colour, from, to)

	case chess.Knight:
		return (colDiff == 1 && rowDiff == 2) || (colDiff == 2 && rowDiff == 1)

	case chess.Bishop:
		return isDiagonalClear(board, from, to)

	case chess.Rook:
		return isStraightClear(board, from, to)

	case chess.Queen:
		return isDiagonalClear(board, from, to) || isStraightClear(board, from, to)

	case chess.King:
		return (rowDiff != 0 || colDiff != 0) && rowDiff <= 1 && colDiff <= 1
	}

	return false
}

// canPawnMove checks pawn pushes and captures. The double step from the
// home row only requires the destination to be empty.
func canPawnMove(board chess.Board, colour chess.Colour, from, to chess.Square) bool {
	forward := chess.ColourOffset(colour)
	rowDelta := to.Row - from.Row

	if board.Get(to).IsEmpty() {
		if to.Col != from.Col {
			return false
		}
		if rowDelta == forward {
			return true
		}
		return from.Row == chess.HomeRow(colour) && rowDelta == 2*forward
	}

	// Capture a piece by moving one square forward and one square to either side
	return abs(to.Col-from.Col) == 1 && rowDelta == forward
}

// isDiagonalClear checks that the squares lie on a diagonal with nothing between them.
func isDiagonalClear(board chess.Board, from, to chess.Square) bool {
	if from == to || !IsDiagonal(from, to) {
		return false
	}
	return ClearPath(board, from, to)
}

// isStraightClear checks that the squares share a row or column with nothing between them.
func isStraightClear(board chess.Board, from, to chess.Square) bool {
	if from == to || (!IsHorizontal(from, to) && !IsVertical(from, to)) {
		return false
	}
	return ClearPath(board, from, to)
}
