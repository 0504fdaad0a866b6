package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Apply returns the position after moving the piece on from to to. The
// move is not checked for legality; validate it first. A pawn reaching
// its farthest row becomes a queen. The side to move flips and the turn
// counter advances. The input board is not modified.
func Apply(board chess.Board, from, to chess.Square) chess.Board {
	piece := board.Get(from)
	errors.Precondition(piece.IsPiece(), "Apply", "no piece on %v", from)
	errors.Precondition(to.InBounds(), "Apply", "%v is off the board", to)

	next := board
	next.Clear(from)
	if piece.Type == chess.Pawn && to.Row == chess.PromotionRow(piece.Colour) {
		piece.Type = chess.Queen
	}
	next.Set(to, piece)
	next.ToMove = board.ToMove.Opposite()
	next.Turn = board.Turn + 1
	return next
}

// ApplyMove validates the move for the side to move and applies it.
func ApplyMove(board chess.Board, move chess.Move) (chess.Board, error) {
	if err := Validate(board, move.From, move.To, board.ToMove); err != nil {
		return board, err
	}
	return Apply(board, move.From, move.To), nil
}
