package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// HasNoLegalMove reports whether colour has no legal move at all. It tries
// every square colour occupies against every square of the board and stops
// at the first legal move. It does not distinguish checkmate from
// stalemate; see Status.
func HasNoLegalMove(board chess.Board, colour chess.Colour) bool {
	for _, from := range board.FindPieces(colour) {
		if hasLegalMoveFrom(board, from, colour) {
			return false
		}
	}
	return true
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board chess.Board, colour chess.Colour) bool {
	return !HasNoLegalMove(board, colour)
}

// hasLegalMoveFrom checks if a specific piece has any legal moves.
func hasLegalMoveFrom(board chess.Board, from chess.Square, colour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if IsLegal(board, from, chess.Sq(row, col), colour) {
				return true
			}
		}
	}
	return false
}

// LegalDestinations returns every square the piece on from may legally move
// to, in row-major order.
func LegalDestinations(board chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var targets []chess.Square
	for _, to := range chess.AllSquares() {
		if IsLegal(board, from, to, colour) {
			targets = append(targets, to)
		}
	}
	return targets
}

// LegalMoves returns every legal move for colour, ordered by origin then
// destination in row-major order.
func LegalMoves(board chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.FindPieces(colour) {
		for _, to := range LegalDestinations(board, from, colour) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}
