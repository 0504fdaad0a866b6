package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PinDirection reports whether the piece on blocking is pinned against
// shielded, a square holding a piece of colour (normally its king). The
// shielded square must see the blocker along an empty line, and the first
// piece beyond the blocker on that line must be an enemy able to attack
// along it. The returned direction points from shielded to blocking.
func PinDirection(board chess.Board, blocking, shielded chess.Square, colour chess.Colour) (Direction, bool) {
	dir, ok := DirectionOf(shielded, blocking)
	if !ok {
		return Direction{}, false
	}
	if !ClearPath(board, shielded, blocking) {
		return Direction{}, false
	}

	beyond := DirectedRay(blocking, dir)
	if _, pinned := firstPieceOnRay(board, beyond, rayAttackers(dir, colour.Opposite())); pinned {
		return dir, true
	}
	return Direction{}, false
}
