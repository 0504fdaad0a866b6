package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// attackerClass matches the pieces that attack along one class of ray.
type attackerClass struct {
	straight bool // rook-like when true, bishop-like otherwise
	colour   chess.Colour
}

// rayAttackers returns the class of pieces of the colour that attack along dir.
func rayAttackers(dir Direction, colour chess.Colour) attackerClass {
	errors.Precondition(!dir.IsZero(), "rayAttackers", "zero direction")
	return attackerClass{straight: dir.IsOrthogonal(), colour: colour}
}

// matches reports whether the piece attacks along the class's rays.
func (a attackerClass) matches(p chess.Piece) bool {
	if !p.IsPiece() || p.Colour != a.colour {
		return false
	}
	if p.Type == chess.Queen {
		return true
	}
	if a.straight {
		return p.Type == chess.Rook
	}
	return p.Type == chess.Bishop
}

// firstPieceOnRay walks the squares in order and stops at the first piece.
// It reports that piece's square only when the class matches it; pieces
// further along are never looked at.
func firstPieceOnRay(board chess.Board, squares []chess.Square, class attackerClass) (chess.Square, bool) {
	for _, sq := range squares {
		p := board.Get(sq)
		if !p.IsPiece() {
			continue
		}
		if class.matches(p) {
			return sq, true
		}
		return chess.Square{}, false
	}
	return chess.Square{}, false
}

var (
	knightOffsets = [8][2]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingOffsets   = [8][2]int{{1, -1}, {1, 0}, {1, 1}, {0, -1}, {0, 1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

// pawnAttackOffsets returns the offsets from a king of the colour to the
// squares an enemy pawn would capture from.
func pawnAttackOffsets(kingColour chess.Colour) [2][2]int {
	if kingColour == chess.White {
		return [2][2]int{{1, 1}, {1, -1}}
	}
	return [2][2]int{{-1, 1}, {-1, -1}}
}

// AttackersOf returns every square holding an enemy piece that attacks a
// king of kingColour standing on kingSquare. The king need not actually be
// there; the scan only looks at the other squares. Ranged attackers come
// first, then pawns, knights and kings.
func AttackersOf(board chess.Board, kingSquare chess.Square, kingColour chess.Colour) []chess.Square {
	enemy := kingColour.Opposite()

	var attackers []chess.Square
	attackers = append(attackers, rangedAttackers(board, kingSquare, enemy)...)

	pawnOffsets := pawnAttackOffsets(kingColour)
	attackers = append(attackers, relativeAttackers(board, kingSquare, pawnOffsets[:], chess.Piece{Type: chess.Pawn, Colour: enemy})...)
	attackers = append(attackers, relativeAttackers(board, kingSquare, knightOffsets[:], chess.Piece{Type: chess.Knight, Colour: enemy})...)
	attackers = append(attackers, relativeAttackers(board, kingSquare, kingOffsets[:], chess.Piece{Type: chess.King, Colour: enemy})...)
	return attackers
}

// CountAttackers returns the number of enemy pieces attacking the square.
func CountAttackers(board chess.Board, kingSquare chess.Square, kingColour chess.Colour) int {
	return len(AttackersOf(board, kingSquare, kingColour))
}

// IsInCheck returns true if the given colour's king is attacked. A colour
// without a king on the board is never in check.
func IsInCheck(board chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return CountAttackers(board, king, colour) > 0
}

// rangedAttackers checks the eight rays from the square for sliding attackers.
func rangedAttackers(board chess.Board, sq chess.Square, enemy chess.Colour) []chess.Square {
	var found []chess.Square
	for _, dir := range Directions {
		ray := DirectedRay(sq, dir)
		if at, ok := firstPieceOnRay(board, ray, rayAttackers(dir, enemy)); ok {
			found = append(found, at)
		}
	}
	return found
}

// relativeAttackers checks single squares at fixed offsets for the attacker piece.
func relativeAttackers(board chess.Board, sq chess.Square, offsets [][2]int, attacker chess.Piece) []chess.Square {
	var found []chess.Square
	for _, off := range offsets {
		target := sq.Offset(off[0], off[1])
		if target.InBounds() && board.Get(target) == attacker {
			found = append(found, target)
		}
	}
	return found
}
