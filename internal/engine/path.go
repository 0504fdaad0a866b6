package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Sign is the per-axis component of a Direction.
type Sign int

const (
	Decreasing Sign = -1
	Zero       Sign = 0
	Increasing Sign = 1
)

// String returns the name of the sign.
func (s Sign) String() string {
	switch s {
	case Decreasing:
		return "Decreasing"
	case Increasing:
		return "Increasing"
	}
	return "Zero"
}

// signOf returns the Sign of x.
func signOf(x int) Sign {
	return Sign(sign(x))
}

// Direction is one of the eight compass directions, expressed as the sign
// of the row change and the sign of the column change.
type Direction struct {
	Row Sign
	Col Sign
}

// String returns the direction as "(row, col)".
func (d Direction) String() string {
	return "(" + d.Row.String() + ", " + d.Col.String() + ")"
}

// IsZero reports whether d is the invalid (Zero, Zero) direction.
func (d Direction) IsZero() bool {
	return d.Row == Zero && d.Col == Zero
}

// IsOrthogonal reports whether d runs along a row or a column.
func (d Direction) IsOrthogonal() bool {
	return !d.IsZero() && (d.Row == Zero || d.Col == Zero)
}

// IsDiagonal reports whether d runs along a diagonal.
func (d Direction) IsDiagonal() bool {
	return d.Row != Zero && d.Col != Zero
}

// Directions lists the eight compass directions: orthogonals first, then diagonals.
var Directions = [8]Direction{
	{Increasing, Zero},
	{Decreasing, Zero},
	{Zero, Increasing},
	{Zero, Decreasing},
	{Increasing, Increasing},
	{Decreasing, Decreasing},
	{Decreasing, Increasing},
	{Increasing, Decreasing},
}

// IsHorizontal reports whether both squares are on the same row.
func IsHorizontal(from, to chess.Square) bool {
	return from.Row == to.Row
}

// IsVertical reports whether both squares are on the same column.
func IsVertical(from, to chess.Square) bool {
	return from.Col == to.Col
}

// IsDiagonal reports whether the row and column distances are equal.
func IsDiagonal(from, to chess.Square) bool {
	return abs(to.Row-from.Row) == abs(to.Col-from.Col)
}

// DirectionOf returns the direction from one square to another. It reports
// false if the squares are equal or do not share a row, column or diagonal.
// Both squares must be on the board.
func DirectionOf(from, to chess.Square) (Direction, bool) {
	errors.Precondition(from.InBounds(), "DirectionOf", "%v is off the board", from)
	errors.Precondition(to.InBounds(), "DirectionOf", "%v is off the board", to)
	if from == to {
		return Direction{}, false
	}
	if !IsHorizontal(from, to) && !IsVertical(from, to) && !IsDiagonal(from, to) {
		return Direction{}, false
	}
	return Direction{Row: signOf(to.Row - from.Row), Col: signOf(to.Col - from.Col)}, true
}

// PathBetween returns the squares strictly between from and to, ordered
// from from towards to. Adjacent squares have an empty path. The squares
// must be distinct and aligned.
func PathBetween(from, to chess.Square) []chess.Square {
	dir, ok := DirectionOf(from, to)
	errors.Precondition(ok, "PathBetween", "%v and %v are not aligned", from, to)

	var path []chess.Square
	for sq := step(from, dir); sq != to; sq = step(sq, dir) {
		path = append(path, sq)
	}
	return path
}

// DirectedRay returns the squares from the one after start up to the edge
// of the board along dir. It is empty if start is already at that edge.
func DirectedRay(start chess.Square, dir Direction) []chess.Square {
	errors.Precondition(!dir.IsZero(), "DirectedRay", "zero direction from %v", start)

	var ray []chess.Square
	for sq := step(start, dir); sq.InBounds(); sq = step(sq, dir) {
		ray = append(ray, sq)
	}
	return ray
}

// ClearPath reports whether every square strictly between from and to is empty.
func ClearPath(board chess.Board, from, to chess.Square) bool {
	for _, sq := range PathBetween(from, to) {
		if board.IsOccupied(sq) {
			return false
		}
	}
	return true
}

// step moves one square along dir.
func step(sq chess.Square, dir Direction) chess.Square {
	return sq.Offset(int(dir.Row), int(dir.Col))
}
