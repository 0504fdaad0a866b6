// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour converts "White" or "Black" to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "White":
		return White, true
	case "Black":
		return Black, true
	}
	return Black, false
}

// PieceType represents the kind of piece occupying a square.
type PieceType int

const (
	Empty PieceType = iota // Empty square
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
	Off // Returned for squares off the board
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King", "Off"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'.', 'P', 'R', 'N', 'B', 'Q', 'K', ' '}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Piece is a piece type paired with its colour. The zero value is an
// empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// IsEmpty reports whether the square holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// IsPiece reports whether the value is a real piece, neither empty nor off the board.
func (p Piece) IsPiece() bool {
	return p.Type != Empty && p.Type != Off
}

// Is reports whether p is a piece of the given type and colour.
func (p Piece) Is(t PieceType, c Colour) bool {
	return p.Type == t && p.Colour == c && p.IsPiece()
}

// Letter returns the ASCII letter for the piece: uppercase for White,
// lowercase for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	l := p.Type.Letter()
	if p.IsPiece() && p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns the glyph of the piece, or "_" for an empty square.
func (p Piece) String() string {
	if g, ok := pieceGlyphs[p]; ok {
		return g
	}
	return EmptyGlyph
}

// EmptyGlyph is the placeholder written for an empty square.
const EmptyGlyph = "_"

var pieceGlyphs = map[Piece]string{
	W(Pawn):   "♙",
	B(Pawn):   "♟",
	W(Rook):   "♖",
	B(Rook):   "♜",
	W(Knight): "♘",
	B(Knight): "♞",
	W(Bishop): "♗",
	B(Bishop): "♝",
	W(Queen):  "♕",
	B(Queen):  "♛",
	W(King):   "♔",
	B(King):   "♚",
}

var glyphPieces = func() map[string]Piece {
	m := make(map[string]Piece, len(pieceGlyphs))
	for p, g := range pieceGlyphs {
		m[g] = p
	}
	return m
}()

// ParseGlyph converts a piece glyph back to a Piece. Unrecognized glyphs
// report false.
func ParseGlyph(s string) (Piece, bool) {
	p, ok := glyphPieces[s]
	return p, ok
}

// Constants for board dimensions.
const (
	BoardSize = 8
	FirstRow  = 0
	LastRow   = BoardSize - 1
)

// Square is a (row, column) board coordinate. Neither coordinate is
// validated on construction; use InBounds.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether both coordinates lie on the board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square displaced by the given row and column deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// String returns the square using 1-indexed coordinates as shown to players.
func (s Square) String() string {
	return fmt.Sprintf("%d %d", s.Row+1, s.Col+1)
}

// HomeRow returns the row the pawns of the colour start on.
func HomeRow(colour Colour) int {
	if colour == White {
		return 1
	}
	return 6
}

// PromotionRow returns the farthest row for pawns of the colour.
func PromotionRow(colour Colour) int {
	if colour == White {
		return LastRow
	}
	return FirstRow
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Move is an origin and destination pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in 1-indexed coordinates.
func (m Move) String() string {
	return m.From.String() + " -> " + m.To.String()
}
