package chess

// Board is a complete position: the piece layout, who moves next and the
// turn counter. Board is a value; assigning it copies the whole grid, so a
// caller holding a Board never observes changes made to another copy.
type Board struct {
	// Squares[row][col]; row 0 is White's back row.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Number of moves played so far.
	Turn uint
}

var backRow = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position, White to move, turn 0.
func NewBoard() Board {
	b := NewEmptyBoard(White, 0)
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = W(backRow[col])
		b.Squares[1][col] = W(Pawn)
		b.Squares[6][col] = B(Pawn)
		b.Squares[7][col] = B(backRow[col])
	}
	return b
}

// NewEmptyBoard returns a board with no pieces, used to build scenarios.
func NewEmptyBoard(toMove Colour, turn uint) Board {
	return Board{ToMove: toMove, Turn: turn}
}

// Get returns the piece at the square, or an Off piece if the square is
// not on the board.
func (b Board) Get(sq Square) Piece {
	if !sq.InBounds() {
		return Piece{Type: Off}
	}
	return b.Squares[sq.Row][sq.Col]
}

// IsOccupied reports whether a piece stands on the square.
func (b Board) IsOccupied(sq Square) bool {
	return b.Get(sq).IsPiece()
}

// Set places a piece on the square of this copy of the board and returns
// the board so scenario setups can be chained. Out of bounds squares are
// ignored.
func (b *Board) Set(sq Square, p Piece) *Board {
	if sq.InBounds() {
		b.Squares[sq.Row][sq.Col] = p
	}
	return b
}

// Clear empties the square.
func (b *Board) Clear(sq Square) *Board {
	return b.Set(sq, Piece{})
}

// FindKing returns the square of the colour's king.
func (b Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(King, colour) {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// FindPieces returns the squares holding pieces of the colour in row-major order.
func (b Board) FindPieces(colour Colour) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsPiece() && p.Colour == colour {
				squares = append(squares, Sq(row, col))
			}
		}
	}
	return squares
}

// CountPieces returns how many times the piece appears on the board.
func (b Board) CountPieces(p Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == p {
				n++
			}
		}
	}
	return n
}

// AllSquares returns every square of the board in row-major order.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			squares = append(squares, Sq(row, col))
		}
	}
	return squares
}
