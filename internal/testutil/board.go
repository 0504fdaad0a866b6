package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var diagramLetters = map[rune]chess.Piece{
	'P': chess.W(chess.Pawn), 'R': chess.W(chess.Rook), 'N': chess.W(chess.Knight),
	'B': chess.W(chess.Bishop), 'Q': chess.W(chess.Queen), 'K': chess.W(chess.King),
	'p': chess.B(chess.Pawn), 'r': chess.B(chess.Rook), 'n': chess.B(chess.Knight),
	'b': chess.B(chess.Bishop), 'q': chess.B(chess.Queen), 'k': chess.B(chess.King),
}

// ParseDiagram builds a board from an eight line diagram. The first line
// is row 0 (White's back row) and the first character of a line is
// column 0. Uppercase letters are White, lowercase Black, '.' is empty.
// Spaces within a line are ignored.
func ParseDiagram(diagram string, toMove chess.Colour, turn uint) (chess.Board, bool) {
	board := chess.NewEmptyBoard(toMove, turn)

	var rows []string
	for _, line := range strings.Split(strings.TrimSpace(diagram), "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		return board, false
	}

	for row, line := range rows {
		cells := []rune(line)
		if len(cells) != chess.BoardSize {
			return board, false
		}
		for col, c := range cells {
			if c == '.' {
				continue
			}
			p, ok := diagramLetters[c]
			if !ok {
				return board, false
			}
			board.Set(chess.Sq(row, col), p)
		}
	}
	return board, true
}

// MustDiagram parses a diagram with ParseDiagram and calls t.Fatal if it
// is malformed.
func MustDiagram(t *testing.T, diagram string, toMove chess.Colour) chess.Board {
	t.Helper()
	board, ok := ParseDiagram(diagram, toMove, 0)
	if !ok {
		t.Fatalf("malformed board diagram:\n%s", diagram)
	}
	return board
}

// Placement is one piece of a scenario.
type Placement struct {
	Square chess.Square
	Piece  chess.Piece
}

// Scenario returns an otherwise empty board holding the placements.
func Scenario(toMove chess.Colour, turn uint, placements ...Placement) chess.Board {
	board := chess.NewEmptyBoard(toMove, turn)
	for _, p := range placements {
		board.Set(p.Square, p.Piece)
	}
	return board
}

// At is shorthand for a Placement.
func At(row, col int, p chess.Piece) Placement {
	return Placement{Square: chess.Sq(row, col), Piece: p}
}
