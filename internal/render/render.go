// Package render draws boards for the terminal front ends.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Options controls how a board is drawn.
type Options struct {
	// Plain draws ASCII letters with no styling: uppercase White, lowercase
	// Black, '.' for an empty square.
	Plain bool
	// NoColor keeps the piece glyphs but drops the tile shading.
	NoColor bool
}

var (
	darkTile  = lipgloss.NewStyle().Background(lipgloss.Color("245"))
	lightTile = lipgloss.NewStyle().Background(lipgloss.Color("7"))
)

const columnLabels = "     1  2  3  4  5  6  7  8\n"

// Render returns board with 1-based column labels across the top and row
// labels down the left, row 1 (White's back row) first.
func Render(board chess.Board, opts Options) string {
	var b strings.Builder
	b.WriteString(columnLabels)
	for row := 0; row < chess.BoardSize; row++ {
		b.WriteByte(' ')
		b.WriteByte(byte('1' + row))
		b.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			b.WriteString(cell(board.Get(chess.Sq(row, col)), row, col, opts))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cell returns a three column wide cell.
func cell(p chess.Piece, row, col int, opts Options) string {
	if opts.Plain {
		if p.IsEmpty() {
			return " . "
		}
		return " " + string(p.Letter()) + " "
	}

	text := "   "
	if p.IsPiece() {
		text = " " + p.String() + " "
	}
	if opts.NoColor {
		return text
	}
	if (row+col)%2 == 0 {
		return darkTile.Render(text)
	}
	return lightTile.Render(text)
}
