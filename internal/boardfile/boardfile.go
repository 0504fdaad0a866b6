// Package boardfile reads and writes the plain text board format used for
// checkpoints and saved games.
//
// A board file holds the side to move on the first line ("White" or
// "Black"), the turn counter on the second, and then eight rows of eight
// whitespace separated piece glyphs, row 0 first. "_" marks an empty square;
// any token that is not a piece glyph reads as empty.
package boardfile

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Unmarshal decodes a board file. Rows missing from the end of the data
// are left empty and tokens past the eighth on a row are ignored. The board
// must hold exactly one king of each colour.
func Unmarshal(data []byte) (chess.Board, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	line := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		line++
		return strings.TrimSpace(scanner.Text()), true
	}

	text, _ := next()
	toMove, ok := chess.ParseColour(text)
	if !ok {
		return chess.Board{}, parseError(1, text, "couldn't parse player")
	}

	text, _ = next()
	turn, err := strconv.ParseUint(text, 10, strconv.IntSize)
	if err != nil {
		return chess.Board{}, parseError(2, text, "couldn't parse turn number")
	}

	board := chess.NewEmptyBoard(toMove, uint(turn))
	for row := 0; row < chess.BoardSize; row++ {
		text, ok := next()
		if !ok {
			break
		}
		for col, token := range strings.Fields(text) {
			if col >= chess.BoardSize {
				break
			}
			if p, ok := chess.ParseGlyph(token); ok {
				board.Set(chess.Sq(row, col), p)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return chess.Board{}, &errors.ParseError{
			Err:  fmt.Errorf("%w: %v", errors.ErrInvalidBoardFile, err),
			Line: line + 1,
		}
	}

	whites := board.CountPieces(chess.W(chess.King))
	blacks := board.CountPieces(chess.B(chess.King))
	if whites != 1 || blacks != 1 {
		return chess.Board{}, &errors.ParseError{
			Err: fmt.Errorf("%w: wrong number of kings on the board (%d white, %d black)",
				errors.ErrInvalidBoardFile, whites, blacks),
		}
	}
	return board, nil
}

// Marshal encodes a board in the board file format.
func Marshal(board chess.Board) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n%d\n", board.ToMove, board.Turn)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			fmt.Fprintf(&buf, " %s ", board.Get(chess.Sq(row, col)))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Load reads and decodes the board file at path.
func Load(path string) (chess.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chess.Board{}, err
	}
	board, err := Unmarshal(data)
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			pe.File = path
		}
		return chess.Board{}, err
	}
	return board, nil
}

// Save writes board to path, replacing any existing file.
func Save(path string, board chess.Board) error {
	if path == "" {
		return errors.Wrap(errors.ErrNoFileName, "save")
	}
	return os.WriteFile(path, Marshal(board), 0o644)
}

func parseError(line int, got, msg string) error {
	return &errors.ParseError{
		Err:  fmt.Errorf("%w: %s", errors.ErrInvalidBoardFile, msg),
		Line: line,
		Got:  got,
	}
}
