package boardfile

import (
	"bufio"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const initialFile = `White
0
 ♖  ♘  ♗  ♕  ♔  ♗  ♘  ♖ 
 ♙  ♙  ♙  ♙  ♙  ♙  ♙  ♙ 
 _  _  _  _  _  _  _  _ 
 _  _  _  _  _  _  _  _ 
 _  _  _  _  _  _  _  _ 
 _  _  _  _  _  _  _  _ 
 ♟  ♟  ♟  ♟  ♟  ♟  ♟  ♟ 
 ♜  ♞  ♝  ♛  ♚  ♝  ♞  ♜ 
`

func TestMarshal_InitialBoard(t *testing.T) {
	testutil.AssertEqual(t, string(Marshal(chess.NewBoard())), initialFile)
}

func TestUnmarshal_InitialBoard(t *testing.T) {
	board, err := Unmarshal([]byte(initialFile))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, board, chess.NewBoard())
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		board chess.Board
	}{
		{"initial", chess.NewBoard()},
		{"sparse black to move", testutil.Scenario(chess.Black, 41,
			testutil.At(0, 0, chess.W(chess.King)),
			testutil.At(3, 5, chess.W(chess.Queen)),
			testutil.At(6, 2, chess.B(chess.Pawn)),
			testutil.At(7, 7, chess.B(chess.King)),
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unmarshal(Marshal(tt.board))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.board)
		})
	}
}

func TestUnmarshal_Lenient(t *testing.T) {
	data := "Black\n12\n♔ x ? ♚\n\n ♙\n"
	board, err := Unmarshal([]byte(data))
	testutil.AssertNoError(t, err)

	want := testutil.Scenario(chess.Black, 12,
		testutil.At(0, 0, chess.W(chess.King)),
		testutil.At(0, 3, chess.B(chess.King)),
		testutil.At(2, 0, chess.W(chess.Pawn)),
	)
	testutil.AssertEqual(t, board, want)
}

func TestUnmarshal_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantLine int
		wantText string
	}{
		{"empty", "", 1, "couldn't parse player"},
		{"bad player", "Red\n0\n♔ ♚\n", 1, "couldn't parse player"},
		{"lowercase player", "white\n0\n♔ ♚\n", 1, "couldn't parse player"},
		{"bad turn", "White\nten\n♔ ♚\n", 2, "couldn't parse turn number"},
		{"negative turn", "White\n-1\n♔ ♚\n", 2, "couldn't parse turn number"},
		{"no kings", "White\n0\n♖ ♜\n", 0, "wrong number of kings"},
		{"two white kings", "White\n0\n♔ ♔ ♚\n", 0, "wrong number of kings"},
		{"missing black king", "White\n0\n♔\n", 0, "wrong number of kings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			testutil.AssertError(t, err)
			if !errors.Is(err, errors.ErrInvalidBoardFile) {
				t.Errorf("errors.Is(%v, ErrInvalidBoardFile) = false", err)
			}
			var pe *errors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			testutil.AssertEqual(t, pe.Line, tt.wantLine)
			testutil.AssertContains(t, err.Error(), tt.wantText)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.board")
	board := testutil.Scenario(chess.White, 3,
		testutil.At(0, 4, chess.W(chess.King)),
		testutil.At(7, 4, chess.B(chess.King)),
		testutil.At(4, 4, chess.B(chess.Knight)),
	)

	testutil.AssertNoError(t, Save(path, board))
	got, err := Load(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, board)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.board"))
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, os.IsNotExist(err), "missing file should report not exist, got %v", err)

	bad := filepath.Join(dir, "bad.board")
	if err := os.WriteFile(bad, []byte("White\n0\n♔\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(bad)
	testutil.AssertError(t, err)
	if !strings.HasPrefix(err.Error(), bad) {
		t.Errorf("Load error %q should name the file", err)
	}
}

func TestSave_NoName(t *testing.T) {
	err := Save("", chess.NewBoard())
	testutil.AssertTrue(t, errors.Is(err, errors.ErrNoFileName), "Save(\"\") = %v, want ErrNoFileName", err)
}

func TestRoundTrip_LargeTurn(t *testing.T) {
	board := chess.NewBoard()
	board.Turn = math.MaxUint

	got, err := Unmarshal(Marshal(board))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.Turn, board.Turn)
}

func TestUnmarshal_LongLine(t *testing.T) {
	data := "White\n0\n" + strings.Repeat("_ ", bufio.MaxScanTokenSize) + "\n"

	_, err := Unmarshal([]byte(data))
	testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidBoardFile), "got %v, want ErrInvalidBoardFile", err)
	var pe *errors.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	testutil.AssertEqual(t, pe.Line, 3)
}
