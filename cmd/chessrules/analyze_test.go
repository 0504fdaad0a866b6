package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

func testdataPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestAnalyzeFile(t *testing.T) {
	tests := []struct {
		file     string
		status   engine.GameStatus
		checkers int
		numMoves int
		toMove   chess.Colour
	}{
		{"initial.board", engine.Ongoing, 0, 20, chess.White},
		{"foolsmate.board", engine.Checkmate, 1, 0, chess.White},
		{"check.board", engine.Check, 1, 4, chess.White},
		{"stalemate.board", engine.Stalemate, 0, 0, chess.Black},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			r := analyzeFile(worker.WorkItem{Path: testdataPath(tt.file), Index: 7})
			testutil.AssertNoError(t, r.Err)
			testutil.AssertEqual(t, r.Index, 7)
			testutil.AssertEqual(t, r.Status, tt.status)
			testutil.AssertEqual(t, r.Checkers, tt.checkers)
			testutil.AssertEqual(t, r.InCheck, tt.checkers > 0)
			testutil.AssertEqual(t, len(r.LegalMoves), tt.numMoves)
			testutil.AssertEqual(t, r.Board.ToMove, tt.toMove)
		})
	}
}

func TestAnalyzeFile_Errors(t *testing.T) {
	r := analyzeFile(worker.WorkItem{Path: testdataPath("twokings.board")})
	if !errors.Is(r.Err, errors.ErrInvalidBoardFile) {
		t.Errorf("Err = %v; want ErrInvalidBoardFile", r.Err)
	}

	r = analyzeFile(worker.WorkItem{Path: testdataPath("missing.board")})
	testutil.AssertError(t, r.Err)
}

func newAnalysisConfig(out, log *bytes.Buffer, files ...string) *config.Config {
	cfg := config.NewConfig()
	cfg.OutputFile = out
	cfg.LogFile = log
	cfg.Analysis.Enabled = true
	cfg.Analysis.Files = files
	cfg.Analysis.Workers = 2
	return cfg
}

func TestRunAnalysis(t *testing.T) {
	var out, log bytes.Buffer
	files := []string{
		testdataPath("initial.board"),
		testdataPath("foolsmate.board"),
		testdataPath("check.board"),
		testdataPath("stalemate.board"),
	}
	cfg := newAnalysisConfig(&out, &log, files...)

	if code := runAnalysis(context.Background(), cfg); code != 0 {
		t.Fatalf("runAnalysis() = %d; want 0\n%s", code, log.String())
	}

	want := []string{
		files[0] + ": turn 0, White to move: ongoing, 20 legal move(s)",
		files[1] + ": turn 4, White to move: checkmate, Black wins, 0 legal move(s)",
		files[2] + ": turn 9, White to move: check by 1 piece(s), 4 legal move(s)",
		files[3] + ": turn 57, Black to move: stalemate, 0 legal move(s)",
	}
	got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	testutil.AssertEqual(t, got, want)
	testutil.AssertContains(t, log.String(), "4 file(s) analyzed, 0 error(s).")
}

func TestRunAnalysis_ListMoves(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newAnalysisConfig(&out, &log, testdataPath("check.board"))
	cfg.Analysis.ListMoves = true

	testutil.AssertEqual(t, runAnalysis(context.Background(), cfg), 0)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines; want report plus 4 moves:\n%s", len(lines), out.String())
	}
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, "  1 5 -> ") {
			t.Errorf("move line %q does not move the king from 1 5", line)
		}
	}
}

func TestRunAnalysis_Errors(t *testing.T) {
	var out, log bytes.Buffer
	bad := testdataPath("twokings.board")
	cfg := newAnalysisConfig(&out, &log, testdataPath("initial.board"), bad)

	testutil.AssertEqual(t, runAnalysis(context.Background(), cfg), 1)
	testutil.AssertContains(t, out.String(), bad+": error: ")
	testutil.AssertContains(t, log.String(), "2 file(s) analyzed, 1 error(s).")
}

func TestRunAnalysis_Quiet(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newAnalysisConfig(&out, &log, testdataPath("initial.board"))
	cfg.Verbosity = 0
	cfg.Analysis.Workers = 0

	testutil.AssertEqual(t, runAnalysis(context.Background(), cfg), 0)
	testutil.AssertEqual(t, log.String(), "")
	testutil.AssertContains(t, out.String(), "20 legal move(s)")
}

func TestRunAnalysis_Cancelled(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newAnalysisConfig(&out, &log, testdataPath("initial.board"), testdataPath("check.board"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	testutil.AssertEqual(t, runAnalysis(ctx, cfg), 1)
	testutil.AssertEqual(t, strings.Count(out.String(), ": error: context canceled"), 2)
}
