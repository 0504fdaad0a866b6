// analyze.go - Batch analysis of board files
package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/boardfile"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// analyzeFile loads one board file and classifies the position for the
// side to move. It runs on a worker goroutine.
func analyzeFile(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Index: item.Index, Path: item.Path}

	board, err := boardfile.Load(item.Path)
	if err != nil {
		result.Err = err
		return result
	}

	king, _ := board.FindKing(board.ToMove)
	result.Board = board
	result.Checkers = engine.CountAttackers(board, king, board.ToMove)
	result.InCheck = result.Checkers > 0
	result.LegalMoves = engine.LegalMoves(board, board.ToMove)
	result.Status = engine.Status(board)
	return result
}

// runAnalysis analyzes every configured board file and writes one report
// per file, in argument order. Files not yet analyzed when ctx is done
// are reported as errors. It returns the process exit code.
func runAnalysis(ctx context.Context, cfg *config.Config) int {
	files := cfg.Analysis.Files

	numWorkers := cfg.Analysis.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	bufferSize := len(files)
	if bufferSize > 100 {
		bufferSize = 100
	}

	pool := worker.NewPool(analyzeFile, worker.WithWorkers(numWorkers), worker.WithBufferSize(bufferSize))
	cfg.Logf(2, "Analyzing %d file(s) with %d worker(s)", len(files), pool.NumWorkers())
	results := pool.Run(ctx, files)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			cfg.Logf(1, "Error analyzing %s: %v", r.Path, r.Err)
		} else {
			cfg.Logf(2, "%s: %s", r.Path, r.Status)
		}
		writeReport(cfg.OutputFile, r, cfg.Analysis.ListMoves)
	}

	cfg.Logf(1, "%d file(s) analyzed, %d error(s).", len(results), failed)
	if failed > 0 {
		return 1
	}
	return 0
}

// writeReport writes the report for one file.
func writeReport(w io.Writer, r worker.ProcessResult, withMoves bool) {
	if r.Err != nil {
		fmt.Fprintf(w, "%s: error: %v\n", r.Path, r.Err)
		return
	}

	b := r.Board
	fmt.Fprintf(w, "%s: turn %d, %s to move: %s", r.Path, b.Turn, b.ToMove, r.Status)
	switch r.Status {
	case engine.Checkmate:
		fmt.Fprintf(w, ", %s wins", b.ToMove.Opposite())
	case engine.Check:
		fmt.Fprintf(w, " by %d piece(s)", r.Checkers)
	}
	fmt.Fprintf(w, ", %d legal move(s)\n", len(r.LegalMoves))

	if withMoves {
		for _, m := range r.LegalMoves {
			fmt.Fprintf(w, "  %s\n", m)
		}
	}
}
