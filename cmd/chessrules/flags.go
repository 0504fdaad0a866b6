// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Display options
	plainBoard = flag.Bool("plain", false, "Draw boards as ASCII letters without styling")
	noColor    = flag.Bool("nocolor", false, "Draw piece glyphs without tile shading")
	fullScreen = flag.Bool("tui", false, "Play in the full screen interface")

	// Game options
	checkpointFile = flag.String("checkpoint", config.DefaultCheckpoint, "Board file rewritten after every move (empty disables)")
	loadFile       = flag.String("load", "", "Start from this board file instead of the initial position")
	seed           = flag.Int64("seed", 0, "Seed for random moves (0 = seed from the clock)")

	// Analysis options
	analyze   = flag.Bool("analyze", false, "Analyze the board files given as arguments instead of playing")
	listMoves = flag.Bool("moves", false, "List every legal move in analysis reports")
	workers   = flag.Int("workers", 0, "Number of analysis workers (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	verbose = flag.Bool("verbose", false, "Report every file and the random seed")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config, args []string) {
	applyDisplayFlags(cfg)
	applySessionFlags(cfg)
	applyAnalysisFlags(cfg, args)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = config.MaxVerbosity
	}
}

// applyDisplayFlags configures how boards are drawn.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Plain = *plainBoard
	cfg.Display.NoColor = *noColor
	cfg.Display.FullScreen = *fullScreen
}

// applySessionFlags configures the interactive game.
func applySessionFlags(cfg *config.Config) {
	cfg.Session.Checkpoint = *checkpointFile
	cfg.Session.LoadFile = *loadFile
	cfg.Session.Seed = *seed
}

// applyAnalysisFlags configures batch analysis.
func applyAnalysisFlags(cfg *config.Config, args []string) {
	cfg.Analysis.Enabled = *analyze
	cfg.Analysis.Files = args
	cfg.Analysis.ListMoves = *listMoves
	cfg.Analysis.Workers = *workers
}
