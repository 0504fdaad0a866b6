// chessrules is a two player chess game for the terminal with a batch
// analyzer for saved board files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg, flag.Args())

	// Set up logging
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Analysis.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		code := runAnalysis(ctx, cfg)
		stop()
		os.Exit(code)
	}

	if err := runGame(cfg, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n")
	fmt.Fprintf(os.Stderr, "       chessrules -analyze [options] board-files...\n\n")
	fmt.Fprintf(os.Stderr, "A two player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands during a game:\n")
	fmt.Fprintf(os.Stderr, "  <row> <col>  select a square, e.g. 2 5\n")
	fmt.Fprintf(os.Stderr, "  r            make a random move\n")
	fmt.Fprintf(os.Stderr, "  b            go back to piece selection\n")
	fmt.Fprintf(os.Stderr, "  u            undo the last move\n")
	fmt.Fprintf(os.Stderr, "  s <file>     save the board\n")
	fmt.Fprintf(os.Stderr, "  l <file>     load a board\n")
	fmt.Fprintf(os.Stderr, "  q            quit\n")
}
