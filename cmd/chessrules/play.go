// play.go - Interactive game setup
package main

import (
	"io"
	"math/rand"
	"time"

	"github.com/lgbarn/chessrules-go/internal/boardfile"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/session"
	"github.com/lgbarn/chessrules-go/internal/tui"
)

// newSession builds the game session described by cfg.
func newSession(cfg *config.Config) (*session.Session, error) {
	board := chess.NewBoard()
	if cfg.Session.LoadFile != "" {
		loaded, err := boardfile.Load(cfg.Session.LoadFile)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s", cfg.Session.LoadFile)
		}
		board = loaded
		cfg.Logf(1, "Loaded %s: turn %d, %s to move", cfg.Session.LoadFile, board.Turn, board.ToMove)
	}

	seed := cfg.Session.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.Logf(2, "Random move seed %d", seed)

	opts := session.Options{
		Checkpoint: cfg.Session.Checkpoint,
		Render:     cfg.Display.RenderOptions(),
		HideBoard:  cfg.Display.FullScreen,
	}
	return session.New(board, opts, rand.New(rand.NewSource(seed))), nil
}

// runGame plays an interactive game, reading commands from in for the line
// prompt or from the terminal for the full screen interface.
func runGame(cfg *config.Config, in io.Reader) error {
	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	if cfg.Display.FullScreen {
		return tui.Run(sess, cfg.Display.RenderOptions())
	}
	return sess.RunLines(in, cfg.OutputFile)
}
