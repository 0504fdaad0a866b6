package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/render"
)

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	// Plain draws ASCII letters instead of glyphs, with no styling
	Plain bool

	// NoColor keeps glyphs but turns off tile shading
	NoColor bool

	// FullScreen runs the bubbletea front end instead of the line prompt
	FullScreen bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{}
}

// RenderOptions returns the render options for this display.
func (d *DisplayConfig) RenderOptions() render.Options {
	return render.Options{Plain: d.Plain, NoColor: d.NoColor}
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	if d.FullScreen && d.Plain {
		return fmt.Errorf("plain output cannot be combined with the full screen display: %w", errors.ErrInvalidConfig)
	}
	return nil
}
