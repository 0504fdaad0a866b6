// Package config provides configuration for chessrules.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxVerbosity is the most detailed logging level.
const MaxVerbosity = 2

// Config holds all program configuration.
type Config struct {
	// Verbosity controls diagnostics on LogFile: 0=nothing, 1=summary,
	// 2=running commentary.
	Verbosity int

	Display  *DisplayConfig
	Session  *SessionConfig
	Analysis *AnalysisConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Display:    NewDisplayConfig(),
		Session:    NewSessionConfig(),
		Analysis:   NewAnalysisConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration and its sections. Errors wrap
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > MaxVerbosity {
		return fmt.Errorf("verbosity %d out of range 0-%d: %w", c.Verbosity, MaxVerbosity, errors.ErrInvalidConfig)
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	return c.Analysis.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
