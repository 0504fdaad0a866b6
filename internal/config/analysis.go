package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// AnalysisConfig holds settings for batch analysis of board files.
type AnalysisConfig struct {
	// Enabled switches from interactive play to batch analysis
	Enabled bool

	// Files are the board files to analyze, in report order
	Files []string

	// Workers is the number of analysis goroutines (0 = one per CPU)
	Workers int

	// ListMoves includes every legal move in the report
	ListMoves bool
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.Enabled && len(a.Files) == 0 {
		return fmt.Errorf("analysis needs at least one board file: %w", errors.ErrInvalidConfig)
	}
	return nil
}
