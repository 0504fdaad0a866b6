package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlain enables plain ASCII boards.
func (b *ConfigBuilder) WithPlain(enabled bool) *ConfigBuilder {
	b.cfg.Display.Plain = enabled
	return b
}

// WithNoColor disables tile shading.
func (b *ConfigBuilder) WithNoColor(enabled bool) *ConfigBuilder {
	b.cfg.Display.NoColor = enabled
	return b
}

// WithFullScreen selects the full screen front end.
func (b *ConfigBuilder) WithFullScreen(enabled bool) *ConfigBuilder {
	b.cfg.Display.FullScreen = enabled
	return b
}

// WithCheckpoint sets the checkpoint file. Empty disables checkpoints.
func (b *ConfigBuilder) WithCheckpoint(path string) *ConfigBuilder {
	b.cfg.Session.Checkpoint = path
	return b
}

// WithLoadFile sets the board file to start from.
func (b *ConfigBuilder) WithLoadFile(path string) *ConfigBuilder {
	b.cfg.Session.LoadFile = path
	return b
}

// WithSeed sets the random move seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Session.Seed = seed
	return b
}

// WithAnalysis enables batch analysis of the given board files.
func (b *ConfigBuilder) WithAnalysis(files ...string) *ConfigBuilder {
	b.cfg.Analysis.Enabled = true
	b.cfg.Analysis.Files = files
	return b
}

// WithWorkers sets the number of analysis workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithListMoves includes legal moves in analysis reports.
func (b *ConfigBuilder) WithListMoves(enabled bool) *ConfigBuilder {
	b.cfg.Analysis.ListMoves = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
