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

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStrictMode makes decode failures fail the run.
func (b *ConfigBuilder) WithStrictMode(enabled bool) *ConfigBuilder {
	b.cfg.StrictMode = enabled
	return b
}

// WithWorkers sets the number of decode workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithStopAfter stops processing after n matches.
func (b *ConfigBuilder) WithStopAfter(n uint) *ConfigBuilder {
	b.cfg.StopAfter = n
	return b
}

// WithJSONOutput enables the JSON report.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithQuiet suppresses line echo.
func (b *ConfigBuilder) WithQuiet(enabled bool) *ConfigBuilder {
	b.cfg.Output.Quiet = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithRejectFile collects undecodable lines in the named file.
func (b *ConfigBuilder) WithRejectFile(name string) *ConfigBuilder {
	b.cfg.Output.RejectFilename = name
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithDuplicateFile writes duplicate lines to the named file.
func (b *ConfigBuilder) WithDuplicateFile(name string) *ConfigBuilder {
	b.cfg.Duplicate.DuplicateFilename = name
	return b
}

// WithCheckFile preloads the named file's positions as already seen.
func (b *ConfigBuilder) WithCheckFile(name string) *ConfigBuilder {
	b.cfg.Duplicate.CheckFilename = name
	return b
}

// WithDuplicateLimit caps the number of retained positions.
func (b *ConfigBuilder) WithDuplicateLimit(n int) *ConfigBuilder {
	b.cfg.Duplicate.MaxPositions = n
	return b
}

// WithActiveColour restricts matches to one side to move.
func (b *ConfigBuilder) WithActiveColour(colour string) *ConfigBuilder {
	b.cfg.Filter.ActiveColour = colour
	return b
}

// WithEnPassantOnly keeps only positions with an en-passant target.
func (b *ConfigBuilder) WithEnPassantOnly(enabled bool) *ConfigBuilder {
	b.cfg.Filter.RequireEnPassant = enabled
	return b
}

// WithHalfMoveBounds sets half-move clock bounds for filtering.
func (b *ConfigBuilder) WithHalfMoveBounds(min, max uint) *ConfigBuilder {
	b.cfg.Filter.CheckHalfMoveBounds = true
	b.cfg.Filter.MinHalfMoves = min
	b.cfg.Filter.MaxHalfMoves = max
	return b
}

// WithFullMoveBounds sets full-move number bounds for filtering.
func (b *ConfigBuilder) WithFullMoveBounds(min, max uint) *ConfigBuilder {
	b.cfg.Filter.CheckFullMoveBounds = true
	b.cfg.Filter.MinFullMoves = min
	b.cfg.Filter.MaxFullMoves = max
	return b
}

// WithPieceCountRange sets piece count bounds for filtering.
func (b *ConfigBuilder) WithPieceCountRange(min, max int) *ConfigBuilder {
	b.cfg.Filter.CheckPieceCount = true
	b.cfg.Filter.MinPieces = min
	b.cfg.Filter.MaxPieces = max
	return b
}

// WithMaterial sets a material pattern for filtering.
func (b *ConfigBuilder) WithMaterial(pattern string, exact bool) *ConfigBuilder {
	b.cfg.Filter.MaterialPattern = pattern
	b.cfg.Filter.MaterialExact = exact
	return b
}

// WithCastling requires the named castling rights.
func (b *ConfigBuilder) WithCastling(spec string) *ConfigBuilder {
	b.cfg.Filter.CastlingSpec = spec
	return b
}

// WithNegate inverts the combined filter verdict.
func (b *ConfigBuilder) WithNegate(enabled bool) *ConfigBuilder {
	b.cfg.Filter.Negate = enabled
	return b
}
