// fen-extract is a tool for validating, filtering, and deduplicating FEN position records.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/fen-extract-go/internal/config"
	"github.com/lgbarn/fen-extract-go/internal/output"
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
		fmt.Printf("fen-extract version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fen-extract: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "fen-extract: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := setupLogger(cfg)
	defer closeLog()

	outStream, closeOutput := setupOutputStream(cfg, logger)
	defer closeOutput()

	var mainWriter output.ResultWriter
	if cfg.Output.JSONFormat {
		mainWriter = output.NewJSONWriter(outStream)
	} else {
		mainWriter = output.NewTextWriter(outStream)
	}

	rejector, closeReject := setupRejectWriter(cfg, logger)
	defer closeReject()

	dupWriter, closeDup := setupDuplicateWriter(cfg, logger)
	defer closeDup()

	detector, err := buildDetector(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("duplicate detection setup failed")
	}

	positionFilter, err := buildFilter(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid filter criteria")
	}

	pc := &ProcessingContext{
		cfg:       cfg,
		logger:    logger,
		filter:    positionFilter,
		detector:  detector,
		writer:    mainWriter,
		rejector:  rejector,
		dupWriter: dupWriter,
	}

	if err := pc.processAll(flag.Args()); err != nil {
		pc.finish() //nolint:errcheck,gosec // best-effort flush before exit
		logger.Error().Err(err).Msg("processing failed")
		os.Exit(1)
	}

	if err := pc.finish(); err != nil {
		logger.Error().Err(err).Msg("flushing output failed")
		os.Exit(1)
	}

	reportStatistics(cfg, logger, &pc.stats)

	if cfg.StrictMode && pc.stats.Invalid() > 0 {
		os.Exit(1)
	}
}

// setupLogger builds the logger from the verbosity level and the -l
// flag. The returned cleanup closes the log file, if one was opened.
func setupLogger(cfg *config.Config) (zerolog.Logger, func()) {
	w := io.Writer(os.Stderr)
	cleanup := func() {}

	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		w = file
		cleanup = func() { file.Close() } //nolint:errcheck // cleanup on exit
	}
	cfg.SetLog(w)

	var level zerolog.Level
	switch {
	case cfg.Verbosity <= 0:
		level = zerolog.ErrorLevel
	case cfg.Verbosity == 1:
		level = zerolog.InfoLevel
	default:
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger, cleanup
}

// setupOutputStream opens the output file named by -o or -a, or keeps
// stdout.
func setupOutputStream(cfg *config.Config, logger zerolog.Logger) (io.Writer, func()) {
	if cfg.Output.Filename == "" {
		return cfg.OutputFile, func() {}
	}

	var file *os.File
	var err error

	if cfg.Output.Append {
		file, err = os.OpenFile(cfg.Output.Filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.Output.Filename)
	}

	if err != nil {
		logger.Fatal().Str("file", cfg.Output.Filename).Err(err).Msg("cannot open output file")
	}
	cfg.SetOutput(file)
	return file, func() { file.Close() } //nolint:errcheck // cleanup on exit
}

// setupRejectWriter opens the reject file named by -r. Rejected lines
// are written with a '#' diagnostic comment, so a reject file can be
// fed straight back through the scanner.
func setupRejectWriter(cfg *config.Config, logger zerolog.Logger) (output.ResultWriter, func()) {
	if cfg.Output.RejectFilename == "" {
		return nil, func() {}
	}

	file, err := os.Create(cfg.Output.RejectFilename)
	if err != nil {
		logger.Fatal().Str("file", cfg.Output.RejectFilename).Err(err).Msg("cannot create reject file")
	}
	return output.NewRejectWriter(file), func() { file.Close() } //nolint:errcheck // cleanup on exit
}

// setupDuplicateWriter opens the duplicate file named by -d. Duplicate
// lines are echoed verbatim, so the file is itself a FEN line file.
func setupDuplicateWriter(cfg *config.Config, logger zerolog.Logger) (output.ResultWriter, func()) {
	if cfg.Duplicate.DuplicateFilename == "" {
		return nil, func() {}
	}

	file, err := os.Create(cfg.Duplicate.DuplicateFilename)
	if err != nil {
		logger.Fatal().Str("file", cfg.Duplicate.DuplicateFilename).Err(err).Msg("cannot create duplicate file")
	}
	return output.NewTextWriter(file), func() { file.Close() } //nolint:errcheck // cleanup on exit
}

// reportStatistics logs the run totals and, at verbosity 1 and above,
// prints a one-line summary to stderr.
func reportStatistics(cfg *config.Config, logger zerolog.Logger, stats *Stats) {
	logger.Info().
		Int("lines", stats.Lines).
		Int("valid", stats.Valid).
		Int("malformed", stats.Malformed).
		Int("badCoordinates", stats.BadCoords).
		Int("badNumbers", stats.BadNumbers).
		Int("matched", stats.Matched).
		Int("duplicates", stats.Duplicates).
		Int("written", stats.Written).
		Msg("processing complete")

	if cfg.Verbosity > 0 {
		fmt.Fprintf(os.Stderr, "%d line(s) matched, %d duplicate(s), %d invalid out of %d.\n",
			stats.Matched, stats.Duplicates, stats.Invalid(), stats.Lines)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fen-extract [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "A tool for validating, filtering, and deduplicating FEN position records.\n\n")
	fmt.Fprintf(os.Stderr, "Input files hold one FEN record per line. Blank lines and lines starting\n")
	fmt.Fprintf(os.Stderr, "with '#' are skipped. With no files, records are read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMaterial patterns (-z/-Z):\n")
	fmt.Fprintf(os.Stderr, "  White and black piece letters separated by ':', uppercase for White\n")
	fmt.Fprintf(os.Stderr, "  (e.g. 'QRR:qr'). -z keeps positions with at least the listed material;\n")
	fmt.Fprintf(os.Stderr, "  -Z requires an exact match, kings included.\n")
}
