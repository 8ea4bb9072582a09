// processor.go - Line processing pipeline
package main

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/fen-extract-go/internal/config"
	"github.com/lgbarn/fen-extract-go/internal/fen"
	"github.com/lgbarn/fen-extract-go/internal/filter"
	"github.com/lgbarn/fen-extract-go/internal/hashing"
	"github.com/lgbarn/fen-extract-go/internal/output"
	"github.com/lgbarn/fen-extract-go/internal/scan"
	"github.com/lgbarn/fen-extract-go/internal/worker"
)

// Stats tallies one run of the pipeline.
type Stats struct {
	Lines      int
	Valid      int
	Malformed  int
	BadCoords  int
	BadNumbers int
	Matched    int
	Duplicates int
	Written    int
}

// Invalid returns the number of lines that failed to decode.
func (s *Stats) Invalid() int {
	return s.Malformed + s.BadCoords + s.BadNumbers
}

// ProcessingContext holds all processing state.
//
// Concurrency model: workers decode, filter, and duplicate-check lines
// in parallel, but every result is consumed by a single goroutine, so
// the writers and the stats need no synchronization. Only the matched
// counter crosses goroutines (the reader polls it for -stopafter).
type ProcessingContext struct {
	cfg      *config.Config
	logger   zerolog.Logger
	filter   *filter.Filter
	detector hashing.Checker

	writer    output.ResultWriter // main destination (line echo or JSON report)
	rejector  output.ResultWriter // undecodable lines (nil = discard)
	dupWriter output.ResultWriter // duplicate lines (nil = discard)

	stats   Stats
	matched int64 // atomic
	index   int   // next line index across all inputs
}

// processLine decodes and judges one line. Safe to call from worker
// goroutines: the filter is read-only and the detector is thread-safe
// whenever the parallel path is selected.
func (pc *ProcessingContext) processLine(item worker.WorkItem) worker.ProcessResult {
	res := worker.ProcessResult{Item: item.Item, Index: item.Index}

	pos, err := fen.Parse(item.Item.Text)
	if err != nil {
		res.Err = err
		return res
	}

	res.Pos = pos
	res.Matched = pc.filter == nil || pc.filter.Matches(pos)
	if res.Matched && pc.detector != nil {
		res.Duplicate = pc.detector.CheckAndAdd(pos)
	}
	return res
}

// handleResult routes one processed line to the writers and the stats.
// Must only be called from the consumer goroutine.
func (pc *ProcessingContext) handleResult(pr worker.ProcessResult) error {
	pc.stats.Lines++
	res := toResult(pr)

	if res.Err != nil {
		pc.countFailure(res.Err)
		pc.logger.Debug().
			Str("source", res.Source).
			Int("line", res.Line).
			Err(res.Err).
			Msg("line rejected")
		if pc.rejector != nil {
			if err := pc.rejector.WriteResult(res); err != nil {
				return err
			}
		}
		if pc.cfg.Output.JSONFormat {
			return pc.writer.WriteResult(res)
		}
		return nil
	}

	pc.stats.Valid++

	// The JSON report covers every decodable line, matched or not.
	if pc.cfg.Output.JSONFormat {
		if err := pc.writer.WriteResult(res); err != nil {
			return err
		}
		pc.stats.Written++
	}

	if !res.Matched {
		return nil
	}

	if res.Duplicate {
		pc.stats.Duplicates++
		pc.logger.Debug().
			Str("source", res.Source).
			Int("line", res.Line).
			Msg("duplicate position")
		if pc.dupWriter != nil {
			return pc.dupWriter.WriteResult(res)
		}
		return nil
	}

	pc.stats.Matched++
	atomic.AddInt64(&pc.matched, 1)

	if !pc.cfg.Output.JSONFormat && !pc.cfg.Output.Quiet {
		if err := pc.writer.WriteResult(res); err != nil {
			return err
		}
		pc.stats.Written++
	}
	return nil
}

// countFailure tallies a decode failure by kind.
func (pc *ProcessingContext) countFailure(err error) {
	switch output.ErrorKind(err) {
	case "coordinates":
		pc.stats.BadCoords++
	case "number":
		pc.stats.BadNumbers++
	default:
		pc.stats.Malformed++
	}
}

// stopRequested reports whether the -stopafter limit has been reached.
func (pc *ProcessingContext) stopRequested() bool {
	return pc.cfg.StopAfter > 0 &&
		atomic.LoadInt64(&pc.matched) >= int64(pc.cfg.StopAfter)
}

// toResult converts a worker result to a writer result.
func toResult(pr worker.ProcessResult) output.Result {
	return output.Result{
		Index:     pr.Index,
		Source:    pr.Item.Source,
		Line:      pr.Item.Line,
		Input:     pr.Item.Text,
		Pos:       pr.Pos,
		Err:       pr.Err,
		Matched:   pr.Matched,
		Duplicate: pr.Duplicate,
	}
}

// processAll runs the pipeline over all input files, or stdin when
// none are named.
func (pc *ProcessingContext) processAll(args []string) error {
	if len(args) == 0 {
		return pc.processReader(os.Stdin, "stdin")
	}

	for _, filename := range args {
		if pc.stopRequested() {
			break
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			pc.logger.Error().Str("file", filename).Err(err).Msg("cannot open input")
			continue
		}

		err = pc.processReader(file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only stream
		if err != nil {
			return err
		}
	}
	return nil
}

// processReader picks the sequential or parallel path for one input.
func (pc *ProcessingContext) processReader(r io.Reader, source string) error {
	if pc.cfg.Workers > 1 {
		return pc.runParallel(r, source)
	}
	return pc.runSequential(r, source)
}

// runSequential processes lines one at a time on the calling goroutine.
func (pc *ProcessingContext) runSequential(r io.Reader, source string) error {
	scanner := scan.NewScanner(r, source)

	for !pc.stopRequested() {
		item, ok := scanner.Next()
		if !ok {
			break
		}
		res := pc.processLine(worker.WorkItem{Item: item, Index: pc.index})
		pc.index++
		if err := pc.handleResult(res); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// runParallel fans lines out over the worker pool. The reader and the
// result consumer run under one errgroup so the first failure on either
// side is the one reported. Lines reach the writers in completion
// order; the JSON report re-sorts by index when it is flushed.
func (pc *ProcessingContext) runParallel(r io.Reader, source string) error {
	scanner := scan.NewScanner(r, source)

	pool := worker.NewPoolWithOptions(pc.processLine,
		worker.WithWorkers(pc.cfg.Workers),
		worker.WithBufferSize(100))
	pool.Start()

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		defer pool.Close()
		for {
			if pool.IsStopped() || pc.stopRequested() {
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			item, ok := scanner.Next()
			if !ok {
				return scanner.Err()
			}
			pool.Submit(worker.WorkItem{Item: item, Index: pc.index})
			pc.index++
		}
	})

	g.Go(func() error {
		// Drain the results channel fully even after a write error so
		// the reader and the workers can never block on a full channel.
		var firstErr error
		for result := range pool.Results() {
			if err := pc.handleResult(result); err != nil && firstErr == nil {
				firstErr = err
				pool.Stop()
			}
			if pc.stopRequested() {
				pool.Stop()
			}
		}
		return firstErr
	})

	return g.Wait()
}

// finish flushes and closes every active writer.
func (pc *ProcessingContext) finish() error {
	var firstErr error
	for _, w := range []output.ResultWriter{pc.writer, pc.rejector, pc.dupWriter} {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
