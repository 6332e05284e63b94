package shard

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/specialistvlad/lightgrid/internal/ctxlog"
	"github.com/specialistvlad/lightgrid/internal/lightgrid"
	"golang.org/x/sync/errgroup"
)

// Options tunes a sharded run.
type Options struct {
	// Shards is the requested number of row bands. Values below 1 mean 1.
	Shards int
	// Workers bounds how many bands are processed at once. Values below 1
	// default to GOMAXPROCS.
	Workers int
}

// Band is the outcome of a single shard.
type Band struct {
	Index     int
	Rect      lightgrid.Rect
	Magnitude int
	Applied   int // cells visited after clipping
}

// Result is the outcome of a whole sharded run.
type Result struct {
	Kind      lightgrid.Kind
	Magnitude int
	Bands     []Band
	Duration  time.Duration
}

// Run applies seq to a fresh backend of the given kind, split across row
// bands, and returns the summed magnitude.
func Run(ctx context.Context, kind lightgrid.Kind, seq []lightgrid.Instruction, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	// Fail on an unknown kind before spinning up any worker.
	if _, err := lightgrid.NewBackend(kind); err != nil {
		return nil, err
	}

	bounds, ok := Bounds(seq)
	if !ok {
		logger.Debug("Instruction sequence touches no cells.", "kind", kind, "instructions", len(seq))
		return &Result{Kind: kind, Duration: time.Since(start)}, nil
	}

	bands := Bands(bounds, max(1, opts.Shards))
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(bands))
	logger.Debug("Starting sharded run.", "kind", kind, "bounds", bounds.String(), "bands", len(bands), "workers", workers)

	results := make([]Band, len(bands))
	readyChan := make(chan int, len(bands))
	for i := range bands {
		readyChan <- i
	}
	close(readyChan)

	g, gctx := errgroup.WithContext(ctx)
	for workerID := 0; workerID < workers; workerID++ {
		workerID := workerID
		g.Go(func() error {
			return worker(gctx, workerID, kind, seq, bands, readyChan, results)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sharded run failed: %w", err)
	}

	res := &Result{Kind: kind, Bands: results}
	for _, b := range results {
		res.Magnitude += b.Magnitude
	}
	res.Duration = time.Since(start)
	logger.Debug("Sharded run finished.", "kind", kind, "magnitude", res.Magnitude, "duration", res.Duration)
	return res, nil
}

// worker drains band indices from readyChan. Each index is written to
// results by exactly one worker.
func worker(
	ctx context.Context,
	workerID int,
	kind lightgrid.Kind,
	seq []lightgrid.Instruction,
	bands []lightgrid.Rect,
	readyChan <-chan int,
	results []Band,
) error {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")

	for idx := range readyChan {
		band, err := runBand(ctx, kind, seq, bands[idx])
		if err != nil {
			logger.Debug("Worker stopping.", "band", idx, "error", err)
			return err
		}
		band.Index = idx
		results[idx] = band
		logger.Debug("Band complete.", "band", idx, "rect", band.Rect.String(), "magnitude", band.Magnitude)
	}

	logger.Debug("Worker finished.")
	return nil
}

func runBand(ctx context.Context, kind lightgrid.Kind, seq []lightgrid.Instruction, rect lightgrid.Rect) (Band, error) {
	backend, err := lightgrid.NewBackend(kind)
	if err != nil {
		return Band{}, err
	}

	band := Band{Rect: rect}
	for _, in := range seq {
		if err := ctx.Err(); err != nil {
			return Band{}, err
		}
		clipped, ok := in.Rect.Intersect(rect)
		if !ok {
			continue
		}
		lightgrid.ApplyInstruction(backend, lightgrid.Instruction{Action: in.Action, Rect: clipped})
		band.Applied += clipped.Cells()
	}
	band.Magnitude = lightgrid.Magnitude(backend)
	return band, nil
}
