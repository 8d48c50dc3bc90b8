package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/pwmeter/internal/model"
)

// DefaultConcurrency is the number of passwords analyzed at once when
// no WithConcurrency option is given.
const DefaultConcurrency = 8

// BatchProcessor analyzes many passwords concurrently.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding batch
// functionality to Pipeline because:
// 1. It keeps the Pipeline focused on a single password
// 2. Each goroutine gets a fresh pipeline from the factory
// 3. Results can be returned in input order regardless of completion order
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each password.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch analyzes the candidates and returns reports in input order.
// Step failures are recorded in each report; the error return is only
// set when the batch was cancelled. Slots for candidates that never
// started are nil.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, candidates []Candidate) ([]*model.PasswordReport, error) {
	bp.logger.Debug("starting batch processing",
		"total", len(candidates),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Each goroutine writes only its own index.
	results := make([]*model.PasswordReport, len(candidates))

	err := bp.ProcessBatchWithCallback(ctx, candidates, func(report *model.PasswordReport, index int) {
		results[index] = report
	})

	bp.logger.Debug("batch processing complete",
		"total", len(candidates),
		"elapsed", time.Since(startTime),
	)

	return results, err
}

// ProcessBatchWithCallback analyzes the candidates and calls callback for
// each completed report with its index in the input slice.
// The callback runs on the worker goroutine, so it must be safe for
// concurrent use if it touches shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	candidates []Candidate,
	callback func(report *model.PasswordReport, index int),
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report, err := bp.pipelineFactory().Run(ctx, candidate)
			if err != nil {
				bp.logger.Warn("analysis failed",
					"label", candidate.Label,
					"index", i+1,
					"error", err,
				)
			}

			callback(report, i)
			return nil
		})
	}

	return g.Wait()
}
