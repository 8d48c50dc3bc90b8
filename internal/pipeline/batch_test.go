package pipeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nao1215/pwmeter/internal/model"
	"github.com/nao1215/pwmeter/internal/strength"
)

// TestBatchProcessorNew tests the BatchProcessor constructor.
func TestBatchProcessorNew(t *testing.T) {
	t.Parallel()

	t.Run("creates processor with defaults", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return New() })

		if bp == nil {
			t.Fatal("expected non-nil processor")
		}
		if bp.concurrency != DefaultConcurrency {
			t.Errorf("expected default concurrency %d, got %d", DefaultConcurrency, bp.concurrency)
		}
	})

	t.Run("applies WithConcurrency option", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return New() }, WithConcurrency(5))
		if bp.concurrency != 5 {
			t.Errorf("expected concurrency 5, got %d", bp.concurrency)
		}
	})

	t.Run("ignores non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return New() }, WithConcurrency(0))
		if bp.concurrency != DefaultConcurrency {
			t.Errorf("expected concurrency %d, got %d", DefaultConcurrency, bp.concurrency)
		}
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		t.Parallel()

		bp := NewBatchProcessor(func() *Pipeline { return New() }, WithBatchLogger(nil))
		if bp.logger == nil {
			t.Error("expected non-nil logger")
		}
	})
}

// TestBatchProcessorProcessBatch tests batch processing.
func TestBatchProcessorProcessBatch(t *testing.T) {
	t.Parallel()

	t.Run("returns reports in input order", func(t *testing.T) {
		t.Parallel()

		passwords := []string{"Aa1!Aa1!Aa1!", "aaaa1234", "", "Tr0ub4dor", "password", "zebracat"}
		candidates := make([]Candidate, len(passwords))
		for i, pw := range passwords {
			candidates[i] = Candidate{Label: fmt.Sprintf("#%d", i+1), Password: pw}
		}

		bp := NewBatchProcessor(func() *Pipeline {
			return DefaultPipeline(nil, WithPipelineEstimate(false))
		}, WithConcurrency(3))

		reports, err := bp.ProcessBatch(context.Background(), candidates)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != len(passwords) {
			t.Fatalf("expected %d reports, got %d", len(passwords), len(reports))
		}

		for i, report := range reports {
			if report.Label != candidates[i].Label {
				t.Errorf("report %d: label %q, expected %q", i, report.Label, candidates[i].Label)
			}
			if !report.Result.Equal(strength.Analyze("", passwords[i])) {
				t.Errorf("report %d: unexpected result %+v", i, report.Result)
			}
		}
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var current, peak int32
		factory := func() *Pipeline {
			p := New()
			p.AddStep(&mockStep{name: "slow", doFunc: func(context.Context, Candidate, *model.PasswordReport) error {
				n := atomic.AddInt32(&current, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&current, -1)
				return nil
			}})
			return p
		}

		candidates := make([]Candidate, 12)
		bp := NewBatchProcessor(factory, WithConcurrency(2))
		if _, err := bp.ProcessBatch(context.Background(), candidates); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if p := atomic.LoadInt32(&peak); p > 2 {
			t.Errorf("expected at most 2 concurrent analyses, got %d", p)
		}
	})

	t.Run("records step errors without failing the batch", func(t *testing.T) {
		t.Parallel()

		factory := func() *Pipeline {
			p := New()
			p.AddStep(&mockStep{name: "broken", doFunc: func(_ context.Context, c Candidate, _ *model.PasswordReport) error {
				if c.Label == "#2" {
					return fmt.Errorf("cannot analyze %s", c.Label)
				}
				return nil
			}})
			return p
		}

		reports, err := NewBatchProcessor(factory).ProcessBatch(context.Background(), []Candidate{{Label: "#1"}, {Label: "#2"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reports[0].ErrorMessage != "" {
			t.Errorf("unexpected error on #1: %s", reports[0].ErrorMessage)
		}
		if reports[1].ErrorMessage != "cannot analyze #2" {
			t.Errorf("expected error on #2, got %q", reports[1].ErrorMessage)
		}
	})

	t.Run("cancelled context returns error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		bp := NewBatchProcessor(func() *Pipeline { return DefaultPipeline(nil) })
		if _, err := bp.ProcessBatch(ctx, []Candidate{{Password: "a"}, {Password: "b"}}); err == nil {
			t.Error("expected error for cancelled context")
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()

		reports, err := NewBatchProcessor(func() *Pipeline { return New() }).ProcessBatch(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 0 {
			t.Errorf("expected no reports, got %d", len(reports))
		}
	})
}

// TestBatchProcessorProcessBatchWithCallback tests streaming results.
func TestBatchProcessorProcessBatchWithCallback(t *testing.T) {
	t.Parallel()

	candidates := []Candidate{
		{Label: "a", Password: "zebracat"},
		{Label: "b", Password: "Summer2019!"},
		{Label: "c", Password: "19999"},
	}

	var mu sync.Mutex
	seen := make(map[int]string)

	bp := NewBatchProcessor(func() *Pipeline {
		return DefaultPipeline(nil, WithPipelineEstimate(false))
	})
	err := bp.ProcessBatchWithCallback(context.Background(), candidates, func(report *model.PasswordReport, index int) {
		mu.Lock()
		defer mu.Unlock()
		seen[index] = report.Label
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seen) != len(candidates) {
		t.Fatalf("expected %d callbacks, got %d", len(candidates), len(seen))
	}
	for i, c := range candidates {
		if seen[i] != c.Label {
			t.Errorf("index %d: got %q, expected %q", i, seen[i], c.Label)
		}
	}
}
