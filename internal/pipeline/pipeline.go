package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/pwmeter/internal/model"
)

// Candidate is a password submitted for analysis.
// It is passed to every step by value and never stored in a report.
type Candidate struct {
	// Label identifies the password in reports and history.
	Label string

	// Username is optional; it feeds the username rule and the estimator.
	Username string

	// Password is the secret under analysis.
	Password string
}

// Step is one stage of a password analysis. Steps run in order and each
// one sees the report as left by the steps before it.
//
// Design decision: Steps are an interface rather than plain functions because:
// 1. Steps carry their collaborators (engine, history store)
// 2. Name() gives log lines and PerformedSteps a stable identifier
// 3. Tests can substitute a single step
type Step interface {
	// Do runs the step. Problems that do not invalidate the report should be
	// recorded in it and nil returned.
	Do(ctx context.Context, candidate Candidate, report *model.PasswordReport) error

	// Name identifies the step in logs and reports.
	Name() string
}

// Pipeline runs an ordered list of steps against one candidate.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger

	// continueOnError keeps running later steps after a failure.
	continueOnError bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError makes a failing step non-fatal. The error is still
// recorded in the report. The CLI sets it so that a broken history
// database does not hide the score.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates an empty Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends steps in the given order.
func (p *Pipeline) AddSteps(steps ...Step) {
	for _, step := range steps {
		p.AddStep(step)
	}
}

// Execute runs the steps in order on report. The context is checked before
// each step. Only the label is ever logged.
//
// With continueOnError unset, the first step error is returned. Otherwise
// errors are recorded in the report and Execute returns nil.
func (p *Pipeline) Execute(ctx context.Context, candidate Candidate, report *model.PasswordReport) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("analysis cancelled", "label", report.Label, "before_step", step.Name())
			return err
		}

		start := time.Now()
		err := step.Do(ctx, candidate, report)
		logger := p.logger.With("step", step.Name(), "label", report.Label)

		if err != nil {
			logger.Error("step failed", "error", err)
			report.Error = err
			report.ErrorMessage = err.Error()
			if !p.continueOnError {
				return err
			}
		} else {
			logger.Debug("step done", "duration", time.Since(start))
		}

		report.PerformedSteps = append(report.PerformedSteps, step.Name())
	}
	return nil
}

// Run creates a report for the candidate and executes the pipeline on it.
// The report is returned even when a step fails.
func (p *Pipeline) Run(ctx context.Context, candidate Candidate) (*model.PasswordReport, error) {
	report := model.NewPasswordReport(candidate.Label, candidate.Password)
	err := p.Execute(ctx, candidate, report)
	return report, err
}

// StepCount returns the number of steps.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
