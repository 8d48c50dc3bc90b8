package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/nao1215/pwmeter/internal/model"
	"github.com/nao1215/pwmeter/internal/strength"
)

// ScoreStep runs the strength engine and stores its result.
// It always succeeds.
type ScoreStep struct {
	engine *strength.Engine
}

// NewScoreStep creates a scoring step. A nil engine uses the defaults.
func NewScoreStep(engine *strength.Engine) *ScoreStep {
	if engine == nil {
		engine = strength.NewEngine()
	}
	return &ScoreStep{engine: engine}
}

// Name returns the step name.
func (s *ScoreStep) Name() string {
	return "score"
}

// Do executes the scoring step.
func (s *ScoreStep) Do(_ context.Context, candidate Candidate, report *model.PasswordReport) error {
	report.Classes = strength.Classify(candidate.Password)
	report.SetResult(s.engine.Analyze(candidate.Username, candidate.Password))
	return nil
}

const (
	// GuessableScore is the highest estimator score that adds a finding.
	GuessableScore = 1

	// MaxEstimateLength is the number of leading runes given to the
	// estimator. zxcvbn slows down sharply on long input.
	MaxEstimateLength = 50
)

// EstimateStep cross-checks the password with a guess-based estimator
// (zxcvbn). The estimate is attached to the report and never changes the
// engine's score.
//
// Design decision: zxcvbn knows dictionaries and keyboard patterns that the
// rule engine does not. Showing its crack time next to the rule score
// lets users see when a rule-compliant password is still easy to guess.
type EstimateStep struct {
	logger *slog.Logger
}

// EstimateStepOption configures an EstimateStep.
type EstimateStepOption func(*EstimateStep)

// WithEstimateLogger sets a custom logger for the estimate step.
func WithEstimateLogger(logger *slog.Logger) EstimateStepOption {
	return func(s *EstimateStep) {
		s.logger = logger
	}
}

// NewEstimateStep creates an estimate step.
func NewEstimateStep(opts ...EstimateStepOption) *EstimateStep {
	s := &EstimateStep{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *EstimateStep) Name() string {
	return "estimate"
}

// Do executes the estimate step. Empty passwords are skipped.
func (s *EstimateStep) Do(_ context.Context, candidate Candidate, report *model.PasswordReport) error {
	if candidate.Password == "" {
		return nil
	}

	var userInputs []string
	if candidate.Username != "" {
		userInputs = []string{candidate.Username}
	}

	match := zxcvbn.PasswordStrength(truncateRunes(candidate.Password, MaxEstimateLength), userInputs)
	report.GuessEstimate = &model.GuessEstimate{
		Score:            match.Score,
		Entropy:          match.Entropy,
		CrackTime:        match.CrackTime,
		CrackTimeDisplay: match.CrackTimeDisplay,
	}

	if match.Score <= GuessableScore {
		report.AddGuessFinding(match.CrackTimeDisplay)
	}

	s.logger.Debug("estimate complete",
		"label", report.Label,
		"estimator_score", match.Score,
	)
	return nil
}

// truncateRunes returns at most n leading runes of s.
func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// HistoryStore records analyses without storing passwords.
// *database.HistoryDB implements it.
type HistoryStore interface {
	// Fingerprint returns a salted one-way hash of the password.
	Fingerprint(password string) string

	// CountFingerprint returns how many stored entries share the fingerprint.
	CountFingerprint(ctx context.Context, fingerprint string) (int, error)

	// Save stores the report.
	Save(ctx context.Context, report *model.PasswordReport) (int64, error)
}

// HistoryStep fingerprints the password, counts earlier sightings and
// optionally saves the report.
type HistoryStep struct {
	store HistoryStore
	save  bool
}

// NewHistoryStep creates a history step. With save false the step only
// looks up earlier sightings.
func NewHistoryStep(store HistoryStore, save bool) *HistoryStep {
	return &HistoryStep{store: store, save: save}
}

// Name returns the step name.
func (s *HistoryStep) Name() string {
	return "history"
}

// Do executes the history step. Empty passwords are skipped.
func (s *HistoryStep) Do(ctx context.Context, candidate Candidate, report *model.PasswordReport) error {
	if candidate.Password == "" {
		return nil
	}

	report.Fingerprint = s.store.Fingerprint(candidate.Password)

	seen, err := s.store.CountFingerprint(ctx, report.Fingerprint)
	if err != nil {
		return fmt.Errorf("failed to look up history: %w", err)
	}
	report.SeenBefore = seen

	if !s.save {
		return nil
	}
	if _, err := s.store.Save(ctx, report); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// Engine scores passwords. Nil uses the default engine.
	Engine *strength.Engine

	// Estimate enables the guess-based estimate step.
	Estimate bool

	// History enables the history step when non-nil.
	History HistoryStore

	// SaveHistory stores each report in History.
	SaveHistory bool
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineEngine sets the scoring engine.
func WithPipelineEngine(engine *strength.Engine) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Engine = engine
	}
}

// WithPipelineEstimate enables or disables the estimate step.
func WithPipelineEstimate(enabled bool) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Estimate = enabled
	}
}

// WithPipelineHistory enables the history step.
func WithPipelineHistory(store HistoryStore, save bool) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.History = store
		c.SaveHistory = save
	}
}

// DefaultPipeline creates a pipeline with the standard steps:
// score, then estimate, then history. The estimate step is on by default.
//
// The first parameter accepts pipeline options (WithLogger, etc).
// The variadic parameter accepts pipeline config options.
func DefaultPipeline(pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := &DefaultPipelineConfig{Estimate: true}
	for _, opt := range configOpts {
		opt(cfg)
	}

	p.AddStep(NewScoreStep(cfg.Engine))
	if cfg.Estimate {
		p.AddStep(NewEstimateStep(WithEstimateLogger(p.logger)))
	}
	if cfg.History != nil {
		p.AddStep(NewHistoryStep(cfg.History, cfg.SaveHistory))
	}

	return p
}
