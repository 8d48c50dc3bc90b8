package strength

import (
	"log/slog"
	"strings"

	"github.com/nao1215/pwmeter/internal/model"
)

// Rating thresholds. The first threshold the score exceeds wins.
const (
	strongThreshold = 70
	fairThreshold   = 50
	weakThreshold   = 30
)

// Score bounds.
const (
	minScore = 0
	maxScore = 100
)

// Engine scores passwords.
// It is immutable after NewEngine returns and safe for concurrent use.
type Engine struct {
	common commonSet
	rules  []Rule
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	extraCommon []string
	rules       []Rule
	logger      *slog.Logger
}

// WithExtraCommonPasswords merges additional entries into the common password set.
func WithExtraCommonPasswords(passwords []string) Option {
	return func(c *engineConfig) {
		c.extraCommon = append(c.extraCommon, passwords...)
	}
}

// WithRules replaces the default rule list.
func WithRules(rules []Rule) Option {
	return func(c *engineConfig) {
		c.rules = rules
	}
}

// WithLogger sets a logger that records which rules fired at debug level.
// The password itself is never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// NewEngine creates an Engine with the built-in common list and rules.
func NewEngine(opts ...Option) *Engine {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	rules := cfg.rules
	if rules == nil {
		rules = DefaultRules()
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		common: newCommonSet(cfg.extraCommon),
		rules:  append([]Rule(nil), rules...),
		logger: logger,
	}
}

// Analyze scores password for the given username. It never fails: an empty
// username disables the username check and an empty password yields the
// placeholder result.
func (e *Engine) Analyze(username, password string) model.AnalysisResult {
	if password == "" {
		return model.AnalysisResult{
			Score:       0,
			Rating:      model.RatingStart,
			Color:       model.ColorNeutral,
			Suggestions: []string{},
			Entropy:     0,
		}
	}

	entropy := Entropy(password)

	if e.common.contains(password) {
		e.logger.Debug("short-circuit", "rule", "common-password")
		return shortCircuit(model.SuggestionCommonPassword, entropy)
	}

	if local := usernameLocalPart(username); local != "" && strings.Contains(strings.ToLower(password), local) {
		e.logger.Debug("short-circuit", "rule", "username-match")
		return shortCircuit(model.SuggestionUsername, entropy)
	}

	in := NewInput(password)
	score := 0
	suggestions := []string{}
	for _, rule := range e.rules {
		out := rule.Apply(in)
		if out.Delta == 0 && out.Suggestion == "" {
			continue
		}
		e.logger.Debug("rule fired", "rule", rule.Name(), "delta", out.Delta)
		score += out.Delta
		if out.Suggestion != "" {
			suggestions = append(suggestions, out.Suggestion)
		}
	}

	score = clamp(score)
	rating, color := Rate(score)
	return model.AnalysisResult{
		Score:       score,
		Rating:      rating,
		Color:       color,
		Suggestions: suggestions,
		Entropy:     entropy,
	}
}

// IsCommon reports whether password is in this engine's common set.
func (e *Engine) IsCommon(password string) bool {
	return e.common.contains(password)
}

// Rate maps a clamped score to its rating and color hint.
func Rate(score int) (model.Rating, model.ColorHint) {
	switch {
	case score > strongThreshold:
		return model.RatingStrong, model.ColorPositive
	case score > fairThreshold:
		return model.RatingFair, model.ColorCaution
	case score > weakThreshold:
		return model.RatingWeak, model.ColorElevatedAlert
	default:
		return model.RatingWeak, model.ColorAlert
	}
}

// shortCircuit builds the zero-score result for a rejecting rule.
func shortCircuit(suggestion string, entropy float64) model.AnalysisResult {
	return model.AnalysisResult{
		Score:       0,
		Rating:      model.RatingWeak,
		Color:       model.ColorAlert,
		Suggestions: []string{suggestion},
		Entropy:     entropy,
	}
}

// usernameLocalPart returns the lowercased part of username before the first "@".
func usernameLocalPart(username string) string {
	local, _, _ := strings.Cut(username, "@")
	return strings.ToLower(local)
}

func clamp(score int) int {
	return max(minScore, min(maxScore, score))
}

// defaultEngine backs the package-level Analyze.
var defaultEngine = NewEngine()

// Analyze scores password with the default engine.
func Analyze(username, password string) model.AnalysisResult {
	return defaultEngine.Analyze(username, password)
}
