// Package strength implements the password scoring engine.
//
// # Purpose
//
// This package turns a (username, password) pair into a model.AnalysisResult:
// a clamped 0-100 score, a rating with a color hint, an ordered list of
// improvement suggestions and an idealized entropy estimate.
//
// # Evaluation Order
//
// Analysis runs in a fixed order and the first short-circuit wins:
//  1. Empty password: placeholder result ("Start typing...")
//  2. Common password (case-insensitive exact match): score 0
//  3. Username local part contained in the password: score 0
//  4. Rule fold: penalties, bonuses, then missing-property suggestions
//
// # Rules
//
// Every penalty, bonus and suggestion is a Rule value returning a score delta
// and an optional suggestion. The engine folds the ordered rule list over a
// running score that starts at 0, so an intermediate score may be negative.
// Only the final score is clamped.
//
// # Usage
//
//	engine := strength.NewEngine()
//	result := engine.Analyze("alice@example.com", "correct horse")
//
// The engine holds no mutable state after construction and is safe for
// concurrent use.
package strength
