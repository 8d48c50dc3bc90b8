// Package pipeline runs a password through a sequence of analysis steps.
//
// The default pipeline scores the password with the strength engine,
// attaches a guess-based crack time estimate, and optionally checks the
// history database for earlier sightings. Each stage is a Step that
// receives the candidate and the report being built.
//
// The password travels only in the Candidate value passed to each step.
// Reports, logs and history rows never contain it.
//
// BatchProcessor analyzes many candidates concurrently with errgroup and
// returns reports in input order.
package pipeline
