package model

import "time"

// Summary aggregates a batch of password reports.
//
// Design decision: We create a separate summary rather than recomputing
// counts in every writer because:
// 1. It provides a consistent, curated view of the batch
// 2. It can be serialized to JSON for tools that want structured but simple output
// 3. It separates presentation concerns from data collection
type Summary struct {
	// DateAnalyzed is when the batch finished.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// Total is the number of analyzed passwords.
	Total int `json:"total"`

	// === Rating Distribution ===

	StrongCount int `json:"strong_count"`
	FairCount   int `json:"fair_count"`
	WeakCount   int `json:"weak_count"`
	EmptyCount  int `json:"empty_count"`

	// === Severity Summary ===

	CriticalCount int `json:"critical_count"`
	HighCount     int `json:"high_count"`
	MediumCount   int `json:"medium_count"`
	LowCount      int `json:"low_count"`
	InfoCount     int `json:"info_count"`

	// AverageScore is the mean clamped score.
	AverageScore float64 `json:"average_score"`

	// AverageEntropy is the mean entropy in bits.
	AverageEntropy float64 `json:"average_entropy"`

	// Reports holds the individual reports in input order.
	Reports []*PasswordReport `json:"reports"`
}

// NewSummary creates a Summary from the given reports.
// Nil entries are skipped.
func NewSummary(reports []*PasswordReport) *Summary {
	s := &Summary{
		DateAnalyzed: time.Now(),
		Reports:      make([]*PasswordReport, 0, len(reports)),
	}

	var scoreSum int
	var entropySum float64
	for _, r := range reports {
		if r == nil {
			continue
		}
		s.Reports = append(s.Reports, r)
		scoreSum += r.Result.Score
		entropySum += r.Result.Entropy
		s.countRating(r.Result.Rating)
		s.countSeverities(r.Findings)
	}

	s.Total = len(s.Reports)
	if s.Total > 0 {
		s.AverageScore = float64(scoreSum) / float64(s.Total)
		s.AverageEntropy = entropySum / float64(s.Total)
	}

	return s
}

// countRating increments the counter for a rating.
func (s *Summary) countRating(rating Rating) {
	switch rating {
	case RatingStrong:
		s.StrongCount++
	case RatingFair:
		s.FairCount++
	case RatingWeak:
		s.WeakCount++
	case RatingStart:
		s.EmptyCount++
	}
}

// countSeverities counts findings by severity level.
func (s *Summary) countSeverities(findings []Finding) {
	for _, f := range findings {
		switch f.Severity {
		case SeverityCritical:
			s.CriticalCount++
		case SeverityHigh:
			s.HighCount++
		case SeverityMedium:
			s.MediumCount++
		case SeverityLow:
			s.LowCount++
		case SeverityInfo:
			s.InfoCount++
		}
	}
}

// TotalFindings returns the total number of findings across the batch.
func (s *Summary) TotalFindings() int {
	return s.CriticalCount + s.HighCount + s.MediumCount + s.LowCount + s.InfoCount
}

// HasFindings returns true if there are any findings.
func (s *Summary) HasFindings() bool {
	return s.TotalFindings() > 0
}
