package inspection

import "errors"

var (
	ErrRatingOutOfRange = errors.New("rating out of range")
	ErrChecklistSize    = errors.New("checklist must have exactly 8 entries")
)

const (
	// ChecklistSize is the fixed number of criteria every inspection records.
	ChecklistSize = 8

	MinRating = 1
	MaxRating = 10

	// MaxTotal is the score ceiling (ChecklistSize * MaxRating); the
	// classification thresholds are defined against it.
	MaxTotal = ChecklistSize * MaxRating

	// criticalThreshold: any single rating below it marks a critical failure.
	criticalThreshold = 5
)

// CriterionResult is one rated checklist entry.
type CriterionResult struct {
	CriterionID int
	Rating      int
	Notes       string
}

// Summary aggregates a validated checklist.
type Summary struct {
	Total           int
	CriticalFailure bool
}

// Score validates every rating and computes the checklist summary. The first
// out-of-range rating fails the whole checklist; there is no partial acceptance.
func Score(items []CriterionResult) (Summary, error) {
	var summary Summary
	for _, item := range items {
		if item.Rating < MinRating || item.Rating > MaxRating {
			return Summary{}, ErrRatingOutOfRange
		}
		summary.Total += item.Rating
		if item.Rating < criticalThreshold {
			summary.CriticalFailure = true
		}
	}
	return summary, nil
}
