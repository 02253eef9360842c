package inspection

import "github.com/google/uuid"

// Result is the inspection outcome: a header plus its eight criterion rows.
// Immutable once persisted.
type Result struct {
	ID      uuid.UUID
	Verdict Verdict
	Total   int
	Notes   string
	Items   []CriterionResult
}

// NewResult validates the checklist, scores it and classifies the outcome.
func NewResult(items []CriterionResult) (*Result, error) {
	if len(items) != ChecklistSize {
		return nil, ErrChecklistSize
	}

	summary, err := Score(items)
	if err != nil {
		return nil, err
	}

	verdict := Classify(summary.Total, summary.CriticalFailure)

	return &Result{
		ID:      uuid.New(),
		Verdict: verdict,
		Total:   summary.Total,
		Notes:   AutoNote(verdict, summary.Total),
		Items:   items,
	}, nil
}
