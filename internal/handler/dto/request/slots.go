package request

import (
	"vtv-turnos/internal/domain/inspection"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	SlotID uuid.UUID `json:"slotId" binding:"required"`
	Plate  string    `json:"plate" binding:"required"`
	MakeID int       `json:"makeId" binding:"required"`
	Year   int       `json:"year" binding:"required"`
}

type ChecklistItem struct {
	CriterionID int    `json:"criterionId" binding:"required"`
	Rating      int    `json:"rating"`
	Notes       string `json:"notes"`
}

// FinalizeRequest carries the fixed-shape checklist; the boundary enforces its
// size, rating ranges are the scoring engine's concern.
type FinalizeRequest struct {
	Items []ChecklistItem `json:"items" binding:"required,len=8,dive"`
}

func (r FinalizeRequest) ToDomain() []inspection.CriterionResult {
	items := make([]inspection.CriterionResult, len(r.Items))
	for i, item := range r.Items {
		items[i] = inspection.CriterionResult{
			CriterionID: item.CriterionID,
			Rating:      item.Rating,
			Notes:       item.Notes,
		}
	}
	return items
}
