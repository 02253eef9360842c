package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type SlotRM struct {
	ID       uuid.UUID
	Plate    *string
	StartsAt time.Time
	Status   string
	ResultID *uuid.UUID
}

type CriterionResultRM struct {
	CriterionID int
	Rating      int
	Notes       string
}

type InspectionResultRM struct {
	ID      uuid.UUID
	Verdict string
	Total   int
	Notes   string
	Items   []CriterionResultRM
}

// SlotDetailRM is a slot with its inspection result materialized when the slot
// is finalized; Result is nil otherwise.
type SlotDetailRM struct {
	SlotRM
	Result *InspectionResultRM
}

type FinalizedRM struct {
	SlotID  uuid.UUID
	Verdict string
}
