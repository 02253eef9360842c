package response

import (
	"time"

	"vtv-turnos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID       uuid.UUID  `json:"id"`
	Plate    *string    `json:"plate,omitempty"`
	StartsAt time.Time  `json:"startsAt"`
	Status   string     `json:"status"`
	ResultID *uuid.UUID `json:"resultId,omitempty"`
}

type AvailabilityResponse struct {
	Available []*SlotResponse `json:"available"`
}

type PendingResponse struct {
	Pending []*SlotResponse `json:"pending"`
}

type CriterionResultResponse struct {
	CriterionID int    `json:"criterionId"`
	Rating      int    `json:"rating"`
	Notes       string `json:"notes,omitempty"`
}

type InspectionResultResponse struct {
	ID      uuid.UUID                 `json:"id"`
	Verdict string                    `json:"verdict"`
	Total   int                       `json:"total"`
	Notes   string                    `json:"notes"`
	Items   []CriterionResultResponse `json:"items"`
}

type SlotDetailResponse struct {
	SlotResponse
	Result *InspectionResultResponse `json:"inspectionResult,omitempty"`
}

type FinalizeResponse struct {
	SlotID  uuid.UUID `json:"slotId"`
	Verdict string    `json:"verdict"`
}

func FromSlotRM(rm *readmodel.SlotRM) *SlotResponse {
	return &SlotResponse{
		ID:       rm.ID,
		Plate:    rm.Plate,
		StartsAt: rm.StartsAt,
		Status:   rm.Status,
		ResultID: rm.ResultID,
	}
}

func FromSlotRMs(rms []readmodel.SlotRM) []*SlotResponse {
	slots := make([]*SlotResponse, len(rms))
	for i := range rms {
		slots[i] = FromSlotRM(&rms[i])
	}
	return slots
}

func FromSlotDetailRM(rm *readmodel.SlotDetailRM) *SlotDetailResponse {
	detail := &SlotDetailResponse{SlotResponse: *FromSlotRM(&rm.SlotRM)}
	if rm.Result != nil {
		items := make([]CriterionResultResponse, len(rm.Result.Items))
		for i, item := range rm.Result.Items {
			items[i] = CriterionResultResponse{
				CriterionID: item.CriterionID,
				Rating:      item.Rating,
				Notes:       item.Notes,
			}
		}
		detail.Result = &InspectionResultResponse{
			ID:      rm.Result.ID,
			Verdict: rm.Result.Verdict,
			Total:   rm.Result.Total,
			Notes:   rm.Result.Notes,
			Items:   items,
		}
	}
	return detail
}

func FromFinalizedRM(rm *readmodel.FinalizedRM) *FinalizeResponse {
	return &FinalizeResponse{
		SlotID:  rm.SlotID,
		Verdict: rm.Verdict,
	}
}
