package api

import (
	"errors"
	"net/http"

	"vtv-turnos/internal/domain/inspection"
	"vtv-turnos/internal/domain/slot"
	"vtv-turnos/internal/domain/vehicle"
	reqdto "vtv-turnos/internal/handler/dto/request"
	"vtv-turnos/internal/handler/httperr"
	resdto "vtv-turnos/internal/handler/dto/response"
	"vtv-turnos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotUseCase       usecase.SlotUseCase
	inspectionUseCase usecase.InspectionUseCase
}

func NewSlotHandler(slotUseCase usecase.SlotUseCase, inspectionUseCase usecase.InspectionUseCase) *SlotHandler {
	return &SlotHandler{
		slotUseCase:       slotUseCase,
		inspectionUseCase: inspectionUseCase,
	}
}

// @Summary Query availability
// @Description List free slots for a date, ordered by time
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /slots/availability [get]
func (h *SlotHandler) Availability(c *gin.Context) {
	free, err := h.slotUseCase.QueryAvailability(c.Request.Context(), c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Available: resdto.FromSlotRMs(free)})
}

// @Summary Reserve slot
// @Description Reserve a free slot for a vehicle
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReserveRequest true "Reservation request"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/reserve [post]
func (h *SlotHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	slotRM, err := h.slotUseCase.Reserve(c.Request.Context(), req.SlotID, req.Plate, req.MakeID, req.Year)
	if err != nil {
		var stateErr *usecase.SlotStateError
		switch {
		case errors.Is(err, vehicle.ErrInvalidPlate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Plate is required", nil)
		case errors.Is(err, usecase.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.As(err, &stateErr):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is already "+string(stateErr.Status), nil)
		case errors.Is(err, usecase.ErrSlotTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is no longer free", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotRM(slotRM))
}

// @Summary Get slot
// @Description Get a slot by ID; a finalized slot carries its full inspection result
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [get]
func (h *SlotHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
		return
	}

	detail, err := h.slotUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotDetailRM(detail))
}

// @Summary List pending slots
// @Description List reserved slots awaiting inspection, ordered by time
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PendingResponse
// @Router /slots/pending [get]
func (h *SlotHandler) Pending(c *gin.Context) {
	pending, err := h.slotUseCase.ListPending(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.PendingResponse{Pending: resdto.FromSlotRMs(pending)})
}

// @Summary Finalize inspection
// @Description Record the eight-criterion checklist and finalize the slot
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.FinalizeRequest true "Checklist"
// @Success 200 {object} resdto.FinalizeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{id}/finalize [post]
func (h *SlotHandler) Finalize(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
		return
	}

	var req reqdto.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Checklist must have exactly 8 entries", nil)
		return
	}

	result, err := h.inspectionUseCase.Finalize(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, inspection.ErrRatingOutOfRange),
			errors.Is(err, inspection.ErrChecklistSize):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, usecase.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, usecase.ErrSlotNotPending):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is not pending inspection", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFinalizedRM(result))
}
