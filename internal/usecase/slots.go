package usecase

import (
	"context"
	"errors"
	"fmt"

	"vtv-turnos/internal/domain/slot"
	"vtv-turnos/internal/domain/vehicle"
	"vtv-turnos/internal/infra"
	"vtv-turnos/internal/pkg/errs"
	"vtv-turnos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound = errors.New("slot not found")
	ErrSlotTaken    = errors.New("slot is no longer free")
)

// SlotStateError reports a reservation attempt against a slot whose state was
// already observed as something other than LIBRE.
type SlotStateError struct {
	Status slot.Status
}

func (e *SlotStateError) Error() string {
	return fmt.Sprintf("slot is already %s", e.Status)
}

type SlotUseCase interface {
	QueryAvailability(ctx context.Context, dateStr string) ([]readmodel.SlotRM, error)
	Reserve(ctx context.Context, slotID uuid.UUID, plate string, makeID, year int) (*readmodel.SlotRM, error)
	Get(ctx context.Context, slotID uuid.UUID) (*readmodel.SlotDetailRM, error)
	ListPending(ctx context.Context) ([]readmodel.SlotRM, error)
}

type slotUseCaseImpl struct {
	slotRepo    SlotRepository
	vehicleRepo VehicleRepository
	resultRepo  ResultRepository
}

func NewSlotUseCase(slotRepo SlotRepository, vehicleRepo VehicleRepository, resultRepo ResultRepository) SlotUseCase {
	return &slotUseCaseImpl{
		slotRepo:    slotRepo,
		vehicleRepo: vehicleRepo,
		resultRepo:  resultRepo,
	}
}

func (s *slotUseCaseImpl) QueryAvailability(ctx context.Context, dateStr string) ([]readmodel.SlotRM, error) {
	date, err := slot.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	free, err := s.slotRepo.FindFreeByDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return free, nil
}

func (s *slotUseCaseImpl) Reserve(ctx context.Context, slotID uuid.UUID, plate string, makeID, year int) (*readmodel.SlotRM, error) {
	veh, err := vehicle.New(plate, makeID, year)
	if err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Upsert(ctx, veh); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	current, err := s.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if current.Status != string(slot.StatusFree) {
		return nil, &SlotStateError{Status: slot.Status(current.Status)}
	}

	// The conditional update is the only double-booking guard; a concurrent
	// reservation between the read above and this write surfaces as zero
	// matched rows, never as a false success.
	reserved, err := s.slotRepo.ReserveIfFree(ctx, slotID, veh.Plate)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return reserved, nil
}

func (s *slotUseCaseImpl) Get(ctx context.Context, slotID uuid.UUID) (*readmodel.SlotDetailRM, error) {
	slotRM, err := s.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	detail := &readmodel.SlotDetailRM{SlotRM: *slotRM}
	if slotRM.Status == string(slot.StatusFinalized) && slotRM.ResultID != nil {
		result, err := s.resultRepo.FindByID(ctx, *slotRM.ResultID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		detail.Result = result
	}
	return detail, nil
}

func (s *slotUseCaseImpl) ListPending(ctx context.Context) ([]readmodel.SlotRM, error) {
	pending, err := s.slotRepo.FindPending(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return pending, nil
}
