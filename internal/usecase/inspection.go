package usecase

import (
	"context"
	"errors"

	"vtv-turnos/internal/domain/inspection"
	"vtv-turnos/internal/domain/slot"
	"vtv-turnos/internal/infra"
	"vtv-turnos/internal/infra/db"
	"vtv-turnos/internal/pkg/errs"
	"vtv-turnos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// ErrSlotNotPending: finalization requires a RESERVADO slot; both a free and an
// already finalized slot are terminal failures.
var ErrSlotNotPending = errors.New("slot is not pending inspection")

type InspectionUseCase interface {
	Finalize(ctx context.Context, slotID uuid.UUID, items []inspection.CriterionResult) (*readmodel.FinalizedRM, error)
}

type inspectionUseCaseImpl struct {
	slotRepo   SlotRepository
	resultRepo ResultRepository
	uow        UnitOfWork
}

func NewInspectionUseCase(slotRepo SlotRepository, resultRepo ResultRepository, uow UnitOfWork) InspectionUseCase {
	return &inspectionUseCaseImpl{
		slotRepo:   slotRepo,
		resultRepo: resultRepo,
		uow:        uow,
	}
}

func (i *inspectionUseCaseImpl) Finalize(ctx context.Context, slotID uuid.UUID, items []inspection.CriterionResult) (*readmodel.FinalizedRM, error) {
	current, err := i.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if current.Status != string(slot.StatusReserved) {
		return nil, ErrSlotNotPending
	}

	result, err := inspection.NewResult(items)
	if err != nil {
		return nil, err
	}

	// Header, criterion rows and the slot transition must become visible
	// together or not at all.
	err = i.uow.Within(ctx, func(ctx context.Context, tx db.Querier) error {
		if err := i.resultRepo.Create(ctx, tx, result); err != nil {
			return err
		}
		return i.slotRepo.MarkFinalized(ctx, tx, slotID, result.ID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotNotPending
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &readmodel.FinalizedRM{
		SlotID:  slotID,
		Verdict: string(result.Verdict),
	}, nil
}
