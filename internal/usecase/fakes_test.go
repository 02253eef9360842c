//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"time"

	"vtv-turnos/internal/domain/inspection"
	"vtv-turnos/internal/domain/slot"
	"vtv-turnos/internal/domain/user"
	"vtv-turnos/internal/domain/vehicle"
	"vtv-turnos/internal/infra"
	"vtv-turnos/internal/infra/db"
	"vtv-turnos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Hand-written stubs for the repository ports. Unset funcs fail loudly so a
// test cannot silently exercise a path it did not stub.

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows in result set"), infra.KindNotFound)
}

func conflictErr(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows matched"), infra.KindConflict)
}

type stubUserRepo struct {
	findByUsernameFn func(ctx context.Context, username string) (*readmodel.UserRM, string, error)
	createFn         func(ctx context.Context, u *user.User) error
	findAllFn        func(ctx context.Context) ([]readmodel.UserRM, error)
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*readmodel.UserRM, string, error) {
	if s.findByUsernameFn == nil {
		panic("FindByUsername not stubbed")
	}
	return s.findByUsernameFn(ctx, username)
}

func (s *stubUserRepo) Create(ctx context.Context, u *user.User) error {
	if s.createFn == nil {
		panic("Create not stubbed")
	}
	return s.createFn(ctx, u)
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]readmodel.UserRM, error) {
	if s.findAllFn == nil {
		panic("FindAll not stubbed")
	}
	return s.findAllFn(ctx)
}

type stubVehicleRepo struct {
	upsertFn func(ctx context.Context, v vehicle.Vehicle) error
	upserted []vehicle.Vehicle
}

func (s *stubVehicleRepo) Upsert(ctx context.Context, v vehicle.Vehicle) error {
	s.upserted = append(s.upserted, v)
	if s.upsertFn == nil {
		return nil
	}
	return s.upsertFn(ctx, v)
}

type stubSlotRepo struct {
	createBatchFn    func(ctx context.Context, tx db.Querier, slots []slot.Slot) (int64, error)
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*readmodel.SlotRM, error)
	findFreeByDateFn func(ctx context.Context, date time.Time) ([]readmodel.SlotRM, error)
	findPendingFn    func(ctx context.Context) ([]readmodel.SlotRM, error)
	reserveIfFreeFn  func(ctx context.Context, id uuid.UUID, plate string) (*readmodel.SlotRM, error)
	markFinalizedFn  func(ctx context.Context, tx db.Querier, id, resultID uuid.UUID) error
}

func (s *stubSlotRepo) CreateBatch(ctx context.Context, tx db.Querier, slots []slot.Slot) (int64, error) {
	if s.createBatchFn == nil {
		panic("CreateBatch not stubbed")
	}
	return s.createBatchFn(ctx, tx, slots)
}

func (s *stubSlotRepo) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.SlotRM, error) {
	if s.findByIDFn == nil {
		panic("FindByID not stubbed")
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubSlotRepo) FindFreeByDate(ctx context.Context, date time.Time) ([]readmodel.SlotRM, error) {
	if s.findFreeByDateFn == nil {
		panic("FindFreeByDate not stubbed")
	}
	return s.findFreeByDateFn(ctx, date)
}

func (s *stubSlotRepo) FindPending(ctx context.Context) ([]readmodel.SlotRM, error) {
	if s.findPendingFn == nil {
		panic("FindPending not stubbed")
	}
	return s.findPendingFn(ctx)
}

func (s *stubSlotRepo) ReserveIfFree(ctx context.Context, id uuid.UUID, plate string) (*readmodel.SlotRM, error) {
	if s.reserveIfFreeFn == nil {
		panic("ReserveIfFree not stubbed")
	}
	return s.reserveIfFreeFn(ctx, id, plate)
}

func (s *stubSlotRepo) MarkFinalized(ctx context.Context, tx db.Querier, id, resultID uuid.UUID) error {
	if s.markFinalizedFn == nil {
		panic("MarkFinalized not stubbed")
	}
	return s.markFinalizedFn(ctx, tx, id, resultID)
}

type stubResultRepo struct {
	createFn   func(ctx context.Context, tx db.Querier, res *inspection.Result) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*readmodel.InspectionResultRM, error)
	created    []*inspection.Result
}

func (s *stubResultRepo) Create(ctx context.Context, tx db.Querier, res *inspection.Result) error {
	s.created = append(s.created, res)
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, tx, res)
}

func (s *stubResultRepo) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.InspectionResultRM, error) {
	if s.findByIDFn == nil {
		panic("FindByID not stubbed")
	}
	return s.findByIDFn(ctx, id)
}

// stubUoW runs fn inline without a real transaction.
type stubUoW struct {
	withinErr error
	calls     int
}

func (s *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.Querier) error) error {
	s.calls++
	if s.withinErr != nil {
		return s.withinErr
	}
	return fn(ctx, nil)
}
