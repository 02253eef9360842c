//go:build unit

package api_test

import (
	"context"

	"vtv-turnos/internal/domain/inspection"
	"vtv-turnos/internal/domain/user"
	"vtv-turnos/internal/usecase"
	"vtv-turnos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Stub use cases wired into the handlers under test. Unset funcs fail loudly.

type stubAuthUseCase struct {
	loginFn func(ctx context.Context, username, password string) (*usecase.LoginResult, error)
}

func (s *stubAuthUseCase) Login(ctx context.Context, username, password string) (*usecase.LoginResult, error) {
	if s.loginFn == nil {
		panic("Login not stubbed")
	}
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthUseCase) ValidateToken(string) (uuid.UUID, string, user.Role, error) {
	panic("ValidateToken not stubbed")
}

type stubAdminUseCase struct {
	createUserFn    func(ctx context.Context, username, password, role string) (*readmodel.UserRM, error)
	listUsersFn     func(ctx context.Context) ([]readmodel.UserRM, error)
	generateSlotsFn func(ctx context.Context, dateStr string) (int64, error)
}

func (s *stubAdminUseCase) CreateUser(ctx context.Context, username, password, role string) (*readmodel.UserRM, error) {
	if s.createUserFn == nil {
		panic("CreateUser not stubbed")
	}
	return s.createUserFn(ctx, username, password, role)
}

func (s *stubAdminUseCase) ListUsers(ctx context.Context) ([]readmodel.UserRM, error) {
	if s.listUsersFn == nil {
		panic("ListUsers not stubbed")
	}
	return s.listUsersFn(ctx)
}

func (s *stubAdminUseCase) GenerateSlots(ctx context.Context, dateStr string) (int64, error) {
	if s.generateSlotsFn == nil {
		panic("GenerateSlots not stubbed")
	}
	return s.generateSlotsFn(ctx, dateStr)
}

type stubSlotUseCase struct {
	queryAvailabilityFn func(ctx context.Context, dateStr string) ([]readmodel.SlotRM, error)
	reserveFn           func(ctx context.Context, slotID uuid.UUID, plate string, makeID, year int) (*readmodel.SlotRM, error)
	getFn               func(ctx context.Context, slotID uuid.UUID) (*readmodel.SlotDetailRM, error)
	listPendingFn       func(ctx context.Context) ([]readmodel.SlotRM, error)
}

func (s *stubSlotUseCase) QueryAvailability(ctx context.Context, dateStr string) ([]readmodel.SlotRM, error) {
	if s.queryAvailabilityFn == nil {
		panic("QueryAvailability not stubbed")
	}
	return s.queryAvailabilityFn(ctx, dateStr)
}

func (s *stubSlotUseCase) Reserve(ctx context.Context, slotID uuid.UUID, plate string, makeID, year int) (*readmodel.SlotRM, error) {
	if s.reserveFn == nil {
		panic("Reserve not stubbed")
	}
	return s.reserveFn(ctx, slotID, plate, makeID, year)
}

func (s *stubSlotUseCase) Get(ctx context.Context, slotID uuid.UUID) (*readmodel.SlotDetailRM, error) {
	if s.getFn == nil {
		panic("Get not stubbed")
	}
	return s.getFn(ctx, slotID)
}

func (s *stubSlotUseCase) ListPending(ctx context.Context) ([]readmodel.SlotRM, error) {
	if s.listPendingFn == nil {
		panic("ListPending not stubbed")
	}
	return s.listPendingFn(ctx)
}

type stubInspectionUseCase struct {
	finalizeFn func(ctx context.Context, slotID uuid.UUID, items []inspection.CriterionResult) (*readmodel.FinalizedRM, error)
}

func (s *stubInspectionUseCase) Finalize(ctx context.Context, slotID uuid.UUID, items []inspection.CriterionResult) (*readmodel.FinalizedRM, error) {
	if s.finalizeFn == nil {
		panic("Finalize not stubbed")
	}
	return s.finalizeFn(ctx, slotID, items)
}
