package usecase

import (
	"context"
	"errors"

	"vtv-turnos/internal/domain/slot"
	"vtv-turnos/internal/domain/user"
	"vtv-turnos/internal/infra"
	"vtv-turnos/internal/infra/db"
	"vtv-turnos/internal/pkg/errs"
	"vtv-turnos/internal/pkg/password"
	"vtv-turnos/internal/usecase/readmodel"
)

var (
	ErrUsernameTaken           = errors.New("username already taken")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type AdminUseCase interface {
	CreateUser(ctx context.Context, username, plainPassword, role string) (*readmodel.UserRM, error)
	ListUsers(ctx context.Context) ([]readmodel.UserRM, error)
	// GenerateSlots creates the free slot grid for a date in one batch and
	// returns the number of slots persisted.
	GenerateSlots(ctx context.Context, dateStr string) (int64, error)
}

type adminUseCaseImpl struct {
	userRepo UserRepository
	slotRepo SlotRepository
	uow      UnitOfWork
}

func NewAdminUseCase(userRepo UserRepository, slotRepo SlotRepository, uow UnitOfWork) AdminUseCase {
	return &adminUseCaseImpl{
		userRepo: userRepo,
		slotRepo: slotRepo,
		uow:      uow,
	}
}

func (a *adminUseCaseImpl) CreateUser(ctx context.Context, username, plainPassword, role string) (*readmodel.UserRM, error) {
	name, err := user.NewUsername(username)
	if err != nil {
		return nil, err
	}
	pass, err := user.NewPassword(plainPassword)
	if err != nil {
		return nil, err
	}
	userRole, err := user.NewRole(role)
	if err != nil {
		return nil, err
	}

	// Fast path only; the unique constraint on username is the invariant.
	if _, _, err := a.userRepo.FindByUsername(ctx, name.Value()); err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := password.HashPassword(pass.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	newUser := user.NewUser(name, hash, userRole)
	if err := a.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrUsernameTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &readmodel.UserRM{
		ID:       newUser.ID(),
		Username: newUser.Username().Value(),
		Role:     newUser.Role().String(),
	}, nil
}

func (a *adminUseCaseImpl) ListUsers(ctx context.Context) ([]readmodel.UserRM, error) {
	users, err := a.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return users, nil
}

func (a *adminUseCaseImpl) GenerateSlots(ctx context.Context, dateStr string) (int64, error) {
	date, err := slot.ParseDate(dateStr)
	if err != nil {
		return 0, err
	}

	slots := slot.GenerateDay(date)
	if len(slots) == 0 {
		return 0, nil
	}

	var count int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx db.Querier) error {
		count, err = a.slotRepo.CreateBatch(ctx, tx, slots)
		return err
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return count, nil
}
