package usecase

import (
	"context"
	"time"

	"vtv-turnos/internal/domain/inspection"
	"vtv-turnos/internal/domain/slot"
	"vtv-turnos/internal/domain/user"
	"vtv-turnos/internal/domain/vehicle"
	"vtv-turnos/internal/infra/db"
	"vtv-turnos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Repository interfaces are declared here, on the consumer side; the pgx
// implementations live in internal/infra/repository.

type UserRepository interface {
	// FindByUsername returns the user read model together with its password hash.
	FindByUsername(ctx context.Context, username string) (*readmodel.UserRM, string, error)
	Create(ctx context.Context, u *user.User) error
	FindAll(ctx context.Context) ([]readmodel.UserRM, error)
}

type VehicleRepository interface {
	// Upsert inserts the vehicle if its plate is unknown; an existing plate is
	// left untouched (first write wins).
	Upsert(ctx context.Context, v vehicle.Vehicle) error
}

type SlotRepository interface {
	CreateBatch(ctx context.Context, tx db.Querier, slots []slot.Slot) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.SlotRM, error)
	FindFreeByDate(ctx context.Context, date time.Time) ([]readmodel.SlotRM, error)
	FindPending(ctx context.Context) ([]readmodel.SlotRM, error)
	// ReserveIfFree performs the guarded transition LIBRE -> RESERVADO in a
	// single conditional update; zero matched rows reports KindConflict.
	ReserveIfFree(ctx context.Context, id uuid.UUID, plate string) (*readmodel.SlotRM, error)
	// MarkFinalized performs the guarded transition RESERVADO -> FINALIZADO;
	// zero matched rows reports KindConflict.
	MarkFinalized(ctx context.Context, tx db.Querier, id, resultID uuid.UUID) error
}

type ResultRepository interface {
	// Create persists the result header and all criterion rows on tx.
	Create(ctx context.Context, tx db.Querier, res *inspection.Result) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.InspectionResultRM, error)
}

// UnitOfWork scopes a function to one database transaction; the transaction is
// committed when fn returns nil and rolled back otherwise.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.Querier) error) error
}
