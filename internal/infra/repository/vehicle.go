package repository

import (
	"context"

	"vtv-turnos/internal/domain/vehicle"
	"vtv-turnos/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepository struct {
	pool *pgxpool.Pool
}

func NewVehicleRepository(pool *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{pool: pool}
}

// Upsert registers the vehicle on first sight; an existing plate keeps its
// original make and year.
func (r *VehicleRepository) Upsert(ctx context.Context, v vehicle.Vehicle) error {
	const query = `
		INSERT INTO vehicles (plate, make_id, year)
		VALUES ($1, $2, $3)
		ON CONFLICT (plate) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, v.Plate, v.MakeID, v.Year)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert vehicle", err)
	}
	return nil
}
