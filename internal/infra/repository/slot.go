package repository

import (
	"context"
	"errors"
	"time"

	"vtv-turnos/internal/domain/slot"
	"vtv-turnos/internal/infra"
	"vtv-turnos/internal/infra/db"
	"vtv-turnos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

func (r *SlotRepository) CreateBatch(ctx context.Context, tx db.Querier, slots []slot.Slot) (int64, error) {
	const query = `
		INSERT INTO slots (id, plate, starts_at, status, result_id)
		VALUES ($1, NULL, $2, $3, NULL)`

	var count int64
	for _, s := range slots {
		tag, err := tx.Exec(ctx, query, s.ID, s.StartsAt, string(s.Status))
		if err != nil {
			return 0, infra.WrapRepoErr("failed to insert slot batch", err)
		}
		count += tag.RowsAffected()
	}
	return count, nil
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.SlotRM, error) {
	const query = `
		SELECT id, plate, starts_at, status, result_id
		FROM slots
		WHERE id = $1`

	rm, err := scanSlot(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return rm, nil
}

func (r *SlotRepository) FindFreeByDate(ctx context.Context, date time.Time) ([]readmodel.SlotRM, error) {
	const query = `
		SELECT id, plate, starts_at, status, result_id
		FROM slots
		WHERE status = $1 AND starts_at >= $2 AND starts_at < $3
		ORDER BY starts_at`

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := r.pool.Query(ctx, query, string(slot.StatusFree), dayStart, dayEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query free slots", err)
	}
	defer rows.Close()

	return collectSlots(rows)
}

func (r *SlotRepository) FindPending(ctx context.Context) ([]readmodel.SlotRM, error) {
	const query = `
		SELECT id, plate, starts_at, status, result_id
		FROM slots
		WHERE status = $1
		ORDER BY starts_at`

	rows, err := r.pool.Query(ctx, query, string(slot.StatusReserved))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query pending slots", err)
	}
	defer rows.Close()

	return collectSlots(rows)
}

// ReserveIfFree is the anti-double-booking guard: the state check is part of
// the UPDATE predicate, so losing a race yields zero rows, never a stale write.
func (r *SlotRepository) ReserveIfFree(ctx context.Context, id uuid.UUID, plate string) (*readmodel.SlotRM, error) {
	const query = `
		UPDATE slots
		SET plate = $2, status = $3
		WHERE id = $1 AND status = $4
		RETURNING id, plate, starts_at, status, result_id`

	rm, err := scanSlot(r.pool.QueryRow(ctx, query, id, plate, string(slot.StatusReserved), string(slot.StatusFree)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot no longer free", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to reserve slot", err)
	}
	return rm, nil
}

func (r *SlotRepository) MarkFinalized(ctx context.Context, tx db.Querier, id, resultID uuid.UUID) error {
	const query = `
		UPDATE slots
		SET status = $2, result_id = $3
		WHERE id = $1 AND status = $4`

	tag, err := tx.Exec(ctx, query, id, string(slot.StatusFinalized), resultID, string(slot.StatusReserved))
	if err != nil {
		return infra.WrapRepoErr("failed to finalize slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not in reserved state", nil, infra.KindConflict)
	}
	return nil
}

func scanSlot(row pgx.Row) (*readmodel.SlotRM, error) {
	var rm readmodel.SlotRM
	if err := row.Scan(&rm.ID, &rm.Plate, &rm.StartsAt, &rm.Status, &rm.ResultID); err != nil {
		return nil, err
	}
	return &rm, nil
}

func collectSlots(rows pgx.Rows) ([]readmodel.SlotRM, error) {
	var slots []readmodel.SlotRM
	for rows.Next() {
		rm, err := scanSlot(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		slots = append(slots, *rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}
	return slots, nil
}
