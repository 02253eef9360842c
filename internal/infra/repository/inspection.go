package repository

import (
	"context"
	"errors"

	"vtv-turnos/internal/domain/inspection"
	"vtv-turnos/internal/infra"
	"vtv-turnos/internal/infra/db"
	"vtv-turnos/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResultRepository struct {
	pool *pgxpool.Pool
}

func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// Create writes the header and all criterion rows on the caller's transaction;
// the caller also transitions the slot on the same transaction, keeping the
// whole finalization atomic.
func (r *ResultRepository) Create(ctx context.Context, tx db.Querier, res *inspection.Result) error {
	const headerQuery = `
		INSERT INTO inspection_results (id, verdict, total_score, notes)
		VALUES ($1, $2, $3, $4)`

	const itemQuery = `
		INSERT INTO inspection_result_items (result_id, position, criterion_id, rating, notes)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.Exec(ctx, headerQuery, res.ID, string(res.Verdict), res.Total, res.Notes); err != nil {
		return infra.WrapRepoErr("failed to insert inspection result", err)
	}

	for i, item := range res.Items {
		if _, err := tx.Exec(ctx, itemQuery, res.ID, i, item.CriterionID, item.Rating, item.Notes); err != nil {
			return infra.WrapRepoErr("failed to insert criterion result", err)
		}
	}
	return nil
}

func (r *ResultRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.InspectionResultRM, error) {
	const headerQuery = `
		SELECT id, verdict, total_score, notes
		FROM inspection_results
		WHERE id = $1`

	var rm readmodel.InspectionResultRM
	err := r.pool.QueryRow(ctx, headerQuery, id).Scan(&rm.ID, &rm.Verdict, &rm.Total, &rm.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("inspection result not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inspection result", err)
	}

	const itemsQuery = `
		SELECT criterion_id, rating, notes
		FROM inspection_result_items
		WHERE result_id = $1
		ORDER BY position`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query criterion results", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item readmodel.CriterionResultRM
		if err := rows.Scan(&item.CriterionID, &item.Rating, &item.Notes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan criterion row", err)
		}
		rm.Items = append(rm.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate criterion rows", err)
	}

	return &rm, nil
}
