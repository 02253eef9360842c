package repository

import (
	"context"
	"errors"

	"vtv-turnos/internal/domain/user"
	"vtv-turnos/internal/infra"
	"vtv-turnos/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*readmodel.UserRM, string, error) {
	const query = `
		SELECT id, username, role, password_hash
		FROM users
		WHERE username = $1`

	var rm readmodel.UserRM
	var passwordHash string
	err := r.pool.QueryRow(ctx, query, username).Scan(&rm.ID, &rm.Username, &rm.Role, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}

	return &rm, passwordHash, nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, username, password_hash, role)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, u.ID(), u.Username().Value(), u.PasswordHash(), u.Role().String())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("username already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]readmodel.UserRM, error) {
	const query = `
		SELECT id, username, role
		FROM users
		ORDER BY username`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var users []readmodel.UserRM
	for rows.Next() {
		var rm readmodel.UserRM
		if err := rows.Scan(&rm.ID, &rm.Username, &rm.Role); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		users = append(users, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}

	return users, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
