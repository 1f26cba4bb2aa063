package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/employee-analytics/internal/core/user"
	pgdb "github.com/ogurasousui/employee-analytics/internal/platform/db/postgres"
)

const userColumns = `id, username, email, first_name, last_name, status, created_at, updated_at`

// UserRepository は PostgreSQL を利用したアカウント永続化の実装です。
type UserRepository struct {
	pool pgdb.Queryer
}

// NewUserRepository は UserRepository を生成します。
func NewUserRepository(pool pgdb.Queryer) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetOrCreate は username が未登録であれば挿入し、登録済みであれば既存行を返します。
func (r *UserRepository) GetOrCreate(ctx context.Context, u *user.User) (*user.User, bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO users (username, email, first_name, last_name, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (username) DO NOTHING
        RETURNING `+userColumns,
		u.Username, u.Email, u.FirstName, u.LastName, string(u.Status), u.CreatedAt, u.UpdatedAt)

	created, err := scanUser(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, false, err
	}

	row = exec.QueryRow(ctx, `
        SELECT `+userColumns+`
          FROM users
         WHERE username = $1
    `, u.Username)

	existing, err := scanUser(row)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// FindByID は ID でアカウントを取得します。
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+userColumns+`
          FROM users
         WHERE id = $1
    `, id)

	found, err := scanUser(row)
	if err != nil {
		return nil, err
	}
	return found, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id, username, email  string
		firstName, lastName  string
		status               string
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &username, &email, &firstName, &lastName, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	return &user.User{
		ID:        id,
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Status:    user.Status(status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
