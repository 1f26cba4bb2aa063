package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/employee-analytics/internal/core/position"
	pgdb "github.com/ogurasousui/employee-analytics/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

const positionColumns = `id, title, department_id, description, min_salary, max_salary, created_at, updated_at`

// PositionRepository は PostgreSQL を利用した職位永続化の実装です。
type PositionRepository struct {
	pool pgdb.Queryer
}

// NewPositionRepository は PositionRepository を生成します。
func NewPositionRepository(pool pgdb.Queryer) *PositionRepository {
	return &PositionRepository{pool: pool}
}

// GetOrCreate は (title, department) が未登録であれば挿入し、登録済みであれば既存行を返します。
func (r *PositionRepository) GetOrCreate(ctx context.Context, p *position.Position) (*position.Position, bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO positions (title, department_id, description, min_salary, max_salary, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (title, department_id) DO NOTHING
        RETURNING `+positionColumns,
		p.Title, p.DepartmentID, nullableString(p.Description), p.MinSalary, p.MaxSalary, p.CreatedAt, p.UpdatedAt)

	created, err := scanPosition(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, position.ErrPositionNotFound) {
		return nil, false, translatePositionPgError(err)
	}

	row = exec.QueryRow(ctx, `
        SELECT `+positionColumns+`
          FROM positions
         WHERE title = $1 AND department_id = $2
    `, p.Title, p.DepartmentID)

	existing, err := scanPosition(row)
	if err != nil {
		return nil, false, translatePositionPgError(err)
	}
	return existing, false, nil
}

// ListByDepartment は部署に属する職位をタイトル順に取得します。
func (r *PositionRepository) ListByDepartment(ctx context.Context, departmentID string) ([]*position.Position, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+positionColumns+`
          FROM positions
         WHERE department_id = $1
         ORDER BY title, id
    `, departmentID)
	if err != nil {
		return nil, translatePositionPgError(err)
	}
	defer rows.Close()

	var positions []*position.Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, translatePositionPgError(err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePositionPgError(err)
	}
	return positions, nil
}

func scanPosition(row pgx.Row) (*position.Position, error) {
	var (
		id, title, departmentID string
		description             sql.NullString
		minSalary, maxSalary    decimal.Decimal
		createdAt, updatedAt    time.Time
	)

	if err := row.Scan(&id, &title, &departmentID, &description, &minSalary, &maxSalary, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, position.ErrPositionNotFound
		}
		return nil, err
	}

	return &position.Position{
		ID:           id,
		Title:        title,
		DepartmentID: departmentID,
		Description:  stringPtr(description),
		MinSalary:    minSalary,
		MaxSalary:    maxSalary,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func translatePositionPgError(err error) error {
	switch code, _ := pgErrorCode(err); code {
	case foreignKeyViolationCode:
		return position.ErrDepartmentNotFound
	case checkViolationCode:
		return position.ErrInvalidSalaryRange
	}
	return err
}
