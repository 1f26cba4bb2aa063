package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/employee-analytics/internal/core/department"
	pgdb "github.com/ogurasousui/employee-analytics/internal/platform/db/postgres"
)

const departmentColumns = `id, name, description, created_at, updated_at`

// DepartmentRepository は PostgreSQL を利用した部署永続化の実装です。
type DepartmentRepository struct {
	pool pgdb.Queryer
}

// NewDepartmentRepository は DepartmentRepository を生成します。
func NewDepartmentRepository(pool pgdb.Queryer) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

// GetOrCreate は部署名が未登録であれば挿入し、登録済みであれば既存行を返します。
func (r *DepartmentRepository) GetOrCreate(ctx context.Context, d *department.Department) (*department.Department, bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO departments (name, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (name) DO NOTHING
        RETURNING `+departmentColumns,
		d.Name, nullableString(d.Description), d.CreatedAt, d.UpdatedAt)

	created, err := scanDepartment(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, department.ErrDepartmentNotFound) {
		return nil, false, translateDepartmentPgError(err)
	}

	row = exec.QueryRow(ctx, `
        SELECT `+departmentColumns+`
          FROM departments
         WHERE name = $1
    `, d.Name)

	existing, err := scanDepartment(row)
	if err != nil {
		return nil, false, translateDepartmentPgError(err)
	}
	return existing, false, nil
}

// FindByID は ID で部署を取得します。
func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*department.Department, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+departmentColumns+`
          FROM departments
         WHERE id = $1
    `, id)

	found, err := scanDepartment(row)
	if err != nil {
		return nil, translateDepartmentPgError(err)
	}
	return found, nil
}

// List は部署名順に部署を取得します。
func (r *DepartmentRepository) List(ctx context.Context, filter department.ListDepartmentsFilter) ([]*department.Department, string, error) {
	if filter.Limit <= 0 {
		return nil, "", department.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", department.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+departmentColumns+`
          FROM departments
         ORDER BY name, id
         LIMIT $1
        OFFSET $2
    `, limitWithBuffer, filter.Offset)
	if err != nil {
		return nil, "", translateDepartmentPgError(err)
	}
	defer rows.Close()

	departments := make([]*department.Department, 0, filter.Limit)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, "", translateDepartmentPgError(err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, "", translateDepartmentPgError(err)
	}

	departments, nextToken := trimPage(departments, filter.Limit, filter.Offset)
	return departments, nextToken, nil
}

func scanDepartment(row pgx.Row) (*department.Department, error) {
	var (
		id, name             string
		description          sql.NullString
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &description, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, err
	}

	return &department.Department{
		ID:          id,
		Name:        name,
		Description: stringPtr(description),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func translateDepartmentPgError(err error) error {
	if code, _ := pgErrorCode(err); code == checkViolationCode {
		return department.ErrInvalidName
	}
	return err
}
