package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/employee-analytics/internal/core/position"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

var positionRowColumns = []string{"id", "title", "department_id", "description", "min_salary", "max_salary", "created_at", "updated_at"}

func TestPositionRepository_ListByDepartment(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewPositionRepository(mock)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(positionRowColumns).
		AddRow("pos-1", "Accountant", "dept-1", "Accountant position in Finance", decimal.NewFromInt(40000), decimal.NewFromInt(70000), now, now).
		AddRow("pos-2", "Finance Manager", "dept-1", nil, decimal.NewFromInt(60000), decimal.NewFromInt(100000), now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY title, id`)).
		WithArgs("dept-1").
		WillReturnRows(rows)

	positions, err := repo.ListByDepartment(context.Background(), "dept-1")
	if err != nil {
		t.Fatalf("ListByDepartment returned error: %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(positions))
	}
	if !positions[1].MaxSalary.Equal(decimal.NewFromInt(100000)) || positions[1].Description != nil {
		t.Fatalf("unexpected position: %+v", positions[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPositionRepository_GetOrCreate_DepartmentMissing(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewPositionRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO positions`)).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "positions_department_id_fkey"})

	_, _, err = repo.GetOrCreate(context.Background(), &position.Position{Title: "Cashier", DepartmentID: "missing"})
	if !errors.Is(err, position.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
