package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	pgdb "github.com/ogurasousui/employee-analytics/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

const employeeColumns = `id, employee_id, user_id, first_name, last_name, gender, email, phone,
               department_id, position_id, manager_id, hire_date, salary, is_active, created_at, updated_at`

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// GetOrCreate は社員を挿入し、一意制約に掛かった場合は employee_id で既存行を探します。
// employee_id で見つからなければメールアドレスかアカウントが他の社員のものなので ErrIdentityConflict を返します。
func (r *EmployeeRepository) GetOrCreate(ctx context.Context, e *employee.Employee) (*employee.Employee, bool, error) {
	var gender any
	if e.Gender != nil {
		gender = string(*e.Gender)
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (employee_id, user_id, first_name, last_name, gender, email, phone,
                               department_id, position_id, manager_id, hire_date, salary, is_active, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        ON CONFLICT DO NOTHING
        RETURNING `+employeeColumns,
		e.EmployeeID,
		nullableString(e.UserID),
		e.FirstName,
		e.LastName,
		gender,
		e.Email,
		e.Phone,
		nullableString(e.DepartmentID),
		nullableString(e.PositionID),
		nullableString(e.ManagerID),
		dateOnly(e.HireDate),
		e.Salary,
		e.IsActive,
		e.CreatedAt,
		e.UpdatedAt,
	)

	created, err := scanEmployee(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, false, translateEmployeePgError(err)
	}

	row = exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE employee_id = $1
    `, e.EmployeeID)

	existing, err := scanEmployee(row)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, false, employee.ErrIdentityConflict
	}
	if err != nil {
		return nil, false, translateEmployeePgError(err)
	}
	return existing, false, nil
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE id = $1
    `, id)

	found, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// ListActiveByDepartment は部署に在籍する有効な社員を excludeID を除いて氏名順に取得します。
func (r *EmployeeRepository) ListActiveByDepartment(ctx context.Context, departmentID, excludeID string) ([]*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+employeeColumns+`
          FROM employees
         WHERE department_id = $1
           AND is_active
           AND id::text <> $2
         ORDER BY last_name, first_name, id
    `, departmentID, excludeID)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, translateEmployeePgError(err)
	}
	return employees, nil
}

// List は社員の一覧を氏名順に取得します。
func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error) {
	if filter.Limit <= 0 {
		return nil, "", employee.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", employee.ErrInvalidPageToken
	}

	limitWithBuffer := filter.Limit + 1

	args := make([]any, 0, 4)
	conditions := make([]string, 0, 2)

	if filter.DepartmentID != "" {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "department_id = "+placeholder)
		args = append(args, filter.DepartmentID)
	}

	if filter.IsActive != nil {
		placeholder := "$" + strconv.Itoa(len(args)+1)
		conditions = append(conditions, "is_active = "+placeholder)
		args = append(args, *filter.IsActive)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, limitWithBuffer)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, filter.Offset)

	query := `
        SELECT ` + employeeColumns + `
          FROM employees` + whereClause + `
         ORDER BY last_name, first_name, id
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, "", translateEmployeePgError(err)
	}
	defer rows.Close()

	employees := make([]*employee.Employee, 0, filter.Limit)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, "", translateEmployeePgError(err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, "", translateEmployeePgError(err)
	}

	employees, nextToken := trimPage(employees, filter.Limit, filter.Offset)
	return employees, nextToken, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		id, code             string
		userID               sql.NullString
		firstName, lastName  string
		gender               sql.NullString
		email, phone         string
		departmentID         sql.NullString
		positionID           sql.NullString
		managerID            sql.NullString
		hireDate             time.Time
		salary               decimal.Decimal
		isActive             bool
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(
		&id,
		&code,
		&userID,
		&firstName,
		&lastName,
		&gender,
		&email,
		&phone,
		&departmentID,
		&positionID,
		&managerID,
		&hireDate,
		&salary,
		&isActive,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	var genderPtr *employee.Gender
	if gender.Valid {
		g := employee.Gender(gender.String)
		genderPtr = &g
	}

	return &employee.Employee{
		ID:           id,
		EmployeeID:   code,
		UserID:       stringPtr(userID),
		FirstName:    firstName,
		LastName:     lastName,
		Gender:       genderPtr,
		Email:        email,
		Phone:        phone,
		DepartmentID: stringPtr(departmentID),
		PositionID:   stringPtr(positionID),
		ManagerID:    stringPtr(managerID),
		HireDate:     dateOnly(hireDate),
		Salary:       salary,
		IsActive:     isActive,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func translateEmployeePgError(err error) error {
	code, constraint := pgErrorCode(err)
	switch code {
	case uniqueViolationCode:
		return employee.ErrIdentityConflict
	case foreignKeyViolationCode:
		switch constraint {
		case "employees_department_id_fkey":
			return employee.ErrDepartmentNotFound
		case "employees_position_id_fkey":
			return employee.ErrPositionNotFound
		case "employees_user_id_fkey":
			return employee.ErrUserNotFound
		case "employees_manager_id_fkey":
			return employee.ErrEmployeeNotFound
		}
	}
	return err
}
