package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/employee-analytics/internal/core/attendance"
	pgdb "github.com/ogurasousui/employee-analytics/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

const (
	attendanceColumns = `id, employee_id, date, check_in, check_out, status, hours_worked, overtime_hours, notes, created_at, updated_at`
	timeLogColumns    = `id, attendance_id, log_type, timestamp, notes, created_at`
)

// AttendanceRepository は PostgreSQL を利用した勤怠永続化の実装です。
type AttendanceRepository struct {
	pool pgdb.Queryer
}

// NewAttendanceRepository は AttendanceRepository を生成します。
func NewAttendanceRepository(pool pgdb.Queryer) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// GetOrCreate は (employee, date) が未登録であれば挿入し、登録済みであれば既存行を返します。
func (r *AttendanceRepository) GetOrCreate(ctx context.Context, a *attendance.Attendance) (*attendance.Attendance, bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO attendances (employee_id, date, check_in, check_out, status, hours_worked, overtime_hours, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (employee_id, date) DO NOTHING
        RETURNING `+attendanceColumns,
		a.EmployeeID,
		dateOnly(a.Date),
		nullableTime(a.CheckIn),
		nullableTime(a.CheckOut),
		string(a.Status),
		a.HoursWorked,
		a.OvertimeHours,
		nullableString(a.Notes),
		a.CreatedAt,
		a.UpdatedAt,
	)

	created, err := scanAttendance(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, false, translateAttendancePgError(err)
	}

	row = exec.QueryRow(ctx, `
        SELECT `+attendanceColumns+`
          FROM attendances
         WHERE employee_id = $1 AND date = $2
    `, a.EmployeeID, dateOnly(a.Date))

	existing, err := scanAttendance(row)
	if err != nil {
		return nil, false, translateAttendancePgError(err)
	}
	return existing, false, nil
}

// FindByEmployeeDate は (employee, date) の勤怠記録を返します。
func (r *AttendanceRepository) FindByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+attendanceColumns+`
          FROM attendances
         WHERE employee_id = $1 AND date = $2
    `, employeeID, dateOnly(date))

	found, err := scanAttendance(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return found, nil
}

// Update は打刻時刻・ステータス・勤務時間を更新し、更新後の行を返します。
func (r *AttendanceRepository) Update(ctx context.Context, a *attendance.Attendance) (*attendance.Attendance, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE attendances
           SET check_in = $2, check_out = $3, status = $4, hours_worked = $5, overtime_hours = $6, notes = $7, updated_at = $8
         WHERE id = $1
        RETURNING `+attendanceColumns,
		a.ID,
		nullableTime(a.CheckIn),
		nullableTime(a.CheckOut),
		string(a.Status),
		a.HoursWorked,
		a.OvertimeHours,
		nullableString(a.Notes),
		a.UpdatedAt,
	)

	updated, err := scanAttendance(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return updated, nil
}

// GetOrCreateTimeLog は (attendance, log_type, timestamp) が未登録であれば打刻ログを挿入します。
func (r *AttendanceRepository) GetOrCreateTimeLog(ctx context.Context, l *attendance.TimeLog) (*attendance.TimeLog, bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO time_logs (attendance_id, log_type, timestamp, notes, created_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (attendance_id, log_type, timestamp) DO NOTHING
        RETURNING `+timeLogColumns,
		l.AttendanceID, string(l.LogType), l.Timestamp.UTC(), nullableString(l.Notes), l.CreatedAt)

	created, err := scanTimeLog(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, translateAttendancePgError(err)
	}

	row = exec.QueryRow(ctx, `
        SELECT `+timeLogColumns+`
          FROM time_logs
         WHERE attendance_id = $1 AND log_type = $2 AND timestamp = $3
    `, l.AttendanceID, string(l.LogType), l.Timestamp.UTC())

	existing, err := scanTimeLog(row)
	if err != nil {
		return nil, false, translateAttendancePgError(err)
	}
	return existing, false, nil
}

func scanAttendance(row pgx.Row) (*attendance.Attendance, error) {
	var (
		id, employeeID       string
		date                 time.Time
		checkIn, checkOut    sql.NullTime
		status               string
		hours, overtime      decimal.Decimal
		notes                sql.NullString
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &employeeID, &date, &checkIn, &checkOut, &status, &hours, &overtime, &notes, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, err
	}

	return &attendance.Attendance{
		ID:            id,
		EmployeeID:    employeeID,
		Date:          dateOnly(date),
		CheckIn:       timePtr(checkIn),
		CheckOut:      timePtr(checkOut),
		Status:        attendance.Status(status),
		HoursWorked:   hours,
		OvertimeHours: overtime,
		Notes:         stringPtr(notes),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}

// scanTimeLog は行が無い場合に pgx.ErrNoRows をそのまま返します。
func scanTimeLog(row pgx.Row) (*attendance.TimeLog, error) {
	var (
		id, attendanceID, logType string
		timestamp, createdAt      time.Time
		notes                     sql.NullString
	)

	if err := row.Scan(&id, &attendanceID, &logType, &timestamp, &notes, &createdAt); err != nil {
		return nil, err
	}

	return &attendance.TimeLog{
		ID:           id,
		AttendanceID: attendanceID,
		LogType:      attendance.LogType(logType),
		Timestamp:    timestamp.UTC(),
		Notes:        stringPtr(notes),
		CreatedAt:    createdAt,
	}, nil
}

func translateAttendancePgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.ErrAttendanceNotFound
	}

	code, constraint := pgErrorCode(err)
	switch code {
	case foreignKeyViolationCode:
		if constraint == "time_logs_attendance_id_fkey" {
			return attendance.ErrAttendanceNotFound
		}
		return attendance.ErrEmployeeNotFound
	case checkViolationCode:
		if constraint == "attendances_time_range_check" {
			return attendance.ErrInvalidTimeRange
		}
		return attendance.ErrInvalidStatus
	}
	return err
}
