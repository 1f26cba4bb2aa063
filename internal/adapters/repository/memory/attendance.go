package memory

import (
	"context"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/core/attendance"
)

// AttendanceRepository は attendance.Repository のインメモリ実装です。
type AttendanceRepository struct {
	store *Store
}

var _ attendance.Repository = (*AttendanceRepository)(nil)

// GetOrCreate は (employee, date) をキーに勤怠記録を返し、存在しなければ作成します。
func (r *AttendanceRepository) GetOrCreate(_ context.Context, a *attendance.Attendance) (*attendance.Attendance, bool, error) {
	if !attendance.IsValidStatus(a.Status) {
		return nil, false, attendance.ErrInvalidStatus
	}
	if a.CheckIn != nil && a.CheckOut != nil && a.CheckOut.Before(*a.CheckIn) {
		return nil, false, attendance.ErrInvalidTimeRange
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findEmployee(a.EmployeeID) == nil {
		return nil, false, attendance.ErrEmployeeNotFound
	}
	for _, existing := range s.attendances {
		if existing.EmployeeID == a.EmployeeID && existing.Date.Equal(a.Date) {
			return clone(existing), false, nil
		}
	}

	stored := clone(a)
	stored.ID = newID()
	s.attendances = append(s.attendances, stored)
	return clone(stored), true, nil
}

// FindByEmployeeDate は (employee, date) の勤怠記録を返します。
func (r *AttendanceRepository) FindByEmployeeDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, existing := range s.attendances {
		if existing.EmployeeID == employeeID && existing.Date.Equal(date) {
			return clone(existing), nil
		}
	}
	return nil, attendance.ErrAttendanceNotFound
}

// Update は ID が一致する勤怠記録の打刻時刻・ステータス・勤務時間を書き換えます。
func (r *AttendanceRepository) Update(_ context.Context, a *attendance.Attendance) (*attendance.Attendance, error) {
	if !attendance.IsValidStatus(a.Status) {
		return nil, attendance.ErrInvalidStatus
	}
	if a.CheckIn != nil && a.CheckOut != nil && a.CheckOut.Before(*a.CheckIn) {
		return nil, attendance.ErrInvalidTimeRange
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.attendances {
		if existing.ID != a.ID {
			continue
		}
		updated := clone(existing)
		updated.CheckIn = a.CheckIn
		updated.CheckOut = a.CheckOut
		updated.Status = a.Status
		updated.HoursWorked = a.HoursWorked
		updated.OvertimeHours = a.OvertimeHours
		updated.Notes = a.Notes
		updated.UpdatedAt = a.UpdatedAt
		s.attendances[i] = updated
		return clone(updated), nil
	}
	return nil, attendance.ErrAttendanceNotFound
}

// GetOrCreateTimeLog は (attendance, log_type, timestamp) をキーに打刻ログを作成します。
func (r *AttendanceRepository) GetOrCreateTimeLog(_ context.Context, l *attendance.TimeLog) (*attendance.TimeLog, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, a := range s.attendances {
		if a.ID == l.AttendanceID {
			found = true
			break
		}
	}
	if !found {
		return nil, false, attendance.ErrAttendanceNotFound
	}

	for _, existing := range s.timeLogs {
		if existing.AttendanceID == l.AttendanceID && existing.LogType == l.LogType && existing.Timestamp.Equal(l.Timestamp) {
			return clone(existing), false, nil
		}
	}

	stored := clone(l)
	stored.ID = newID()
	s.timeLogs = append(s.timeLogs, stored)
	return clone(stored), true, nil
}
