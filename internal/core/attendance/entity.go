package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status は勤怠ステータスです。
type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
	StatusAbsent     Status = "absent"
	StatusLeave      Status = "leave"
)

// LogType は打刻種別です。
type LogType string

const (
	LogTypeCheckIn    LogType = "check_in"
	LogTypeCheckOut   LogType = "check_out"
	LogTypeBreakStart LogType = "break_start"
	LogTypeBreakEnd   LogType = "break_end"
)

// Attendance は 1 社員 1 日分の勤怠記録です。
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckIn       *time.Time
	CheckOut      *time.Time
	Status        Status
	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TimeLog は勤怠記録に紐づく打刻ログです。
type TimeLog struct {
	ID           string
	AttendanceID string
	LogType      LogType
	Timestamp    time.Time
	Notes        *string
	CreatedAt    time.Time
}

// IsValidStatus はステータスが既知の値かを判定します。
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPresent, StatusLate, StatusEarlyLeave, StatusAbsent, StatusLeave:
		return true
	default:
		return false
	}
}

// IsOffDuty は出勤を伴わないステータスかを判定します。
func (s Status) IsOffDuty() bool {
	return s == StatusAbsent || s == StatusLeave
}
