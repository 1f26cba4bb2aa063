package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// StandardWorkHours は所定労働時間です。これを超えた分が残業になります。
const StandardWorkHours = 8

var (
	secondsPerHour = decimal.NewFromInt(int64(time.Hour / time.Second))
	standardHours  = decimal.NewFromInt(StandardWorkHours)
)

// WorkedHours は出退勤時刻の差を小数第 2 位に丸めた時間数で返します。
func WorkedHours(checkIn, checkOut time.Time) decimal.Decimal {
	seconds := int64(checkOut.Sub(checkIn) / time.Second)
	return decimal.NewFromInt(seconds).Div(secondsPerHour).Round(2)
}

// OvertimeHours は max(0, hours - 8) を小数第 2 位に丸めて返します。
func OvertimeHours(hoursWorked decimal.Decimal) decimal.Decimal {
	if !hoursWorked.GreaterThan(standardHours) {
		return decimal.Zero
	}
	return hoursWorked.Sub(standardHours).Round(2)
}

// IsWorkday は土日以外かを判定します。
func IsWorkday(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// NewAttendance は派生項目 (勤務時間・残業時間) を計算した勤怠記録を生成します。
// 欠勤・休暇では打刻時刻を破棄し、勤務時間を 0 にします。
func NewAttendance(employeeID string, date time.Time, status Status, checkIn, checkOut *time.Time) (*Attendance, error) {
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	a := &Attendance{
		EmployeeID:    employeeID,
		Date:          time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Status:        status,
		HoursWorked:   decimal.Zero,
		OvertimeHours: decimal.Zero,
	}

	if status.IsOffDuty() {
		return a, nil
	}

	if checkIn == nil || checkOut == nil {
		return nil, ErrMissingClockTimes
	}
	if checkOut.Before(*checkIn) {
		return nil, ErrInvalidTimeRange
	}

	in := *checkIn
	out := *checkOut
	a.CheckIn = &in
	a.CheckOut = &out
	a.HoursWorked = WorkedHours(in, out)
	a.OvertimeHours = OvertimeHours(a.HoursWorked)
	return a, nil
}

// TimeLogs は勤怠記録の出退勤時刻から打刻ログを組み立てます。時刻が無い側は生成しません。
func (a *Attendance) TimeLogs() []*TimeLog {
	logs := make([]*TimeLog, 0, 2)
	if a.CheckIn != nil {
		logs = append(logs, &TimeLog{AttendanceID: a.ID, LogType: LogTypeCheckIn, Timestamp: *a.CheckIn})
	}
	if a.CheckOut != nil {
		logs = append(logs, &TimeLog{AttendanceID: a.ID, LogType: LogTypeCheckOut, Timestamp: *a.CheckOut})
	}
	return logs
}
