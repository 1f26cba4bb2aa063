package attendance

import (
	"context"
	"time"
)

// Repository は勤怠記録と打刻ログの永続化を抽象化します。
type Repository interface {
	// GetOrCreate は (employee, date) をキーに既存行を返し、存在しなければ作成します。
	GetOrCreate(ctx context.Context, attendance *Attendance) (*Attendance, bool, error)
	// FindByEmployeeDate は (employee, date) の勤怠記録を返します。無ければ ErrAttendanceNotFound です。
	FindByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	// Update は打刻時刻・ステータス・勤務時間を ID 指定で更新します。
	Update(ctx context.Context, attendance *Attendance) (*Attendance, error)
	// GetOrCreateTimeLog は (attendance, log_type, timestamp) をキーに打刻ログを作成します。
	GetOrCreateTimeLog(ctx context.Context, log *TimeLog) (*TimeLog, bool, error)
}
