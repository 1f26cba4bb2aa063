package attendance

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は出退勤打刻のユースケースです。「今日」は clock の UTC 日付で決まります。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は勤怠ユースケースの公開インターフェースです。
type UseCase interface {
	CheckIn(ctx context.Context, in CheckInInput) (*Attendance, error)
	CheckOut(ctx context.Context, in CheckOutInput) (*Attendance, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// CheckInInput は出勤打刻の入力です。EmployeeID は社員の内部 ID です。
type CheckInInput struct {
	EmployeeID string
}

// CheckOutInput は退勤打刻の入力です。
type CheckOutInput struct {
	EmployeeID string
}

// CheckIn は今日の勤怠記録を取得または作成し、出勤時刻と check_in の打刻ログを記録します。
// 再度呼ばれた場合は出勤時刻を上書きします。退勤済みの日は ErrAlreadyCheckedOut です。
func (s *Service) CheckIn(ctx context.Context, in CheckInInput) (*Attendance, error) {
	employeeID, err := normalizeEmployeeID(in.EmployeeID)
	if err != nil {
		return nil, err
	}

	var result *Attendance
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now().UTC()
		record, _, err := s.repo.GetOrCreate(txCtx, &Attendance{
			EmployeeID:    employeeID,
			Date:          dateOf(now),
			Status:        StatusPresent,
			HoursWorked:   decimal.Zero,
			OvertimeHours: decimal.Zero,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
		if err != nil {
			return err
		}
		if record.CheckOut != nil {
			return ErrAlreadyCheckedOut
		}

		record.CheckIn = &now
		if record.Status.IsOffDuty() {
			record.Status = StatusPresent
		}
		record.UpdatedAt = now

		updated, err := s.repo.Update(txCtx, record)
		if err != nil {
			return err
		}
		if _, _, err := s.repo.GetOrCreateTimeLog(txCtx, &TimeLog{
			AttendanceID: updated.ID,
			LogType:      LogTypeCheckIn,
			Timestamp:    now,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		result = updated
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

// CheckOut は今日の勤怠記録に退勤時刻を記録し、勤務時間と残業時間を計算し直します。
// 今日の記録が無ければ ErrAttendanceNotFound です。出勤時刻が無い場合、時間数は変更しません。
func (s *Service) CheckOut(ctx context.Context, in CheckOutInput) (*Attendance, error) {
	employeeID, err := normalizeEmployeeID(in.EmployeeID)
	if err != nil {
		return nil, err
	}

	var result *Attendance
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now().UTC()
		record, err := s.repo.FindByEmployeeDate(txCtx, employeeID, dateOf(now))
		if err != nil {
			return err
		}

		record.CheckOut = &now
		if record.CheckIn != nil {
			if now.Before(*record.CheckIn) {
				return ErrInvalidTimeRange
			}
			record.HoursWorked = WorkedHours(*record.CheckIn, now)
			record.OvertimeHours = OvertimeHours(record.HoursWorked)
		}
		record.UpdatedAt = now

		updated, err := s.repo.Update(txCtx, record)
		if err != nil {
			return err
		}
		if _, _, err := s.repo.GetOrCreateTimeLog(txCtx, &TimeLog{
			AttendanceID: updated.ID,
			LogType:      LogTypeCheckOut,
			Timestamp:    now,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
		result = updated
		return nil
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func normalizeEmployeeID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidEmployeeID
	}
	return trimmed, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
