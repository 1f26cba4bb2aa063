package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/core/attendance"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
)

// clockWindow は hour:minMinute から hour:maxMinute (両端含む) の打刻時間帯です。
type clockWindow struct {
	hour      int
	minMinute int
	maxMinute int
}

type attendanceBand struct {
	upper    float64
	status   attendance.Status
	checkIn  *clockWindow
	checkOut *clockWindow
}

// 一様乱数 r が upper 未満となる最初の帯を採用する。
var attendanceBands = []attendanceBand{
	{upper: 0.10, status: attendance.StatusAbsent},
	{upper: 0.20, status: attendance.StatusLate, checkIn: &clockWindow{9, 15, 60}, checkOut: &clockWindow{18, 0, 30}},
	{upper: 0.25, status: attendance.StatusEarlyLeave, checkIn: &clockWindow{8, 0, 30}, checkOut: &clockWindow{17, 0, 30}},
	{upper: 0.30, status: attendance.StatusLeave},
	{upper: 1.00, status: attendance.StatusPresent, checkIn: &clockWindow{8, 0, 30}, checkOut: &clockWindow{18, 0, 60}},
}

func bandFor(r float64) attendanceBand {
	for _, band := range attendanceBands {
		if r < band.upper {
			return band
		}
	}
	return attendanceBands[len(attendanceBands)-1]
}

func (g *Generator) drawClock(date time.Time, w *clockWindow) *time.Time {
	if w == nil {
		return nil
	}
	t := date.Add(time.Duration(w.hour)*time.Hour + time.Duration(g.intBetween(w.minMinute, w.maxMinute))*time.Minute)
	return &t
}

// synthesizeAttendance は直近 attendanceDays 日 (土日を除く) の勤怠と打刻ログを作成します。
func (g *Generator) synthesizeAttendance(ctx context.Context, emp *employee.Employee, today, now time.Time, summary *Summary) error {
	return g.withinTx(ctx, summary, func(txCtx context.Context, delta *Summary) error {
		for daysAgo := 1; daysAgo <= g.attendanceDays; daysAgo++ {
			date := addDays(today, -daysAgo)
			if !attendance.IsWorkday(date) {
				continue
			}

			band := bandFor(g.rnd.Float64())
			checkIn := g.drawClock(date, band.checkIn)
			checkOut := g.drawClock(date, band.checkOut)

			record, err := attendance.NewAttendance(emp.ID, date, band.status, checkIn, checkOut)
			if err != nil {
				return fmt.Errorf("%s: %w", date.Format(time.DateOnly), err)
			}
			record.CreatedAt = now
			record.UpdatedAt = now

			stored, created, err := g.repos.Attendance.GetOrCreate(txCtx, record)
			if err != nil {
				return fmt.Errorf("%s: %w", date.Format(time.DateOnly), err)
			}
			if created {
				delta.AttendancesCreated++
			}

			for _, entry := range stored.TimeLogs() {
				entry.CreatedAt = now
				_, created, err := g.repos.Attendance.GetOrCreateTimeLog(txCtx, entry)
				if err != nil {
					return fmt.Errorf("%s %s: %w", date.Format(time.DateOnly), entry.LogType, err)
				}
				if created {
					delta.TimeLogsCreated++
				}
			}
		}
		return nil
	})
}
