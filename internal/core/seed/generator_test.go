package seed

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/adapters/repository/memory"
	"github.com/ogurasousui/employee-analytics/internal/core/attendance"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/performance"
	"github.com/ogurasousui/employee-analytics/internal/core/position"
	"github.com/shopspring/decimal"
)

func TestGenerator_Generate_ConsistentRecords(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	gen := newTestGenerator(store, seededRand(42))

	summary, err := gen.Generate(context.Background(), GenerateInput{EmployeeCount: 8})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	stats := store.Stats()
	if summary.DepartmentsCreated != 5 || summary.PositionsCreated != 25 {
		t.Fatalf("unexpected organization counts: %+v", summary)
	}
	if summary.EmployeesCreated != 8 || stats.Employees != 8 || stats.Users != 8 {
		t.Fatalf("unexpected employee counts: summary=%+v stats=%+v", summary, stats)
	}
	if summary.AttendancesCreated != stats.Attendances || summary.TimeLogsCreated != stats.TimeLogs {
		t.Fatalf("attendance summary %+v does not match stats %+v", summary, stats)
	}
	if summary.PerformancesCreated != stats.Performances || summary.ReviewsCreated != stats.Reviews || summary.GoalsCreated != stats.Goals {
		t.Fatalf("performance summary %+v does not match stats %+v", summary, stats)
	}
	if stats.Reviews != stats.Performances*len(performance.Categories) {
		t.Fatalf("expected %d reviews, got %d", stats.Performances*len(performance.Categories), stats.Reviews)
	}

	today := dateOf(fixedNow)
	byID := make(map[string]*employee.Employee)
	for _, emp := range store.AllEmployees() {
		byID[emp.ID] = emp

		tenure := daysBetween(emp.HireDate, today)
		if tenure < minTenureDays || tenure > maxTenureDays {
			t.Fatalf("hire date %s outside tenure window", emp.HireDate)
		}
		if emp.DepartmentID == nil || emp.PositionID == nil || emp.UserID == nil {
			t.Fatalf("expected department, position and account for %s", emp.EmployeeID)
		}
		if !strings.HasPrefix(emp.EmployeeID, "EMP") || len([]rune(emp.Phone)) > maxPhoneLength {
			t.Fatalf("unexpected identity fields: %+v", emp)
		}

		positions, err := store.Positions().ListByDepartment(context.Background(), *emp.DepartmentID)
		if err != nil {
			t.Fatalf("ListByDepartment returned error: %v", err)
		}
		var pos *position.Position
		for _, p := range positions {
			if p.ID == *emp.PositionID {
				pos = p
			}
		}
		if pos == nil {
			t.Fatalf("position %s not in department %s", *emp.PositionID, *emp.DepartmentID)
		}
		if emp.Salary.LessThan(pos.MinSalary) || emp.Salary.GreaterThan(pos.MaxSalary) {
			t.Fatalf("salary %s outside %s-%s for %s", emp.Salary, pos.MinSalary, pos.MaxSalary, pos.Title)
		}
	}

	worked := 0
	for _, a := range store.AllAttendances() {
		if !attendance.IsWorkday(a.Date) {
			t.Fatalf("attendance on weekend %s", a.Date)
		}
		if !a.Date.Before(today) || a.Date.Before(addDays(today, -defaultAttendanceDays)) {
			t.Fatalf("attendance date %s outside window", a.Date)
		}
		if a.Status.IsOffDuty() {
			if a.CheckIn != nil || a.CheckOut != nil || !a.HoursWorked.IsZero() || !a.OvertimeHours.IsZero() {
				t.Fatalf("off duty attendance carries work data: %+v", a)
			}
			continue
		}
		worked++
		if a.CheckIn == nil || a.CheckOut == nil || a.CheckOut.Before(*a.CheckIn) {
			t.Fatalf("invalid clock times: %+v", a)
		}
		if !a.HoursWorked.Equal(attendance.WorkedHours(*a.CheckIn, *a.CheckOut)) {
			t.Fatalf("hours worked %s does not match clock times", a.HoursWorked)
		}
		if !a.OvertimeHours.Equal(attendance.OvertimeHours(a.HoursWorked)) {
			t.Fatalf("overtime %s does not match hours %s", a.OvertimeHours, a.HoursWorked)
		}
	}
	if stats.TimeLogs != worked*2 {
		t.Fatalf("expected %d time logs, got %d", worked*2, stats.TimeLogs)
	}

	for _, p := range store.AllPerformances() {
		emp := byID[p.EmployeeID]
		if p.ReviewDate.After(today) || p.ReviewDate.Before(emp.HireDate) {
			t.Fatalf("review date %s outside employment", p.ReviewDate)
		}
		if p.ReviewerID != nil {
			reviewer := byID[*p.ReviewerID]
			if reviewer == nil || reviewer.ID == emp.ID || *reviewer.DepartmentID != *emp.DepartmentID {
				t.Fatalf("invalid reviewer for %s", emp.EmployeeID)
			}
		}
		if p.Status != performance.StatusForScore(p.PerformanceScore) {
			t.Fatalf("status %s does not match score %s", p.Status, p.PerformanceScore)
		}
		if p.PerformanceScore.LessThan(decimal.NewFromInt(3)) || p.PerformanceScore.GreaterThan(decimal.NewFromInt(5)) {
			t.Fatalf("score %s outside draw range", p.PerformanceScore)
		}
	}

	for _, g := range store.AllGoals() {
		if err := g.Validate(); err != nil {
			t.Fatalf("invalid goal %+v: %v", g, err)
		}
		if g.Status == performance.GoalStatusInProgress && !g.TargetDate.After(today) {
			t.Fatalf("in progress goal past its target: %+v", g)
		}
	}
}

func TestGenerator_Generate_RerunCreatesNothing(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	if _, err := newTestGenerator(store, seededRand(7)).Generate(context.Background(), GenerateInput{EmployeeCount: 4}); err != nil {
		t.Fatalf("first run returned error: %v", err)
	}
	before := store.Stats()

	summary, err := newTestGenerator(store, seededRand(7)).Generate(context.Background(), GenerateInput{EmployeeCount: 4})
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}
	if *summary != (Summary{}) {
		t.Fatalf("expected nothing created on rerun, got %+v", summary)
	}
	if store.Stats() != before {
		t.Fatalf("store changed on rerun: before=%+v after=%+v", before, store.Stats())
	}
}

func TestGenerator_Generate_ZeroEmployees(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	summary, err := newTestGenerator(store, seededRand(1)).Generate(context.Background(), GenerateInput{})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if summary.DepartmentsCreated != 5 || summary.EmployeesCreated != 0 || summary.AttendancesCreated != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestGenerator_Generate_InvalidInput(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()

	for _, count := range []int{-1, MaxEmployeeCount + 1, math.MaxInt32} {
		if _, err := newTestGenerator(store, seededRand(1)).Generate(context.Background(), GenerateInput{EmployeeCount: count}); !errors.Is(err, ErrInvalidEmployeeCount) {
			t.Fatalf("count %d: expected ErrInvalidEmployeeCount, got %v", count, err)
		}
	}
	if _, err := newTestGenerator(store, seededRand(1), WithCatalog(Catalog{})).Generate(context.Background(), GenerateInput{EmployeeCount: 1}); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
	if stats := store.Stats(); stats.Departments != 0 {
		t.Fatalf("expected no writes, got %+v", stats)
	}
}

func TestGenerator_Generate_UnbandedTitleUsesOtherRange(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	catalog := Catalog{{Name: "Technology", Description: "R&D", Positions: []string{"CTO"}}}
	gen := newTestGenerator(store, seededRand(3), WithCatalog(catalog), WithAttendanceDays(1))

	if _, err := gen.Generate(context.Background(), GenerateInput{EmployeeCount: 5}); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	lo := decimal.NewFromInt(position.OtherBand.Min)
	hi := decimal.NewFromInt(position.OtherBand.Max)
	for _, emp := range store.AllEmployees() {
		if emp.Salary.LessThan(lo) || emp.Salary.GreaterThan(hi) {
			t.Fatalf("CTO salary %s outside %s-%s", emp.Salary, lo, hi)
		}
	}
}

func TestGenerator_Generate_WriteFailureAborts(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	boom := errors.New("disk full")
	repos := repositories(store)
	repos.Attendance = failingAttendance{err: boom}

	gen := NewGenerator(repos, seededRand(5), &sequenceFaker{}, stubClock{now: fixedNow}, nil)
	_, err := gen.Generate(context.Background(), GenerateInput{EmployeeCount: 2})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if store.Stats().Performances != 0 {
		t.Fatalf("expected performance phase to be skipped")
	}
}

type failingAttendance struct {
	attendance.Repository
	err error
}

func (f failingAttendance) GetOrCreate(context.Context, *attendance.Attendance) (*attendance.Attendance, bool, error) {
	return nil, false, f.err
}

func (f failingAttendance) GetOrCreateTimeLog(context.Context, *attendance.TimeLog) (*attendance.TimeLog, bool, error) {
	return nil, false, f.err
}

func TestGenerator_SynthesizeEmployee_RetriesConflicts(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	repos := repositories(store)
	conflicts := &conflictingEmployees{Repository: store.Employees(), remaining: 3}
	repos.Employees = conflicts
	repos.Users = &foreignUsers{Repository: store.Users()}

	gen := NewGenerator(repos, fixedRand{f: 0.5}, &sequenceFaker{}, stubClock{now: fixedNow}, nil, WithAttendanceDays(1))
	summary, err := gen.Generate(context.Background(), GenerateInput{EmployeeCount: 1})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if summary.EmployeesCreated != 1 {
		t.Fatalf("expected one employee, got %+v", summary)
	}
	if conflicts.calls != 4 {
		t.Fatalf("expected 4 employee attempts after a skipped account, got %d", conflicts.calls)
	}
}

func TestGenerator_SynthesizeEmployee_ExhaustsIdentities(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	repos := repositories(store)
	repos.Employees = &conflictingEmployees{Repository: store.Employees(), remaining: maxIdentityAttempts}

	gen := NewGenerator(repos, fixedRand{f: 0.5}, &sequenceFaker{}, stubClock{now: fixedNow}, nil)
	_, err := gen.Generate(context.Background(), GenerateInput{EmployeeCount: 1})
	if !errors.Is(err, ErrIdentityExhausted) {
		t.Fatalf("expected ErrIdentityExhausted, got %v", err)
	}
}

func TestGenerator_SynthesizeAttendance_SkipsWeekends(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	emp := seedLoneEmployee(t, store, addDays(dateOf(fixedNow), -400))
	gen := newTestGenerator(store, seededRand(11), WithAttendanceDays(14))

	summary := &Summary{}
	if err := gen.synthesizeAttendance(context.Background(), emp, dateOf(fixedNow), fixedNow, summary); err != nil {
		t.Fatalf("synthesizeAttendance returned error: %v", err)
	}

	// 2025-06-04 から 2025-06-17 までの平日は 10 日。
	if summary.AttendancesCreated != 10 {
		t.Fatalf("expected 10 attendance days, got %d", summary.AttendancesCreated)
	}
}

func TestGenerator_SynthesizePerformance_SkipsFutureAnchor(t *testing.T) {
	t.Parallel()

	today := dateOf(fixedNow)
	hire := addDays(today, -200)

	for _, seed := range []uint64{1, 2, 3, 4} {
		store := memory.NewStore()
		emp := seedLoneEmployee(t, store, hire)
		gen := newTestGenerator(store, seededRand(seed))

		summary := &Summary{}
		if err := gen.synthesizePerformance(context.Background(), emp, today, fixedNow, summary); err != nil {
			t.Fatalf("synthesizePerformance returned error: %v", err)
		}
		if summary.PerformancesCreated != 1 || summary.ReviewsCreated != len(performance.Categories) {
			t.Fatalf("seed %d: unexpected summary %+v", seed, summary)
		}

		records := store.AllPerformances()
		if !records[0].ReviewDate.Equal(addDays(hire, 180)) {
			t.Fatalf("expected 180-day anchor, got %s", records[0].ReviewDate)
		}
		if records[0].ReviewerID != nil {
			t.Fatalf("expected no reviewer without a department")
		}
	}
}

func seedLoneEmployee(t *testing.T, store *memory.Store, hire time.Time) *employee.Employee {
	t.Helper()

	emp, _, err := store.Employees().GetOrCreate(context.Background(), &employee.Employee{
		EmployeeID: "EMP10000",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		HireDate:   hire,
		Salary:     decimal.NewFromInt(50000),
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return emp
}

func TestBandFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		r    float64
		want attendance.Status
	}{
		{r: 0.0, want: attendance.StatusAbsent},
		{r: 0.0999, want: attendance.StatusAbsent},
		{r: 0.10, want: attendance.StatusLate},
		{r: 0.2, want: attendance.StatusEarlyLeave},
		{r: 0.27, want: attendance.StatusLeave},
		{r: 0.30, want: attendance.StatusPresent},
		{r: 0.9999, want: attendance.StatusPresent},
	}

	for _, tc := range cases {
		if got := bandFor(tc.r).status; got != tc.want {
			t.Fatalf("bandFor(%v) = %s, want %s", tc.r, got, tc.want)
		}
	}
}

func TestGenerator_DrawGoal(t *testing.T) {
	t.Parallel()

	today := dateOf(fixedNow)
	longAgo := addDays(today, -400)

	cases := []struct {
		name     string
		start    time.Time
		f        float64
		want     performance.GoalStatus
		progress string
	}{
		{name: "past target completes", start: longAgo, f: 0.5, want: performance.GoalStatusCompleted, progress: "100"},
		{name: "past target on hold", start: longAgo, f: 0.9, want: performance.GoalStatusOnHold, progress: "73"},
		{name: "future target in progress", start: today, f: 0.5, want: performance.GoalStatusInProgress, progress: "50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gen := newTestGenerator(memory.NewStore(), fixedRand{f: tc.f})
			goal := gen.drawGoal("emp-1", tc.start, today, fixedNow)

			if goal.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, goal.Status)
			}
			if !goal.Progress.Equal(decimal.RequireFromString(tc.progress)) {
				t.Fatalf("expected progress %s, got %s", tc.progress, goal.Progress)
			}
			if !goal.TargetDate.Equal(addDays(tc.start, minGoalDurationDays)) {
				t.Fatalf("unexpected target date %s", goal.TargetDate)
			}
			if err := goal.Validate(); err != nil {
				t.Fatalf("goal failed validation: %v", err)
			}
		})
	}
}

// replayingTx は fn を 2 回実行し、2 回目の結果だけを返します。
type replayingTx struct{}

func (replayingTx) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (replayingTx) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	_ = fn(ctx)
	return fn(ctx)
}

func TestGenerator_WithinTx_CountsOnlyFinalAttempt(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(repositories(memory.NewStore()), seededRand(1), &sequenceFaker{}, stubClock{now: fixedNow}, replayingTx{})

	summary := &Summary{}
	err := gen.withinTx(context.Background(), summary, func(_ context.Context, delta *Summary) error {
		delta.GoalsCreated++
		return nil
	})
	if err != nil {
		t.Fatalf("withinTx returned error: %v", err)
	}
	if summary.GoalsCreated != 1 {
		t.Fatalf("expected one counted goal, got %d", summary.GoalsCreated)
	}

	failed := &Summary{}
	wantErr := errors.New("boom")
	err = gen.withinTx(context.Background(), failed, func(_ context.Context, delta *Summary) error {
		delta.GoalsCreated++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if *failed != (Summary{}) {
		t.Fatalf("failed transaction should not be counted, got %+v", failed)
	}
}
