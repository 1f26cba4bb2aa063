package main

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/ogurasousui/employee-analytics/internal/adapters/fakedata"
	"github.com/ogurasousui/employee-analytics/internal/adapters/repository/memory"
	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/seed"
	"github.com/ogurasousui/employee-analytics/internal/platform/config"
)

func TestApplyFlags(t *testing.T) {
	t.Parallel()

	cfg := config.SeedConfig{EmployeeCount: 5, RandomSeed: 1, AttendanceDays: 30}

	applyFlags(&cfg, -1, 0, 0, "")
	if cfg != (config.SeedConfig{EmployeeCount: 5, RandomSeed: 1, AttendanceDays: 30}) {
		t.Fatalf("unset flags should keep config, got %+v", cfg)
	}

	applyFlags(&cfg, 0, 99, 10, "out.xlsx")
	if cfg.EmployeeCount != 0 || cfg.RandomSeed != 99 || cfg.AttendanceDays != 10 || cfg.ReportPath != "out.xlsx" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestCollectReport(t *testing.T) {
	t.Parallel()

	store := memory.NewStore()
	gen := seed.NewGenerator(seed.Repositories{
		Departments: store.Departments(),
		Positions:   store.Positions(),
		Users:       store.Users(),
		Employees:   store.Employees(),
		Attendance:  store.Attendance(),
		Performance: store.Performance(),
	}, rand.New(rand.NewPCG(3, 4)), fakedata.NewProvider(3), nil, nil, seed.WithAttendanceDays(5))

	ctx := context.Background()
	summary, err := gen.Generate(ctx, seed.GenerateInput{EmployeeCount: 3})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	report, err := collectReport(ctx,
		department.NewService(store.Departments(), nil, nil),
		employee.NewService(store.Employees(), nil),
		*summary,
	)
	if err != nil {
		t.Fatalf("collectReport returned error: %v", err)
	}

	if len(report.Employees) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(report.Employees))
	}
	if len(report.Departments) != summary.DepartmentsCreated {
		t.Fatalf("expected %d departments, got %d", summary.DepartmentsCreated, len(report.Departments))
	}
	for _, emp := range report.Employees {
		if emp.DepartmentID == nil || report.Departments[*emp.DepartmentID] == "" {
			t.Fatalf("employee %s has no resolvable department", emp.EmployeeID)
		}
	}
}

func TestEffectiveSeed(t *testing.T) {
	t.Parallel()

	if got := effectiveSeed(7); got != 7 {
		t.Fatalf("expected explicit seed to be kept, got %d", got)
	}
	if got := effectiveSeed(0); got == 0 {
		t.Fatalf("expected a time-based seed for 0")
	}
}
