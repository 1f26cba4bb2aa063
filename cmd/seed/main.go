package main

import (
	"context"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/adapters/fakedata"
	"github.com/ogurasousui/employee-analytics/internal/adapters/report/excel"
	"github.com/ogurasousui/employee-analytics/internal/adapters/repository/memory"
	"github.com/ogurasousui/employee-analytics/internal/adapters/repository/postgres"
	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/seed"
	"github.com/ogurasousui/employee-analytics/internal/platform/config"
	pg "github.com/ogurasousui/employee-analytics/internal/platform/db/postgres"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		count      = flag.Int("count", -1, "number of employees to generate (defaults to seed.employee_count)")
		randomSeed = flag.Uint64("seed", 0, "random seed (defaults to seed.random_seed, 0 means time based)")
		days       = flag.Int("days", 0, "days of attendance history (defaults to seed.attendance_days)")
		dryRun     = flag.Bool("dry-run", false, "generate into an in-memory store instead of PostgreSQL")
		reportPath = flag.String("report", "", "write an xlsx report to this path (defaults to seed.report_path)")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	applyFlags(&cfg.Seed, *count, *randomSeed, *days, *reportPath)

	var (
		repos seed.Repositories
		tx    seed.TransactionManager
	)
	if *dryRun {
		store := memory.NewStore()
		repos = seed.Repositories{
			Departments: store.Departments(),
			Positions:   store.Positions(),
			Users:       store.Users(),
			Employees:   store.Employees(),
			Attendance:  store.Attendance(),
			Performance: store.Performance(),
		}
		defer func() {
			log.Printf("dry run store: %+v", store.Stats())
		}()
	} else {
		dbPool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("failed to initialize database pool: %v", err)
		}
		defer dbPool.Close()

		repos = postgres.NewRepositories(dbPool)
		tx = pg.NewTransactionManager(dbPool)
	}

	effectiveRandomSeed := effectiveSeed(cfg.Seed.RandomSeed)
	generator := seed.NewGenerator(
		repos,
		rand.New(rand.NewPCG(effectiveRandomSeed, effectiveRandomSeed>>1)),
		fakedata.NewProvider(effectiveRandomSeed),
		nil,
		tx,
		seed.WithLogger(log.Default()),
		seed.WithAttendanceDays(cfg.Seed.AttendanceDays),
	)

	started := time.Now()
	summary, err := generator.Generate(ctx, seed.GenerateInput{EmployeeCount: cfg.Seed.EmployeeCount})
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	logSummary(summary, time.Since(started))

	if cfg.Seed.ReportPath == "" {
		return
	}

	report, err := collectReport(ctx,
		department.NewService(repos.Departments, nil, tx),
		employee.NewService(repos.Employees, tx),
		*summary,
	)
	if err != nil {
		log.Fatalf("failed to collect report: %v", err)
	}
	if err := excel.WriteToFile(report, cfg.Seed.ReportPath); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
	log.Printf("report written to %s (%d employees)", cfg.Seed.ReportPath, len(report.Employees))
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

// applyFlags は指定されたフラグだけで設定値を上書きします。
func applyFlags(cfg *config.SeedConfig, count int, randomSeed uint64, days int, reportPath string) {
	if count >= 0 {
		cfg.EmployeeCount = count
	}
	if randomSeed != 0 {
		cfg.RandomSeed = randomSeed
	}
	if days > 0 {
		cfg.AttendanceDays = days
	}
	if reportPath != "" {
		cfg.ReportPath = reportPath
	}
}

// effectiveSeed は 0 を現在時刻に置き換えた乱数シードを返します。
// 同じ値を -seed に渡すと同じデータ列を再生成できます。
func effectiveSeed(value uint64) uint64 {
	if value == 0 {
		value = uint64(time.Now().UnixNano())
	}
	log.Printf("random seed %d", value)
	return value
}

func logSummary(s *seed.Summary, elapsed time.Duration) {
	log.Printf("seed completed in %s", elapsed.Round(time.Millisecond))
	log.Printf("  departments:         %d", s.DepartmentsCreated)
	log.Printf("  positions:           %d", s.PositionsCreated)
	log.Printf("  employees:           %d", s.EmployeesCreated)
	log.Printf("  attendances:         %d", s.AttendancesCreated)
	log.Printf("  time_logs:           %d", s.TimeLogsCreated)
	log.Printf("  performances:        %d", s.PerformancesCreated)
	log.Printf("  performance_reviews: %d", s.ReviewsCreated)
	log.Printf("  goals:               %d", s.GoalsCreated)
}
