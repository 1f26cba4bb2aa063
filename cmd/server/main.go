package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/adapters/fakedata"
	"github.com/ogurasousui/employee-analytics/internal/adapters/repository/postgres"
	"github.com/ogurasousui/employee-analytics/internal/core/attendance"
	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/seed"
	"github.com/ogurasousui/employee-analytics/internal/platform/config"
	pg "github.com/ogurasousui/employee-analytics/internal/platform/db/postgres"
	"github.com/ogurasousui/employee-analytics/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)
	repos := postgres.NewRepositories(dbPool)

	randomSeed := cfg.Seed.RandomSeed
	if randomSeed == 0 {
		randomSeed = uint64(time.Now().UnixNano())
	}
	log.Printf("random seed %d", randomSeed)

	generator := seed.NewGenerator(
		repos,
		rand.New(rand.NewPCG(randomSeed, randomSeed>>1)),
		fakedata.NewProvider(randomSeed),
		nil,
		txManager,
		seed.WithLogger(log.Default()),
		seed.WithAttendanceDays(cfg.Seed.AttendanceDays),
	)

	grpcServer := server.New(cfg.Server.ListenAddr, server.Services{
		Seed:             generator,
		DefaultSeedCount: cfg.Seed.EmployeeCount,
		Departments:      department.NewService(repos.Departments, nil, txManager),
		Employees:        employee.NewService(repos.Employees, txManager),
		Attendance:       attendance.NewService(repos.Attendance, nil, txManager),
	}, log.Default())

	log.Printf("gRPC server listening on %s", cfg.Server.ListenAddr)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
