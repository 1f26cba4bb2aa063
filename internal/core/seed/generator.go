package seed

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/shopspring/decimal"
)

// MaxEmployeeCount は 1 回の Generate で生成できる社員数の上限です。
const MaxEmployeeCount = 100000

const (
	defaultAttendanceDays = 30
	maxIdentityAttempts   = 10
)

// Generator は部署・職位・社員・勤怠・評価のダミーデータを生成します。
// 単一ゴルーチンでの一括実行を前提とし、同時実行は想定しません。
type Generator struct {
	repos          Repositories
	rnd            Rand
	faker          Faker
	clock          Clock
	tx             TransactionManager
	logger         *log.Logger
	catalog        Catalog
	attendanceDays int
}

// UseCase は生成処理の公開インターフェースです。
type UseCase interface {
	Generate(ctx context.Context, in GenerateInput) (*Summary, error)
}

// Option は Generator の任意設定です。
type Option func(*Generator)

// WithLogger は進捗ログの出力先を設定します。
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithCatalog は部署カタログを差し替えます。
func WithCatalog(catalog Catalog) Option {
	return func(g *Generator) {
		g.catalog = catalog
	}
}

// WithAttendanceDays は勤怠を生成する過去日数を設定します。
func WithAttendanceDays(days int) Option {
	return func(g *Generator) {
		if days > 0 {
			g.attendanceDays = days
		}
	}
}

// NewGenerator は Generator を生成します。clock と tx は nil の場合に既定実装を使います。
func NewGenerator(repos Repositories, rnd Rand, faker Faker, clock Clock, tx TransactionManager, opts ...Option) *Generator {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}

	g := &Generator{
		repos:          repos,
		rnd:            rnd,
		faker:          faker,
		clock:          clock,
		tx:             tx,
		logger:         log.New(io.Discard, "", 0),
		catalog:        DefaultCatalog,
		attendanceDays: defaultAttendanceDays,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate は in.EmployeeCount 人分の社員と付随データを生成します。
// 社員ごとにトランザクションを分けるため、途中で失敗しても先行分はコミット済みのまま残ります。
// 自然キーによる get-or-create なので、再実行で続きから埋め直せます。
func (g *Generator) Generate(ctx context.Context, in GenerateInput) (*Summary, error) {
	if in.EmployeeCount < 0 || in.EmployeeCount > MaxEmployeeCount {
		return nil, ErrInvalidEmployeeCount
	}
	if in.EmployeeCount > 0 && len(g.catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	now := g.clock.Now().UTC()
	today := dateOf(now)
	summary := &Summary{}

	departments, err := g.seedOrganization(ctx, now, summary)
	if err != nil {
		return nil, err
	}
	g.logger.Printf("seed: organization ready (%d departments, %d new positions)", len(departments), summary.PositionsCreated)

	var employees []*employee.Employee
	for i := 0; i < in.EmployeeCount; i++ {
		emp, err := g.synthesizeEmployee(ctx, departments, today, now, summary)
		if err != nil {
			return nil, fmt.Errorf("seed: employee %d: %w", i+1, err)
		}
		employees = append(employees, emp)
	}
	g.logger.Printf("seed: %d employees ready (%d new)", len(employees), summary.EmployeesCreated)

	for _, emp := range employees {
		if err := g.synthesizeAttendance(ctx, emp, today, now, summary); err != nil {
			return nil, fmt.Errorf("seed: attendance for %s: %w", emp.EmployeeID, err)
		}
	}
	g.logger.Printf("seed: %d attendance records, %d time logs created", summary.AttendancesCreated, summary.TimeLogsCreated)

	for _, emp := range employees {
		if err := g.synthesizePerformance(ctx, emp, today, now, summary); err != nil {
			return nil, fmt.Errorf("seed: performance for %s: %w", emp.EmployeeID, err)
		}
	}
	g.logger.Printf("seed: %d performance records, %d reviews, %d goals created", summary.PerformancesCreated, summary.ReviewsCreated, summary.GoalsCreated)

	return summary, nil
}

// withinTx は fn を 1 トランザクションで実行し、コミットできた分の件数だけを summary に加算します。
// fn が再実行されても delta は毎回 0 から数え直します。
func (g *Generator) withinTx(ctx context.Context, summary *Summary, fn func(txCtx context.Context, delta *Summary) error) error {
	var delta Summary
	err := g.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		delta = Summary{}
		return fn(txCtx, &delta)
	})
	if err != nil {
		return err
	}
	summary.add(delta)
	return nil
}

// intBetween は [lo, hi] の整数を一様に返します。
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}

// uniform は [lo, hi) の実数を一様に返し、places 桁に丸めます。
func (g *Generator) uniform(lo, hi float64, places int32) decimal.Decimal {
	v := lo + (hi-lo)*g.rnd.Float64()
	return decimal.NewFromFloat(v).Round(places)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

func daysBetween(from, to time.Time) int {
	return int(dateOf(to).Sub(dateOf(from)).Hours() / 24)
}

func stringPtr(s string) *string {
	return &s
}
