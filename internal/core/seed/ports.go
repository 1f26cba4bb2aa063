package seed

import (
	"context"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/core/attendance"
	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/performance"
	"github.com/ogurasousui/employee-analytics/internal/core/position"
	"github.com/ogurasousui/employee-analytics/internal/core/user"
)

// Rand は一様乱数の供給源です。*rand.Rand (math/rand/v2) が満たします。
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Faker は氏名や文章などのダミーデータを供給します。
type Faker interface {
	FirstName() string
	LastName() string
	Email() string
	PhoneNumber() string
	Sentence() string
	Words(n int) string
	Paragraph(sentences int) string
}

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
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Repositories は生成処理が書き込むストアの集合です。
type Repositories struct {
	Departments department.Repository
	Positions   position.Repository
	Users       user.Repository
	Employees   employee.Repository
	Attendance  attendance.Repository
	Performance performance.Repository
}
