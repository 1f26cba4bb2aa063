package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/adapters/repository/memory"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/user"
)

// 2025-06-18 は水曜日。
var fixedNow = time.Date(2025, 6, 18, 12, 30, 0, 0, time.UTC)

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}

// sequenceFaker は呼び出しごとに連番を付けた値を返します。
type sequenceFaker struct {
	n int
}

func (f *sequenceFaker) next() int {
	f.n++
	return f.n
}

func (f *sequenceFaker) FirstName() string { return fmt.Sprintf("First%d", f.next()) }
func (f *sequenceFaker) LastName() string { return fmt.Sprintf("Last%d", f.next()) }
func (f *sequenceFaker) Email() string { return fmt.Sprintf("user%d@example.com", f.next()) }
func (f *sequenceFaker) PhoneNumber() string { return "+1-202-555-0100 ext. 12345" }
func (f *sequenceFaker) Sentence() string { return fmt.Sprintf("Sentence %d.", f.next()) }
func (f *sequenceFaker) Words(n int) string { return fmt.Sprintf("goal %d of %d words", f.next(), n) }
func (f *sequenceFaker) Paragraph(int) string { return fmt.Sprintf("Paragraph %d.", f.next()) }

// fixedRand は IntN に常に 0、Float64 に固定値を返します。
type fixedRand struct {
	f float64
}

func (r fixedRand) IntN(int) int { return 0 }
func (r fixedRand) Float64() float64 { return r.f }

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func repositories(s *memory.Store) Repositories {
	return Repositories{
		Departments: s.Departments(),
		Positions:   s.Positions(),
		Users:       s.Users(),
		Employees:   s.Employees(),
		Attendance:  s.Attendance(),
		Performance: s.Performance(),
	}
}

func newTestGenerator(s *memory.Store, rnd Rand, opts ...Option) *Generator {
	return NewGenerator(repositories(s), rnd, &sequenceFaker{}, stubClock{now: fixedNow}, nil, opts...)
}

// conflictingEmployees は最初の remaining 回の作成を ErrIdentityConflict で拒否します。
type conflictingEmployees struct {
	employee.Repository
	remaining int
	calls     int
}

func (r *conflictingEmployees) GetOrCreate(ctx context.Context, e *employee.Employee) (*employee.Employee, bool, error) {
	r.calls++
	if r.remaining > 0 {
		r.remaining--
		return nil, false, employee.ErrIdentityConflict
	}
	return r.Repository.GetOrCreate(ctx, e)
}

// foreignUsers は最初の呼び出しで別人のアカウントを返します。
type foreignUsers struct {
	user.Repository
	served bool
}

func (r *foreignUsers) GetOrCreate(ctx context.Context, u *user.User) (*user.User, bool, error) {
	if !r.served {
		r.served = true
		return &user.User{ID: "someone-else", Username: u.Username, Email: "other@example.com"}, false, nil
	}
	return r.Repository.GetOrCreate(ctx, u)
}
