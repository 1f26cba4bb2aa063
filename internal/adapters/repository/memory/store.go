// Package memory はプロセス内のマップで各リポジトリを実装します。
// データベースを使わない dry-run 実行とテストで利用します。
package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ogurasousui/employee-analytics/internal/core/attendance"
	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/performance"
	"github.com/ogurasousui/employee-analytics/internal/core/position"
	"github.com/ogurasousui/employee-analytics/internal/core/user"
)

// Store は全エンティティを保持するインメモリストアです。ゴルーチンセーフです。
type Store struct {
	mu sync.RWMutex

	departments  []*department.Department
	positions    []*position.Position
	users        []*user.User
	employees    []*employee.Employee
	attendances  []*attendance.Attendance
	timeLogs     []*attendance.TimeLog
	performances []*performance.Performance
	reviews      []*performance.Review
	goals        []*performance.Goal
}

// Stats は保持している行数です。
type Stats struct {
	Departments  int
	Positions    int
	Users        int
	Employees    int
	Attendances  int
	TimeLogs     int
	Performances int
	Reviews      int
	Goals        int
}

// NewStore は空の Store を生成します。
func NewStore() *Store {
	return &Store{}
}

// Stats は現在の行数を返します。
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Departments:  len(s.departments),
		Positions:    len(s.positions),
		Users:        len(s.users),
		Employees:    len(s.employees),
		Attendances:  len(s.attendances),
		TimeLogs:     len(s.timeLogs),
		Performances: len(s.performances),
		Reviews:      len(s.reviews),
		Goals:        len(s.goals),
	}
}

// Departments は部署リポジトリを返します。
func (s *Store) Departments() *DepartmentRepository {
	return &DepartmentRepository{store: s}
}

// Positions は職位リポジトリを返します。
func (s *Store) Positions() *PositionRepository {
	return &PositionRepository{store: s}
}

// Users はアカウントリポジトリを返します。
func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}

// Employees は社員リポジトリを返します。
func (s *Store) Employees() *EmployeeRepository {
	return &EmployeeRepository{store: s}
}

// Attendance は勤怠リポジトリを返します。
func (s *Store) Attendance() *AttendanceRepository {
	return &AttendanceRepository{store: s}
}

// Performance は評価リポジトリを返します。
func (s *Store) Performance() *PerformanceRepository {
	return &PerformanceRepository{store: s}
}

// AllEmployees は登録順に全社員の複製を返します。
func (s *Store) AllEmployees() []*employee.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.employees)
}

// AllAttendances は全勤怠記録の複製を返します。
func (s *Store) AllAttendances() []*attendance.Attendance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.attendances)
}

// AllTimeLogs は全打刻ログの複製を返します。
func (s *Store) AllTimeLogs() []*attendance.TimeLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.timeLogs)
}

// AllPerformances は全評価記録の複製を返します。
func (s *Store) AllPerformances() []*performance.Performance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.performances)
}

// AllReviews は全評点の複製を返します。
func (s *Store) AllReviews() []*performance.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.reviews)
}

// AllGoals は全目標の複製を返します。
func (s *Store) AllGoals() []*performance.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.goals)
}

func newID() string {
	return uuid.NewString()
}

// clone は浅いコピーを返します。ポインタ項目は書き換えない前提で共有します。
func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneAll[T any](items []*T) []*T {
	result := make([]*T, 0, len(items))
	for _, item := range items {
		result = append(result, clone(item))
	}
	return result
}
