package postgres

import (
	"github.com/ogurasousui/employee-analytics/internal/core/seed"
	pgdb "github.com/ogurasousui/employee-analytics/internal/platform/db/postgres"
)

// NewRepositories は生成処理が書き込む全リポジトリを同じ接続で束ねます。
func NewRepositories(pool pgdb.Queryer) seed.Repositories {
	return seed.Repositories{
		Departments: NewDepartmentRepository(pool),
		Positions:   NewPositionRepository(pool),
		Users:       NewUserRepository(pool),
		Employees:   NewEmployeeRepository(pool),
		Attendance:  NewAttendanceRepository(pool),
		Performance: NewPerformanceRepository(pool),
	}
}
