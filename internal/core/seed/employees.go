package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/position"
	"github.com/ogurasousui/employee-analytics/internal/core/user"
	"github.com/shopspring/decimal"
)

const (
	minTenureDays  = 365
	maxTenureDays  = 1825
	maxPhoneLength = 20
)

var genders = []employee.Gender{employee.GenderMale, employee.GenderFemale}

type identity struct {
	firstName  string
	lastName   string
	username   string
	email      string
	employeeID string
}

func (g *Generator) drawIdentity() identity {
	first := g.faker.FirstName()
	last := g.faker.LastName()
	username := fmt.Sprintf("%s%s%d", strings.ToLower(first), strings.ToLower(last), g.intBetween(1, 999))
	email := g.faker.Email()
	return identity{
		firstName:  first,
		lastName:   last,
		username:   username,
		email:      email,
		employeeID: fmt.Sprintf("EMP%d", g.intBetween(10000, 99999)),
	}
}

// synthesizeEmployee は部署・職位を選び、アカウントと社員を 1 トランザクションで作成します。
// 自然キーが別人のものと衝突した場合は識別情報を引き直します。
func (g *Generator) synthesizeEmployee(ctx context.Context, departments []*department.Department, today, now time.Time, summary *Summary) (*employee.Employee, error) {
	var result *employee.Employee

	err := g.withinTx(ctx, summary, func(txCtx context.Context, delta *Summary) error {
		dept := departments[g.rnd.IntN(len(departments))]

		positions, err := g.repos.Positions.ListByDepartment(txCtx, dept.ID)
		if err != nil {
			return fmt.Errorf("list positions: %w", err)
		}
		var pos *position.Position
		if len(positions) > 0 {
			pos = positions[g.rnd.IntN(len(positions))]
		}

		band := position.OtherBand
		if pos != nil {
			band = position.SalaryRange{Min: pos.MinSalary.IntPart(), Max: pos.MaxSalary.IntPart()}
		}
		salary := decimal.NewFromInt(int64(g.intBetween(int(band.Min), int(band.Max))))
		hireDate := addDays(today, -g.intBetween(minTenureDays, maxTenureDays))
		gender := genders[g.rnd.IntN(len(genders))]
		phone := truncateRunes(g.faker.PhoneNumber(), maxPhoneLength)

		for attempt := 0; attempt < maxIdentityAttempts; attempt++ {
			id := g.drawIdentity()

			candidateUser := &user.User{
				Username:  id.username,
				Email:     id.email,
				FirstName: id.firstName,
				LastName:  id.lastName,
				Status:    user.StatusActive,
				CreatedAt: now,
				UpdatedAt: now,
			}
			account, _, err := g.repos.Users.GetOrCreate(txCtx, candidateUser)
			if err != nil {
				return fmt.Errorf("user %s: %w", id.username, err)
			}
			if !account.SameIdentity(candidateUser) {
				continue
			}

			candidate := &employee.Employee{
				EmployeeID:   id.employeeID,
				UserID:       stringPtr(account.ID),
				FirstName:    id.firstName,
				LastName:     id.lastName,
				Gender:       &gender,
				Email:        id.email,
				Phone:        phone,
				DepartmentID: stringPtr(dept.ID),
				HireDate:     hireDate,
				Salary:       salary,
				IsActive:     true,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if pos != nil {
				candidate.PositionID = stringPtr(pos.ID)
			}

			emp, created, err := g.repos.Employees.GetOrCreate(txCtx, candidate)
			if errors.Is(err, employee.ErrIdentityConflict) {
				continue
			}
			if err != nil {
				return fmt.Errorf("employee %s: %w", id.employeeID, err)
			}
			if !emp.SameIdentity(candidate) {
				continue
			}

			if created {
				delta.EmployeesCreated++
			}
			result = emp
			return nil
		}

		return ErrIdentityExhausted
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
