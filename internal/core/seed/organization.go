package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/position"
)

// seedOrganization はカタログの部署と職位を get-or-create し、カタログ順の部署一覧を返します。
func (g *Generator) seedOrganization(ctx context.Context, now time.Time, summary *Summary) ([]*department.Department, error) {
	departments := make([]*department.Department, 0, len(g.catalog))

	err := g.withinTx(ctx, summary, func(txCtx context.Context, delta *Summary) error {
		departments = departments[:0]
		for _, entry := range g.catalog {
			dept, created, err := g.repos.Departments.GetOrCreate(txCtx, &department.Department{
				Name:        entry.Name,
				Description: stringPtr(entry.Description),
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return fmt.Errorf("department %q: %w", entry.Name, err)
			}
			if created {
				delta.DepartmentsCreated++
			}
			departments = append(departments, dept)

			for _, title := range entry.Positions {
				band := position.SalaryRangeFor(title)
				pos := &position.Position{
					Title:        title,
					DepartmentID: dept.ID,
					Description:  stringPtr(fmt.Sprintf("%s position in %s", title, dept.Name)),
					MinSalary:    band.MinDecimal(),
					MaxSalary:    band.MaxDecimal(),
					CreatedAt:    now,
					UpdatedAt:    now,
				}
				if err := pos.Validate(); err != nil {
					return fmt.Errorf("position %q: %w", title, err)
				}

				_, created, err := g.repos.Positions.GetOrCreate(txCtx, pos)
				if err != nil {
					return fmt.Errorf("position %q in %q: %w", title, dept.Name, err)
				}
				if created {
					delta.PositionsCreated++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("seed: organization: %w", err)
	}

	return departments, nil
}
