package main

import (
	"context"
	"fmt"

	"github.com/ogurasousui/employee-analytics/internal/adapters/report/excel"
	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/seed"
)

const reportPageSize = 200

// collectReport は部署と社員を全ページ読み出してレポートを組み立てます。
func collectReport(ctx context.Context, departments department.UseCase, employees employee.UseCase, summary seed.Summary) (excel.Report, error) {
	report := excel.Report{Summary: summary, Departments: make(map[string]string)}

	token := ""
	for {
		page, err := departments.ListDepartments(ctx, department.ListDepartmentsInput{PageSize: reportPageSize, PageToken: token})
		if err != nil {
			return excel.Report{}, fmt.Errorf("list departments: %w", err)
		}
		for _, d := range page.Departments {
			report.Departments[d.ID] = d.Name
		}
		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}

	token = ""
	for {
		page, err := employees.ListEmployees(ctx, employee.ListEmployeesInput{PageSize: reportPageSize, PageToken: token})
		if err != nil {
			return excel.Report{}, fmt.Errorf("list employees: %w", err)
		}
		report.Employees = append(report.Employees, page.Employees...)
		if page.NextPageToken == "" {
			break
		}
		token = page.NextPageToken
	}

	return report, nil
}
