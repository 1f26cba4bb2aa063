// Package excel は生成結果を xlsx ブックに書き出します。
package excel

import (
	"fmt"

	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/seed"
	excelize "github.com/xuri/excelize/v2"
)

const (
	SummarySheet   = "Summary"
	EmployeesSheet = "Employees"

	dateLayout = "2006-01-02"
)

var employeeHeaders = []string{"Employee ID", "Name", "Email", "Phone", "Department", "Hire Date", "Salary", "Active"}

var employeeWidths = []float64{14, 28, 32, 22, 20, 12, 12, 8}

// Report はブックに書き出す内容です。Departments は部署 ID から部署名への対応表です。
type Report struct {
	Summary     seed.Summary
	Employees   []*employee.Employee
	Departments map[string]string
}

// WriteToFile はブックを生成して path に保存します。
func WriteToFile(r Report, path string) error {
	f, err := build(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// WriteToBytes はブックを生成してバイト列で返します。
func WriteToBytes(r Report) ([]byte, error) {
	f, err := build(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func build(r Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(EmployeesSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("new sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}

	if err := writeSummary(f, header, r.Summary); err != nil {
		f.Close()
		return nil, fmt.Errorf("write summary: %w", err)
	}
	if err := writeEmployees(f, header, r.Employees, r.Departments); err != nil {
		f.Close()
		return nil, fmt.Errorf("write employees: %w", err)
	}

	return f, nil
}

func writeSummary(f *excelize.File, header int, s seed.Summary) error {
	rows := [][]any{
		{"Table", "Created"},
		{"departments", s.DepartmentsCreated},
		{"positions", s.PositionsCreated},
		{"employees", s.EmployeesCreated},
		{"attendances", s.AttendancesCreated},
		{"time_logs", s.TimeLogsCreated},
		{"performances", s.PerformancesCreated},
		{"performance_reviews", s.ReviewsCreated},
		{"goals", s.GoalsCreated},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(SummarySheet, cellName(1, i+1), &row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", header); err != nil {
		return err
	}
	return f.SetColWidth(SummarySheet, "A", "A", 22)
}

func writeEmployees(f *excelize.File, header int, employees []*employee.Employee, departments map[string]string) error {
	headers := make([]any, 0, len(employeeHeaders))
	for _, h := range employeeHeaders {
		headers = append(headers, h)
	}
	if err := f.SetSheetRow(EmployeesSheet, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(EmployeesSheet, "A1", cellName(len(employeeHeaders), 1), header); err != nil {
		return err
	}

	for i, emp := range employees {
		dept := ""
		if emp.DepartmentID != nil {
			dept = departments[*emp.DepartmentID]
		}
		row := []any{
			emp.EmployeeID,
			emp.FullName(),
			emp.Email,
			emp.Phone,
			dept,
			emp.HireDate.Format(dateLayout),
			emp.Salary.InexactFloat64(),
			emp.IsActive,
		}
		if err := f.SetSheetRow(EmployeesSheet, cellName(1, i+2), &row); err != nil {
			return fmt.Errorf("employee %s: %w", emp.EmployeeID, err)
		}
	}

	for col, w := range employeeWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(EmployeesSheet, name, name, w); err != nil {
			return err
		}
	}

	return f.SetPanes(EmployeesSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
