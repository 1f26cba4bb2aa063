package excel

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/seed"
	"github.com/shopspring/decimal"
	excelize "github.com/xuri/excelize/v2"
)

func sampleReport() Report {
	dept := "dept-1"
	return Report{
		Summary: seed.Summary{DepartmentsCreated: 6, PositionsCreated: 18, EmployeesCreated: 2},
		Employees: []*employee.Employee{
			{
				EmployeeID:   "EMP10001",
				FirstName:    "Hanako",
				LastName:     "Sato",
				Email:        "hanako@example.com",
				DepartmentID: &dept,
				HireDate:     time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
				Salary:       decimal.NewFromInt(72000),
				IsActive:     true,
			},
			{
				EmployeeID: "EMP10002",
				FirstName:  "Taro",
				LastName:   "Yamada",
				Email:      "taro@example.com",
				HireDate:   time.Date(2021, 10, 1, 0, 0, 0, 0, time.UTC),
				Salary:     decimal.NewFromInt(55000),
			},
		},
		Departments: map[string]string{dept: "Sales"},
	}
}

func TestWriteToBytes(t *testing.T) {
	t.Parallel()

	data, err := WriteToBytes(sampleReport())
	if err != nil {
		t.Fatalf("WriteToBytes returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != SummarySheet || sheets[1] != EmployeesSheet {
		t.Fatalf("unexpected sheets: %v", sheets)
	}

	summary, err := f.GetRows(SummarySheet)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if len(summary) != 9 {
		t.Fatalf("expected 9 summary rows, got %d", len(summary))
	}
	if summary[3][0] != "employees" || summary[3][1] != "2" {
		t.Fatalf("unexpected employees row: %v", summary[3])
	}

	rows, err := f.GetRows(EmployeesSheet)
	if err != nil {
		t.Fatalf("read employees: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Employee ID" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Hanako Sato" || rows[1][4] != "Sales" || rows[1][5] != "2022-04-01" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][4] != "" {
		t.Fatalf("expected blank department, got %q", rows[2][4])
	}
}

func TestWriteToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.xlsx")
	if err := WriteToFile(sampleReport(), path); err != nil {
		t.Fatalf("WriteToFile returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open saved workbook: %v", err)
	}
	defer f.Close()

	value, err := f.GetCellValue(EmployeesSheet, "A3")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if value != "EMP10002" {
		t.Fatalf("unexpected cell value: %q", value)
	}
}
