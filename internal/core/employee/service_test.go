package employee

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type fakeEmployeeRepo struct {
	employees map[string]*Employee
	sequence  int
	order     []string
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*Employee)}
}

func (r *fakeEmployeeRepo) GetOrCreate(_ context.Context, e *Employee) (*Employee, bool, error) {
	for _, id := range r.order {
		existing := r.employees[id]
		if existing.EmployeeID == e.EmployeeID {
			return cloneEmployee(existing), false, nil
		}
		if existing.Email == e.Email {
			return nil, false, ErrIdentityConflict
		}
	}

	clone := cloneEmployee(e)
	r.sequence++
	clone.ID = fmt.Sprintf("emp-%d", r.sequence)
	r.employees[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return cloneEmployee(clone), true, nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id string) (*Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return nil, ErrEmployeeNotFound
	}
	return cloneEmployee(emp), nil
}

func (r *fakeEmployeeRepo) ListActiveByDepartment(_ context.Context, departmentID, excludeID string) ([]*Employee, error) {
	var result []*Employee
	for _, id := range r.order {
		emp := r.employees[id]
		if emp.ID == excludeID || !emp.IsActive || emp.DepartmentID == nil || *emp.DepartmentID != departmentID {
			continue
		}
		result = append(result, cloneEmployee(emp))
	}
	return result, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, filter ListEmployeesFilter) ([]*Employee, string, error) {
	var filtered []*Employee
	for _, id := range r.order {
		emp := r.employees[id]
		if filter.DepartmentID != "" && (emp.DepartmentID == nil || *emp.DepartmentID != filter.DepartmentID) {
			continue
		}
		if filter.IsActive != nil && emp.IsActive != *filter.IsActive {
			continue
		}
		filtered = append(filtered, cloneEmployee(emp))
	}

	if filter.Offset > len(filtered) {
		return []*Employee{}, "", nil
	}

	end := filter.Offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	nextToken := ""
	if end < len(filtered) {
		nextToken = strconv.Itoa(end)
	}

	return filtered[filter.Offset:end], nextToken, nil
}

func cloneEmployee(emp *Employee) *Employee {
	if emp == nil {
		return nil
	}
	copy := *emp
	if emp.DepartmentID != nil {
		dept := *emp.DepartmentID
		copy.DepartmentID = &dept
	}
	if emp.PositionID != nil {
		pos := *emp.PositionID
		copy.PositionID = &pos
	}
	return &copy
}

func seedEmployees(t *testing.T, repo *fakeEmployeeRepo) {
	t.Helper()

	sales := "dept-sales"
	hr := "dept-hr"
	seeds := []struct {
		code   string
		dept   *string
		active bool
	}{
		{code: "EMP10001", dept: &sales, active: true},
		{code: "EMP10002", dept: &sales, active: false},
		{code: "EMP10003", dept: &sales, active: true},
		{code: "EMP10004", dept: &hr, active: true},
		{code: "EMP10005", dept: nil, active: true},
	}

	for _, s := range seeds {
		_, created, err := repo.GetOrCreate(context.Background(), &Employee{
			EmployeeID:   s.code,
			FirstName:    "Seed",
			LastName:     s.code,
			Email:        s.code + "@example.com",
			DepartmentID: s.dept,
			HireDate:     time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
			Salary:       decimal.NewFromInt(50000),
			IsActive:     s.active,
		})
		if err != nil || !created {
			t.Fatalf("seed %s failed: created=%t err=%v", s.code, created, err)
		}
	}
}

func TestService_GetEmployee(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	seedEmployees(t, repo)
	svc := NewService(repo, nil)

	found, err := svc.GetEmployee(context.Background(), GetEmployeeInput{ID: " emp-1 "})
	if err != nil {
		t.Fatalf("GetEmployee returned error: %v", err)
	}
	if found.EmployeeID != "EMP10001" {
		t.Fatalf("unexpected employee: %s", found.EmployeeID)
	}
	if found.FullName() != "Seed EMP10001" {
		t.Fatalf("unexpected full name: %q", found.FullName())
	}

	if _, err := svc.GetEmployee(context.Background(), GetEmployeeInput{}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.GetEmployee(context.Background(), GetEmployeeInput{ID: "emp-99"}); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestService_ListEmployees_FilterAndPagination(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	seedEmployees(t, repo)
	svc := NewService(repo, nil)

	active := true
	page1, err := svc.ListEmployees(context.Background(), ListEmployeesInput{
		DepartmentID: "dept-sales",
		IsActive:     &active,
		PageSize:     1,
	})
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(page1.Employees) != 1 || page1.NextPageToken == "" {
		t.Fatalf("unexpected first page: %d items, token %q", len(page1.Employees), page1.NextPageToken)
	}

	page2, err := svc.ListEmployees(context.Background(), ListEmployeesInput{
		DepartmentID: "dept-sales",
		IsActive:     &active,
		PageSize:     1,
		PageToken:    page1.NextPageToken,
	})
	if err != nil {
		t.Fatalf("ListEmployees page2 returned error: %v", err)
	}
	if len(page2.Employees) != 1 || page2.NextPageToken != "" {
		t.Fatalf("unexpected second page: %d items, token %q", len(page2.Employees), page2.NextPageToken)
	}
	if page2.Employees[0].EmployeeID != "EMP10003" {
		t.Fatalf("expected EMP10003, got %s", page2.Employees[0].EmployeeID)
	}

	all, err := svc.ListEmployees(context.Background(), ListEmployeesInput{})
	if err != nil {
		t.Fatalf("ListEmployees all returned error: %v", err)
	}
	if len(all.Employees) != 5 {
		t.Fatalf("expected 5 employees, got %d", len(all.Employees))
	}
}

func TestService_ListEmployees_InvalidPaging(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeEmployeeRepo(), nil)

	if _, err := svc.ListEmployees(context.Background(), ListEmployeesInput{PageSize: 201}); !errors.Is(err, ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
	if _, err := svc.ListEmployees(context.Background(), ListEmployeesInput{PageToken: "abc"}); !errors.Is(err, ErrInvalidPageToken) {
		t.Fatalf("expected ErrInvalidPageToken, got %v", err)
	}
}

func TestEmployee_SameIdentity(t *testing.T) {
	t.Parallel()

	a := &Employee{EmployeeID: "EMP12345", Email: "a@example.com"}
	b := &Employee{EmployeeID: "EMP12345", Email: "A@example.com"}
	c := &Employee{EmployeeID: "EMP12345", Email: "c@example.com"}

	if !a.SameIdentity(b) {
		t.Fatalf("expected same identity")
	}
	if a.SameIdentity(c) {
		t.Fatalf("expected different identity")
	}
}
