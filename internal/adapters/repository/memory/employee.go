package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/ogurasousui/employee-analytics/internal/core/employee"
)

// EmployeeRepository は employee.Repository のインメモリ実装です。
type EmployeeRepository struct {
	store *Store
}

var _ employee.Repository = (*EmployeeRepository)(nil)

// GetOrCreate は employee_id をキーに社員を返し、存在しなければ作成します。
func (r *EmployeeRepository) GetOrCreate(_ context.Context, e *employee.Employee) (*employee.Employee, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.employees {
		if existing.EmployeeID == e.EmployeeID {
			return clone(existing), false, nil
		}
	}
	for _, existing := range s.employees {
		if strings.EqualFold(existing.Email, e.Email) {
			return nil, false, employee.ErrIdentityConflict
		}
		if e.UserID != nil && existing.UserID != nil && *existing.UserID == *e.UserID {
			return nil, false, employee.ErrIdentityConflict
		}
	}

	if e.DepartmentID != nil && s.findDepartment(*e.DepartmentID) == nil {
		return nil, false, employee.ErrDepartmentNotFound
	}
	if e.PositionID != nil && s.findPosition(*e.PositionID) == nil {
		return nil, false, employee.ErrPositionNotFound
	}
	if e.UserID != nil && s.findUser(*e.UserID) == nil {
		return nil, false, employee.ErrUserNotFound
	}

	stored := clone(e)
	stored.ID = newID()
	s.employees = append(s.employees, stored)
	return clone(stored), true, nil
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(_ context.Context, id string) (*employee.Employee, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e := s.findEmployee(id); e != nil {
		return clone(e), nil
	}
	return nil, employee.ErrEmployeeNotFound
}

// ListActiveByDepartment は部署の有効な社員を excludeID を除いて氏名順に返します。
func (r *EmployeeRepository) ListActiveByDepartment(_ context.Context, departmentID, excludeID string) ([]*employee.Employee, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*employee.Employee
	for _, e := range s.employees {
		if e.ID == excludeID || !e.IsActive || e.DepartmentID == nil || *e.DepartmentID != departmentID {
			continue
		}
		result = append(result, clone(e))
	}
	sortByName(result)
	return result, nil
}

// List は姓・名の順で社員を返します。
func (r *EmployeeRepository) List(_ context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error) {
	s := r.store
	s.mu.RLock()
	var filtered []*employee.Employee
	for _, e := range s.employees {
		if filter.DepartmentID != "" && (e.DepartmentID == nil || *e.DepartmentID != filter.DepartmentID) {
			continue
		}
		if filter.IsActive != nil && e.IsActive != *filter.IsActive {
			continue
		}
		filtered = append(filtered, clone(e))
	}
	s.mu.RUnlock()

	sortByName(filtered)
	return paginate(filtered, filter.Limit, filter.Offset)
}

func sortByName(employees []*employee.Employee) {
	slices.SortFunc(employees, func(a, b *employee.Employee) int {
		return cmp.Or(
			cmp.Compare(a.LastName, b.LastName),
			cmp.Compare(a.FirstName, b.FirstName),
			cmp.Compare(a.ID, b.ID),
		)
	})
}

func (s *Store) findEmployee(id string) *employee.Employee {
	for _, e := range s.employees {
		if e.ID == id {
			return e
		}
	}
	return nil
}
