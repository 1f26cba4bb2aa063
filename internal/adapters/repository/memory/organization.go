package memory

import (
	"cmp"
	"context"
	"slices"
	"strconv"

	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/position"
	"github.com/ogurasousui/employee-analytics/internal/core/user"
)

// DepartmentRepository は department.Repository のインメモリ実装です。
type DepartmentRepository struct {
	store *Store
}

var _ department.Repository = (*DepartmentRepository)(nil)

// GetOrCreate は部署名をキーに部署を返し、存在しなければ作成します。
func (r *DepartmentRepository) GetOrCreate(_ context.Context, d *department.Department) (*department.Department, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.departments {
		if existing.Name == d.Name {
			return clone(existing), false, nil
		}
	}

	stored := clone(d)
	stored.ID = newID()
	s.departments = append(s.departments, stored)
	return clone(stored), true, nil
}

// FindByID は ID で部署を取得します。
func (r *DepartmentRepository) FindByID(_ context.Context, id string) (*department.Department, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if d := s.findDepartment(id); d != nil {
		return clone(d), nil
	}
	return nil, department.ErrDepartmentNotFound
}

// List は部署名順に部署を返します。
func (r *DepartmentRepository) List(_ context.Context, filter department.ListDepartmentsFilter) ([]*department.Department, string, error) {
	s := r.store
	s.mu.RLock()
	sorted := cloneAll(s.departments)
	s.mu.RUnlock()

	slices.SortFunc(sorted, func(a, b *department.Department) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return paginate(sorted, filter.Limit, filter.Offset)
}

func (s *Store) findDepartment(id string) *department.Department {
	for _, d := range s.departments {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// PositionRepository は position.Repository のインメモリ実装です。
type PositionRepository struct {
	store *Store
}

var _ position.Repository = (*PositionRepository)(nil)

// GetOrCreate は (title, department) をキーに職位を返し、存在しなければ作成します。
func (r *PositionRepository) GetOrCreate(_ context.Context, p *position.Position) (*position.Position, bool, error) {
	if err := p.Validate(); err != nil {
		return nil, false, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findDepartment(p.DepartmentID) == nil {
		return nil, false, position.ErrDepartmentNotFound
	}
	for _, existing := range s.positions {
		if existing.Title == p.Title && existing.DepartmentID == p.DepartmentID {
			return clone(existing), false, nil
		}
	}

	stored := clone(p)
	stored.ID = newID()
	s.positions = append(s.positions, stored)
	return clone(stored), true, nil
}

// ListByDepartment は部署に属する職位をタイトル順に返します。
func (r *PositionRepository) ListByDepartment(_ context.Context, departmentID string) ([]*position.Position, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*position.Position
	for _, p := range s.positions {
		if p.DepartmentID == departmentID {
			result = append(result, clone(p))
		}
	}
	slices.SortFunc(result, func(a, b *position.Position) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
	})
	return result, nil
}

func (s *Store) findPosition(id string) *position.Position {
	for _, p := range s.positions {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// UserRepository は user.Repository のインメモリ実装です。
type UserRepository struct {
	store *Store
}

var _ user.Repository = (*UserRepository)(nil)

// GetOrCreate は username をキーにアカウントを返し、存在しなければ作成します。
func (r *UserRepository) GetOrCreate(_ context.Context, u *user.User) (*user.User, bool, error) {
	if u.Username == "" {
		return nil, false, user.ErrInvalidUsername
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return clone(existing), false, nil
		}
	}

	stored := clone(u)
	stored.ID = newID()
	s.users = append(s.users, stored)
	return clone(stored), true, nil
}

// FindByID は ID でアカウントを取得します。
func (r *UserRepository) FindByID(_ context.Context, id string) (*user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u := s.findUser(id); u != nil {
		return clone(u), nil
	}
	return nil, user.ErrUserNotFound
}

func (s *Store) findUser(id string) *user.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// paginate は offset から limit 件を切り出し、続きがあれば次ページのトークンを返します。
func paginate[T any](items []*T, limit, offset int) ([]*T, string, error) {
	if offset >= len(items) {
		return []*T{}, "", nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	next := ""
	if end < len(items) {
		next = strconv.Itoa(end)
	}
	return items[offset:end], next, nil
}
