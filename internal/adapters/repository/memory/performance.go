package memory

import (
	"context"

	"github.com/ogurasousui/employee-analytics/internal/core/performance"
)

// PerformanceRepository は performance.Repository のインメモリ実装です。
type PerformanceRepository struct {
	store *Store
}

var _ performance.Repository = (*PerformanceRepository)(nil)

// GetOrCreate は (employee, review_date) をキーに評価記録を返し、存在しなければ作成します。
func (r *PerformanceRepository) GetOrCreate(_ context.Context, p *performance.Performance) (*performance.Performance, bool, error) {
	if err := p.Validate(); err != nil {
		return nil, false, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findEmployee(p.EmployeeID) == nil {
		return nil, false, performance.ErrEmployeeNotFound
	}
	if p.ReviewerID != nil && s.findEmployee(*p.ReviewerID) == nil {
		return nil, false, performance.ErrEmployeeNotFound
	}
	for _, existing := range s.performances {
		if existing.EmployeeID == p.EmployeeID && existing.ReviewDate.Equal(p.ReviewDate) {
			return clone(existing), false, nil
		}
	}

	stored := clone(p)
	stored.ID = newID()
	s.performances = append(s.performances, stored)
	return clone(stored), true, nil
}

// GetOrCreateReview は (performance, category) をキーに評点を作成します。
func (r *PerformanceRepository) GetOrCreateReview(_ context.Context, rv *performance.Review) (*performance.Review, bool, error) {
	if err := rv.Validate(); err != nil {
		return nil, false, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, p := range s.performances {
		if p.ID == rv.PerformanceID {
			found = true
			break
		}
	}
	if !found {
		return nil, false, performance.ErrPerformanceNotFound
	}

	for _, existing := range s.reviews {
		if existing.PerformanceID == rv.PerformanceID && existing.Category == rv.Category {
			return clone(existing), false, nil
		}
	}

	stored := clone(rv)
	stored.ID = newID()
	s.reviews = append(s.reviews, stored)
	return clone(stored), true, nil
}

// GetOrCreateGoal は (employee, title) をキーに目標を作成します。
func (r *PerformanceRepository) GetOrCreateGoal(_ context.Context, g *performance.Goal) (*performance.Goal, bool, error) {
	if err := g.Validate(); err != nil {
		return nil, false, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findEmployee(g.EmployeeID) == nil {
		return nil, false, performance.ErrEmployeeNotFound
	}
	for _, existing := range s.goals {
		if existing.EmployeeID == g.EmployeeID && existing.Title == g.Title {
			return clone(existing), false, nil
		}
	}

	stored := clone(g)
	stored.ID = newID()
	s.goals = append(s.goals, stored)
	return clone(stored), true, nil
}
