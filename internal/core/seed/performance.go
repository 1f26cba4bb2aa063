package seed

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/performance"
	"github.com/shopspring/decimal"
)

const (
	daysPerYear           = 365
	minGoalDurationDays   = 90
	maxGoalDurationDays   = 365
	maxCompletionLeadDays = 30
	goalCompletionRate    = 0.7
)

// 入社初年度の評価日は入社日からの固定日数とする。
var firstYearAnchors = []int{180, 365}

var completedProgress = decimal.NewFromInt(100)

// synthesizePerformance は在籍年ごとに 1〜2 回の評価記録と、その評点・目標を作成します。
// 評価日が今日より後になる回は作成しません。
func (g *Generator) synthesizePerformance(ctx context.Context, emp *employee.Employee, today, now time.Time, summary *Summary) error {
	return g.withinTx(ctx, summary, func(txCtx context.Context, delta *Summary) error {
		var reviewers []*employee.Employee
		if emp.DepartmentID != nil {
			found, err := g.repos.Employees.ListActiveByDepartment(txCtx, *emp.DepartmentID, emp.ID)
			if err != nil {
				return fmt.Errorf("list reviewers: %w", err)
			}
			reviewers = found
		}

		hireDate := dateOf(emp.HireDate)
		years := int(math.Floor(float64(daysBetween(hireDate, today)) / 365.25))

		for year := 0; year <= years; year++ {
			occurrences := g.intBetween(1, 2)
			for i := 0; i < occurrences; i++ {
				var reviewDate time.Time
				if year == 0 {
					reviewDate = addDays(hireDate, firstYearAnchors[i])
				} else {
					reviewDate = addDays(hireDate, daysPerYear*year+g.intBetween(1, daysPerYear))
				}
				if reviewDate.After(today) {
					continue
				}

				if err := g.synthesizeReview(txCtx, emp, reviewers, reviewDate, today, now, delta); err != nil {
					return fmt.Errorf("review %s: %w", reviewDate.Format(time.DateOnly), err)
				}
			}
		}
		return nil
	})
}

func (g *Generator) synthesizeReview(ctx context.Context, emp *employee.Employee, reviewers []*employee.Employee, reviewDate, today, now time.Time, summary *Summary) error {
	record := &performance.Performance{
		EmployeeID:       emp.ID,
		ReviewDate:       reviewDate,
		PerformanceScore: g.uniform(3, 5, 1),
		GoalsAchievement: g.uniform(70, 120, 2),
		Comments:         stringPtr(g.faker.Paragraph(3)),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if len(reviewers) > 0 {
		record.ReviewerID = stringPtr(reviewers[g.rnd.IntN(len(reviewers))].ID)
	}
	record.Status = performance.StatusForScore(record.PerformanceScore)
	if err := record.Validate(); err != nil {
		return err
	}

	stored, created, err := g.repos.Performance.GetOrCreate(ctx, record)
	if err != nil {
		return err
	}
	if created {
		summary.PerformancesCreated++
	}

	for _, category := range performance.Categories {
		review := &performance.Review{
			PerformanceID: stored.ID,
			Category:      category,
			Rating:        g.uniform(3, 5, 1),
			Comments:      stringPtr(g.faker.Sentence()),
			CreatedAt:     now,
		}
		if err := review.Validate(); err != nil {
			return fmt.Errorf("%s: %w", category, err)
		}
		_, created, err := g.repos.Performance.GetOrCreateReview(ctx, review)
		if err != nil {
			return fmt.Errorf("%s: %w", category, err)
		}
		if created {
			summary.ReviewsCreated++
		}
	}

	goals := g.intBetween(1, 3)
	for i := 0; i < goals; i++ {
		goal := g.drawGoal(emp.ID, reviewDate, today, now)
		if err := goal.Validate(); err != nil {
			return fmt.Errorf("goal %q: %w", goal.Title, err)
		}
		_, created, err := g.repos.Performance.GetOrCreateGoal(ctx, goal)
		if err != nil {
			return fmt.Errorf("goal %q: %w", goal.Title, err)
		}
		if created {
			summary.GoalsCreated++
		}
	}
	return nil
}

// drawGoal は評価日を開始日とする目標を作成します。
// 期限を過ぎた目標は 7 割が完了、残りは保留、期限前の目標は進行中になります。
func (g *Generator) drawGoal(employeeID string, startDate, today, now time.Time) *performance.Goal {
	goal := &performance.Goal{
		EmployeeID:  employeeID,
		Title:       g.faker.Words(4),
		Description: stringPtr(g.faker.Paragraph(2)),
		StartDate:   startDate,
		TargetDate:  addDays(startDate, g.intBetween(minGoalDurationDays, maxGoalDurationDays)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch {
	case goal.TargetDate.After(today):
		goal.Status = performance.GoalStatusInProgress
		goal.Progress = g.uniform(10, 90, 2)
	case g.rnd.Float64() < goalCompletionRate:
		completion := addDays(goal.TargetDate, -g.intBetween(0, maxCompletionLeadDays))
		goal.Status = performance.GoalStatusCompleted
		goal.CompletionDate = &completion
		goal.Progress = completedProgress
	default:
		goal.Status = performance.GoalStatusOnHold
		goal.Progress = g.uniform(10, 80, 2)
	}
	return goal
}
