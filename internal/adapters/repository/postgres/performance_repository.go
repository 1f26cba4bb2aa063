package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/employee-analytics/internal/core/performance"
	pgdb "github.com/ogurasousui/employee-analytics/internal/platform/db/postgres"
	"github.com/shopspring/decimal"
)

const (
	performanceColumns = `id, employee_id, reviewer_id, review_date, performance_score, goals_achievement, comments, status, created_at, updated_at`
	reviewColumns      = `id, performance_id, category, rating, comments, created_at`
	goalColumns        = `id, employee_id, title, description, start_date, target_date, completion_date, status, progress, created_at, updated_at`
)

// PerformanceRepository は PostgreSQL を利用した評価・評点・目標永続化の実装です。
type PerformanceRepository struct {
	pool pgdb.Queryer
}

// NewPerformanceRepository は PerformanceRepository を生成します。
func NewPerformanceRepository(pool pgdb.Queryer) *PerformanceRepository {
	return &PerformanceRepository{pool: pool}
}

// GetOrCreate は (employee, review_date) が未登録であれば評価記録を挿入し、登録済みであれば既存行を返します。
func (r *PerformanceRepository) GetOrCreate(ctx context.Context, p *performance.Performance) (*performance.Performance, bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO performances (employee_id, reviewer_id, review_date, performance_score, goals_achievement, comments, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (employee_id, review_date) DO NOTHING
        RETURNING `+performanceColumns,
		p.EmployeeID,
		nullableString(p.ReviewerID),
		dateOnly(p.ReviewDate),
		p.PerformanceScore,
		p.GoalsAchievement,
		nullableString(p.Comments),
		string(p.Status),
		p.CreatedAt,
		p.UpdatedAt,
	)

	created, err := scanPerformance(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, performance.ErrPerformanceNotFound) {
		return nil, false, translatePerformancePgError(err)
	}

	row = exec.QueryRow(ctx, `
        SELECT `+performanceColumns+`
          FROM performances
         WHERE employee_id = $1 AND review_date = $2
    `, p.EmployeeID, dateOnly(p.ReviewDate))

	existing, err := scanPerformance(row)
	if err != nil {
		return nil, false, translatePerformancePgError(err)
	}
	return existing, false, nil
}

// GetOrCreateReview は (performance, category) が未登録であれば評点を挿入します。
func (r *PerformanceRepository) GetOrCreateReview(ctx context.Context, rv *performance.Review) (*performance.Review, bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO performance_reviews (performance_id, category, rating, comments, created_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (performance_id, category) DO NOTHING
        RETURNING `+reviewColumns,
		rv.PerformanceID, rv.Category, rv.Rating, nullableString(rv.Comments), rv.CreatedAt)

	created, err := scanReview(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, translatePerformancePgError(err)
	}

	row = exec.QueryRow(ctx, `
        SELECT `+reviewColumns+`
          FROM performance_reviews
         WHERE performance_id = $1 AND category = $2
    `, rv.PerformanceID, rv.Category)

	existing, err := scanReview(row)
	if err != nil {
		return nil, false, translatePerformancePgError(err)
	}
	return existing, false, nil
}

// GetOrCreateGoal は (employee, title) が未登録であれば目標を挿入します。
func (r *PerformanceRepository) GetOrCreateGoal(ctx context.Context, g *performance.Goal) (*performance.Goal, bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO goals (employee_id, title, description, start_date, target_date, completion_date, status, progress, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (employee_id, title) DO NOTHING
        RETURNING `+goalColumns,
		g.EmployeeID,
		g.Title,
		nullableString(g.Description),
		dateOnly(g.StartDate),
		dateOnly(g.TargetDate),
		nullableDate(g.CompletionDate),
		string(g.Status),
		g.Progress,
		g.CreatedAt,
		g.UpdatedAt,
	)

	created, err := scanGoal(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, translatePerformancePgError(err)
	}

	row = exec.QueryRow(ctx, `
        SELECT `+goalColumns+`
          FROM goals
         WHERE employee_id = $1 AND title = $2
    `, g.EmployeeID, g.Title)

	existing, err := scanGoal(row)
	if err != nil {
		return nil, false, translatePerformancePgError(err)
	}
	return existing, false, nil
}

func scanPerformance(row pgx.Row) (*performance.Performance, error) {
	var (
		id, employeeID       string
		reviewerID           sql.NullString
		reviewDate           time.Time
		score, achievement   decimal.Decimal
		comments             sql.NullString
		status               string
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &employeeID, &reviewerID, &reviewDate, &score, &achievement, &comments, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, performance.ErrPerformanceNotFound
		}
		return nil, err
	}

	return &performance.Performance{
		ID:               id,
		EmployeeID:       employeeID,
		ReviewerID:       stringPtr(reviewerID),
		ReviewDate:       dateOnly(reviewDate),
		PerformanceScore: score,
		GoalsAchievement: achievement,
		Comments:         stringPtr(comments),
		Status:           performance.Status(status),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

func scanReview(row pgx.Row) (*performance.Review, error) {
	var (
		id, performanceID, category string
		rating                      decimal.Decimal
		comments                    sql.NullString
		createdAt                   time.Time
	)

	if err := row.Scan(&id, &performanceID, &category, &rating, &comments, &createdAt); err != nil {
		return nil, err
	}

	return &performance.Review{
		ID:            id,
		PerformanceID: performanceID,
		Category:      category,
		Rating:        rating,
		Comments:      stringPtr(comments),
		CreatedAt:     createdAt,
	}, nil
}

func scanGoal(row pgx.Row) (*performance.Goal, error) {
	var (
		id, employeeID, title string
		description           sql.NullString
		startDate, targetDate time.Time
		completionDate        sql.NullTime
		status                string
		progress              decimal.Decimal
		createdAt, updatedAt  time.Time
	)

	if err := row.Scan(&id, &employeeID, &title, &description, &startDate, &targetDate, &completionDate, &status, &progress, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &performance.Goal{
		ID:             id,
		EmployeeID:     employeeID,
		Title:          title,
		Description:    stringPtr(description),
		StartDate:      dateOnly(startDate),
		TargetDate:     dateOnly(targetDate),
		CompletionDate: datePtr(completionDate),
		Status:         performance.GoalStatus(status),
		Progress:       progress,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}, nil
}

func translatePerformancePgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return performance.ErrPerformanceNotFound
	}

	code, constraint := pgErrorCode(err)
	switch code {
	case foreignKeyViolationCode:
		if constraint == "performance_reviews_performance_id_fkey" {
			return performance.ErrPerformanceNotFound
		}
		return performance.ErrEmployeeNotFound
	case checkViolationCode:
		switch constraint {
		case "performances_reviewer_check":
			return performance.ErrSelfReview
		case "performance_reviews_rating_check":
			return performance.ErrInvalidRating
		case "goals_dates_check":
			return performance.ErrInvalidGoalDates
		case "goals_progress_check":
			return performance.ErrInvalidGoalProgress
		case "goals_completion_check", "goals_status_check":
			return performance.ErrInconsistentGoal
		default:
			return performance.ErrInvalidScore
		}
	}
	return err
}
