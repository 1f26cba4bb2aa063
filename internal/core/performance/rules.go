package performance

import "github.com/shopspring/decimal"

var (
	excellentThreshold = decimal.RequireFromString("4.5")
	goodThreshold      = decimal.RequireFromString("4.0")
	averageThreshold   = decimal.RequireFromString("3.5")

	minScore    = decimal.NewFromInt(1)
	maxScore    = decimal.NewFromInt(5)
	maxProgress = decimal.NewFromInt(100)
)

// StatusForScore はスコアから評価区分を導出します。各区分の下限は含みます。
func StatusForScore(score decimal.Decimal) Status {
	switch {
	case score.GreaterThanOrEqual(excellentThreshold):
		return StatusExcellent
	case score.GreaterThanOrEqual(goodThreshold):
		return StatusGood
	case score.GreaterThanOrEqual(averageThreshold):
		return StatusAverage
	default:
		return StatusNeedsImprovement
	}
}

func inRange(v, lo, hi decimal.Decimal) bool {
	return v.GreaterThanOrEqual(lo) && v.LessThanOrEqual(hi)
}

// Validate は評価記録の不変条件を検証します。
func (p *Performance) Validate() error {
	if !inRange(p.PerformanceScore, minScore, maxScore) {
		return ErrInvalidScore
	}
	if p.ReviewerID != nil && *p.ReviewerID == p.EmployeeID {
		return ErrSelfReview
	}
	return nil
}

// Validate は評点の範囲を検証します。
func (r *Review) Validate() error {
	if !inRange(r.Rating, minScore, maxScore) {
		return ErrInvalidRating
	}
	return nil
}

// Validate は目標の日付・進捗・完了状態の整合性を検証します。
// completed であることと、進捗 100 かつ完了日ありであることは同値です。
func (g *Goal) Validate() error {
	if g.TargetDate.Before(g.StartDate) {
		return ErrInvalidGoalDates
	}
	if !inRange(g.Progress, decimal.Zero, maxProgress) {
		return ErrInvalidGoalProgress
	}

	completed := g.Status == GoalStatusCompleted
	if completed != (g.CompletionDate != nil) || completed != g.Progress.Equal(maxProgress) {
		return ErrInconsistentGoal
	}
	if g.CompletionDate != nil && g.CompletionDate.After(g.TargetDate) {
		return ErrInconsistentGoal
	}
	return nil
}
