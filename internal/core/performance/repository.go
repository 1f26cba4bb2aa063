package performance

import "context"

// Repository は評価・評点・目標の永続化を抽象化します。
type Repository interface {
	// GetOrCreate は (employee, review_date) をキーに評価記録を返し、存在しなければ作成します。
	GetOrCreate(ctx context.Context, performance *Performance) (*Performance, bool, error)
	// GetOrCreateReview は (performance, category) をキーに評点を作成します。
	GetOrCreateReview(ctx context.Context, review *Review) (*Review, bool, error)
	// GetOrCreateGoal は (employee, title) をキーに目標を作成します。
	GetOrCreateGoal(ctx context.Context, goal *Goal) (*Goal, bool, error)
}
