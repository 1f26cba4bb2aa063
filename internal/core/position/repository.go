package position

import "context"

// Repository は職位の永続化を抽象化します。
type Repository interface {
	// GetOrCreate は (title, department) をキーに既存行を返し、存在しなければ作成します。
	GetOrCreate(ctx context.Context, position *Position) (*Position, bool, error)
	// ListByDepartment は部署に属する職位をタイトル順で返します。
	ListByDepartment(ctx context.Context, departmentID string) ([]*Position, error)
}
