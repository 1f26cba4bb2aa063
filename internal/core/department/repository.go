package department

import "context"

// Repository は部署エンティティの永続化を行うインターフェースです。
type Repository interface {
	// GetOrCreate は部署名をキーに既存行を返し、存在しなければ作成します。
	// 2 番目の戻り値は新規作成されたかどうかを表します。
	GetOrCreate(ctx context.Context, department *Department) (*Department, bool, error)
	FindByID(ctx context.Context, id string) (*Department, error)
	List(ctx context.Context, filter ListDepartmentsFilter) ([]*Department, string, error)
}

// ListDepartmentsFilter は一覧取得時の検索条件を表します。
type ListDepartmentsFilter struct {
	Limit  int
	Offset int
}
