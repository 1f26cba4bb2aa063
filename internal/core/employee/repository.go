package employee

import "context"

// Repository は社員永続化の抽象です。
type Repository interface {
	// GetOrCreate は employee_id をキーに既存行を返し、存在しなければ作成します。
	// メールアドレスまたはアカウントが別の社員のものであれば ErrIdentityConflict を返します。
	GetOrCreate(ctx context.Context, employee *Employee) (*Employee, bool, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	// ListActiveByDepartment は部署に在籍する有効な社員を excludeID を除いて返します。
	ListActiveByDepartment(ctx context.Context, departmentID, excludeID string) ([]*Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]*Employee, string, error)
}

// ListEmployeesFilter は一覧取得用フィルタです。
type ListEmployeesFilter struct {
	DepartmentID string
	IsActive     *bool
	Limit        int
	Offset       int
}
