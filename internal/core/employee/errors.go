package employee

import "errors"

var (
	ErrInvalidID          = errors.New("employee: invalid id")
	ErrInvalidPageSize    = errors.New("employee: invalid page size")
	ErrInvalidPageToken   = errors.New("employee: invalid page token")
	ErrEmployeeNotFound   = errors.New("employee: not found")
	ErrDepartmentNotFound = errors.New("employee: department not found")
	ErrPositionNotFound   = errors.New("employee: position not found")
	ErrUserNotFound       = errors.New("employee: user not found")
)

// ErrIdentityConflict はメールアドレスまたはアカウントが別の社員に割り当て済みの場合に返却されます。
var ErrIdentityConflict = errors.New("employee: email or account belongs to another employee")
