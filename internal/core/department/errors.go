package department

import "errors"

var (
	// ErrDepartmentNotFound は部署が存在しない場合に返却されます。
	ErrDepartmentNotFound = errors.New("department: not found")
	// ErrInvalidName は部署名が不正な場合に返却されます。
	ErrInvalidName = errors.New("department: invalid name")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("department: invalid id")
	// ErrInvalidPageSize は一覧取得時のページサイズが不正な場合に返却されます。
	ErrInvalidPageSize = errors.New("department: invalid page size")
	// ErrInvalidPageToken は一覧取得時のページトークンが不正な場合に返却されます。
	ErrInvalidPageToken = errors.New("department: invalid page token")
)
