package user

import "errors"

var (
	// ErrUserNotFound はアカウントが存在しない場合に返却されます。
	ErrUserNotFound = errors.New("user: not found")
	// ErrInvalidUsername はユーザー名が不正な場合に返却されます。
	ErrInvalidUsername = errors.New("user: invalid username")
)
