package user

import "context"

// Repository はアカウントの永続化を行うインターフェースです。
type Repository interface {
	// GetOrCreate は username をキーに既存行を返し、存在しなければ作成します。
	GetOrCreate(ctx context.Context, user *User) (*User, bool, error)
	FindByID(ctx context.Context, id string) (*User, error)
}
