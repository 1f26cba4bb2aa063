package user

import (
	"strings"
	"time"
)

// Status はアカウントの状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User は社員に紐づく認証用アカウントです。
type User struct {
	ID        string
	Username  string
	Email     string
	FirstName string
	LastName  string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SameIdentity は username が衝突した既存アカウントが同一人物かを判定します。
func (u *User) SameIdentity(other *User) bool {
	if u == nil || other == nil {
		return false
	}
	return u.Username == other.Username && strings.EqualFold(u.Email, other.Email)
}
