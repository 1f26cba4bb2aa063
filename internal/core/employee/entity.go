package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Gender は社員の性別を表します。
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// Employee は社員エンティティです。
// 部署・職位・アカウント・上長は未設定を許容するため nil を取り得ます。
type Employee struct {
	ID           string
	EmployeeID   string
	UserID       *string
	FirstName    string
	LastName     string
	Gender       *Gender
	Email        string
	Phone        string
	DepartmentID *string
	PositionID   *string
	ManagerID    *string
	HireDate     time.Time
	Salary       decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName は "名 姓" 形式の氏名を返します。
func (e *Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// SameIdentity は employee_id が衝突した既存社員が同一人物かを判定します。
func (e *Employee) SameIdentity(other *Employee) bool {
	if e == nil || other == nil {
		return false
	}
	return e.EmployeeID == other.EmployeeID && strings.EqualFold(e.Email, other.Email)
}
