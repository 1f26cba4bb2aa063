package position

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Position は部署に属する職位エンティティです。
type Position struct {
	ID           string
	Title        string
	DepartmentID string
	Description  *string
	MinSalary    decimal.Decimal
	MaxSalary    decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate は職位の不変条件を検証します。
func (p *Position) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrInvalidTitle
	}
	if p.MinSalary.GreaterThan(p.MaxSalary) {
		return ErrInvalidSalaryRange
	}
	return nil
}
