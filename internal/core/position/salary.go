package position

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SalaryRange は給与レンジ (バンド) を表します。
type SalaryRange struct {
	Band string
	Min  int64
	Max  int64
}

// MinDecimal は下限を decimal で返します。
func (r SalaryRange) MinDecimal() decimal.Decimal {
	return decimal.NewFromInt(r.Min)
}

// MaxDecimal は上限を decimal で返します。
func (r SalaryRange) MaxDecimal() decimal.Decimal {
	return decimal.NewFromInt(r.Max)
}

// OtherBand はキーワードに一致しない職位に割り当てられるバンドです。
var OtherBand = SalaryRange{Band: "Other", Min: 40000, Max: 70000}

// 評価順に意味がある。"Senior Engineer" は Engineer ではなく Senior に一致する。
var salaryBands = []SalaryRange{
	{Band: "Director", Min: 80000, Max: 150000},
	{Band: "Manager", Min: 60000, Max: 100000},
	{Band: "Senior", Min: 50000, Max: 80000},
	{Band: "Specialist", Min: 40000, Max: 60000},
	{Band: "Engineer", Min: 50000, Max: 90000},
	{Band: "Assistant", Min: 35000, Max: 50000},
}

// SalaryRangeFor は職位名に最初に含まれるキーワードのバンドを返します。
// 一致しない場合 (CTO など) は OtherBand を返します。
func SalaryRangeFor(title string) SalaryRange {
	for _, band := range salaryBands {
		if strings.Contains(title, band.Band) {
			return band
		}
	}
	return OtherBand
}
