package postgres

import "strconv"

// trimPage は limit+1 件取得した結果から余剰分を落とし、続きがあれば次ページのトークンを返します。
func trimPage[T any](items []T, limit, offset int) ([]T, string) {
	if len(items) <= limit {
		return items, ""
	}
	return items[:limit], strconv.Itoa(offset + limit)
}
