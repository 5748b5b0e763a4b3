package catalog

import "strings"

// MatchesCategory はカテゴリの完全一致（大文字小文字は無視）。
// 空カテゴリは「絞り込みなし」。
func MatchesCategory(p Product, category string) bool {
	if category == "" {
		return true
	}
	return strings.EqualFold(p.Category, category)
}

// MatchesQuery はtitle/description/category/brandのどれかに
// 部分一致すればヒット（大文字小文字は無視）。空クエリは全件。
func MatchesQuery(p Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	for _, field := range []string{p.Title, p.Description, p.Category, p.Brand} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Filter は一覧取得後のクライアント側絞り込み。線形走査。
func Filter(products []Product, query string, category string) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if MatchesCategory(p, category) && MatchesQuery(p, query) {
			out = append(out, p)
		}
	}
	return out
}
