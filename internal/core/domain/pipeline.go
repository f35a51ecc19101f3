package domain

import (
	"sort"
	"strings"
)

// A BrowseResult is the derived listing view: the page slice plus
// the pagination facts computed from the filtered set.
type BrowseResult struct {
	Items      []Product
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// Derive runs the derivation pipeline over the full product list:
// filters in fixed order, then a stable sort, then pagination.
// The input is never mutated and the output is always a subset of it.
func Derive(products []Product, f FilterState) BrowseResult {
	matched := filterProducts(products, f)
	sortProducts(matched, f.SortBy)
	return paginate(matched, f)
}

func filterProducts(products []Product, f FilterState) []Product {
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if matches(p, f) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matches(p Product, f FilterState) bool {
	if f.Query != "" && !matchesQuery(p, f.Query) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if p.Price < f.PriceMin || p.Price > f.PriceMax {
		return false
	}
	if !matchesStock(p, f) {
		return false
	}
	if !matchesBrand(p, f.Brands) {
		return false
	}
	return p.Rating >= float64(f.MinRating)
}

func matchesQuery(p Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// matchesStock applies the stock-status checkboxes.
// Both or neither active means no filtering.
func matchesStock(p Product, f FilterState) bool {
	if f.InStock == f.OutOfStock {
		return true
	}
	return p.InStock == f.InStock
}

// matchesBrand applies OR semantics across the selected brands.
func matchesBrand(p Product, brands []string) bool {
	if len(brands) == 0 {
		return true
	}
	for _, b := range brands {
		if strings.EqualFold(p.Brand, b) {
			return true
		}
	}
	return false
}

func sortProducts(ps []Product, order SortOrder) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Price < ps[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Price > ps[j].Price
		})
	case SortRating:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Rating > ps[j].Rating
		})
	}
}

func paginate(matched []Product, f FilterState) BrowseResult {
	res := BrowseResult{
		Total:   len(matched),
		Page:    f.Page,
		PerPage: f.PerPage,
	}

	if f.ShowAll {
		res.Items = matched
		res.Page = 1
		res.PerPage = len(matched)
		res.TotalPages = 1
		return res
	}

	res.TotalPages = (len(matched) + f.PerPage - 1) / f.PerPage

	lo := (f.Page - 1) * f.PerPage
	if lo >= len(matched) {
		res.Items = []Product{}
		return res
	}
	hi := lo + f.PerPage
	if hi > len(matched) {
		hi = len(matched)
	}
	res.Items = matched[lo:hi]
	return res
}
