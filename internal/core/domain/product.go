package domain

import "strings"

type Product struct {
	ID              int
	Title           string
	Description     string
	Price           float64
	OriginalPrice   float64
	DiscountPercent float64
	Category        string
	Brand           string
	Images          []string
	Rating          float64
	InStock         bool
	StockQuantity   int
}

// Categories is the closed set a remote category value is normalized into.
var Categories = []string{
	"electronics",
	"jewelery",
	"men's clothing",
	"women's clothing",
	"accessories",
}

// NormalizeCategory maps a raw remote category value into the closed
// category set. Unrecognized values fall into "accessories".
func NormalizeCategory(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, c := range Categories {
		if v == c {
			return c
		}
	}
	switch {
	case strings.Contains(v, "electronic") || strings.Contains(v, "laptop") ||
		strings.Contains(v, "smartphone") || strings.Contains(v, "tablet"):
		return "electronics"
	case strings.Contains(v, "jewel"):
		return "jewelery"
	case strings.Contains(v, "men") && !strings.Contains(v, "women"):
		return "men's clothing"
	case strings.Contains(v, "women") || strings.Contains(v, "dress") ||
		strings.Contains(v, "tops"):
		return "women's clothing"
	}
	return "accessories"
}
