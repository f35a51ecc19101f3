package httphandler

import (
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
)

type (
	Product struct {
		ID              int      `json:"id"`
		Title           string   `json:"title"`
		Description     string   `json:"description"`
		Price           float64  `json:"price"`
		OriginalPrice   float64  `json:"original_price"`
		DiscountPercent float64  `json:"discount_percent"`
		Category        string   `json:"category"`
		Brand           string   `json:"brand"`
		Images          []string `json:"images"`
		Rating          float64  `json:"rating"`
		InStock         bool     `json:"in_stock"`
		StockQuantity   int      `json:"stock_quantity"`
	}

	CartLine struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	Quote struct {
		Subtotal   float64 `json:"subtotal"`
		CouponRate float64 `json:"coupon_rate"`
		Discount   float64 `json:"discount"`
		Shipping   float64 `json:"shipping"`
		Total      float64 `json:"total"`
	}

	CartView struct {
		Lines         []CartLine `json:"lines"`
		TotalQuantity int        `json:"total_quantity"`
		Quote         Quote      `json:"quote"`
	}

	WishlistView struct {
		Entries []Product `json:"entries"`
	}

	BrowseView struct {
		Items      []Product `json:"items"`
		Total      int       `json:"total"`
		Page       int       `json:"page"`
		PerPage    int       `json:"per_page"`
		TotalPages int       `json:"total_pages"`
		Degraded   string    `json:"degraded,omitempty"`
	}

	CheckoutForm struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		Address    string `json:"address"`
		City       string `json:"city"`
		PostalCode string `json:"postal_code"`
		Shipping   string `json:"shipping_method"`
		CouponCode string `json:"coupon_code"`
	}

	Order struct {
		ID         string     `json:"id"`
		Lines      []CartLine `json:"lines"`
		Subtotal   float64    `json:"subtotal"`
		Discount   float64    `json:"discount"`
		Shipping   float64    `json:"shipping"`
		Total      float64    `json:"total"`
		Name       string     `json:"name"`
		Email      string     `json:"email"`
		Method     string     `json:"shipping_method"`
		PlacedAt   time.Time  `json:"placed_at"`
	}

	Popups struct {
		Cart     bool `json:"cart"`
		Wishlist bool `json:"wishlist"`
	}
)

func toProductView(p domain.Product) Product {
	return Product{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		DiscountPercent: p.DiscountPercent,
		Category:        p.Category,
		Brand:           p.Brand,
		Images:          p.Images,
		Rating:          p.Rating,
		InStock:         p.InStock,
		StockQuantity:   p.StockQuantity,
	}
}

func toProductViews(ps []domain.Product) []Product {
	views := make([]Product, len(ps))
	for i, p := range ps {
		views[i] = toProductView(p)
	}
	return views
}

func toCartView(c domain.Cart, q domain.Quote) CartView {
	lines := make([]CartLine, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = CartLine{
			Product:  toProductView(l.Product),
			Quantity: l.Quantity,
		}
	}
	return CartView{
		Lines:         lines,
		TotalQuantity: c.TotalQuantity(),
		Quote:         toQuoteView(q),
	}
}

func toQuoteView(q domain.Quote) Quote {
	return Quote{
		Subtotal:   q.Subtotal,
		CouponRate: q.CouponRate,
		Discount:   q.Discount,
		Shipping:   q.Shipping,
		Total:      q.Total,
	}
}

func toOrderView(v domain.Order) Order {
	lines := make([]CartLine, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = CartLine{
			Product:  toProductView(l.Product),
			Quantity: l.Quantity,
		}
	}
	return Order{
		ID:       v.ID,
		Lines:    lines,
		Subtotal: v.Subtotal,
		Discount: v.Discount,
		Shipping: v.Shipping,
		Total:    v.Total,
		Name:     v.Name,
		Email:    v.Email,
		Method:   string(v.Method),
		PlacedAt: v.PlacedAt,
	}
}
