package domain

import "time"

// An Order is the frozen snapshot taken at checkout completion:
// the cart lines plus the quote priced at that moment.
type Order struct {
	ID         string
	Lines      []CartLine
	Subtotal   float64
	Discount   float64
	Shipping   float64
	Total      float64
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Method     ShippingMethod
	CouponCode string
	PlacedAt   time.Time
}

// NewOrder snapshots the cart and its quote under the customer data
// from the validated form.
func NewOrder(id string, c Cart, q Quote, f CheckoutForm, placedAt time.Time) Order {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)

	method := f.Shipping
	if _, ok := shippingFees[method]; !ok {
		method = ShippingStandard
	}

	return Order{
		ID:         id,
		Lines:      lines,
		Subtotal:   q.Subtotal,
		Discount:   q.Discount,
		Shipping:   q.Shipping,
		Total:      q.Total,
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Address:    f.Address,
		City:       f.City,
		PostalCode: f.PostalCode,
		Method:     method,
		CouponCode: f.CouponCode,
		PlacedAt:   placedAt,
	}
}
