package domain

import (
	"math"
	"strings"
)

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

var shippingFees = map[ShippingMethod]float64{
	ShippingStandard: 50,
	ShippingExpress:  100,
}

// couponRates holds the recognized coupon codes.
// An unknown code yields a zero rate, not an error.
var couponRates = map[string]float64{
	"SAVE10": 0.10,
	"SAVE20": 0.20,
}

// A Quote is the derived pricing of a cart snapshot,
// recomputed on every read.
type Quote struct {
	Subtotal   float64
	CouponRate float64
	Discount   float64
	Shipping   float64
	Total      float64
}

// CouponRate resolves a coupon code case-insensitively.
// The second value reports whether the code is recognized.
func CouponRate(code string) (float64, bool) {
	rate, ok := couponRates[strings.ToUpper(strings.TrimSpace(code))]
	return rate, ok
}

// ShippingFee resolves the flat fee for the method.
// An unknown method falls back to standard shipping.
func ShippingFee(m ShippingMethod) float64 {
	fee, ok := shippingFees[m]
	if !ok {
		return shippingFees[ShippingStandard]
	}
	return fee
}

// PriceCart derives the quote for the cart:
// subtotal, coupon discount, flat shipping fee and total,
// each rounded to two decimals.
func PriceCart(c Cart, couponCode string, m ShippingMethod) Quote {
	var subtotal float64
	for _, l := range c.Lines {
		subtotal += l.Product.Price * float64(l.Quantity)
	}

	rate, _ := CouponRate(couponCode)
	discount := subtotal * rate
	shipping := ShippingFee(m)

	return Quote{
		Subtotal:   Round2(subtotal),
		CouponRate: rate,
		Discount:   Round2(discount),
		Shipping:   shipping,
		Total:      Round2(subtotal - discount + shipping),
	}
}

// Round2 rounds to two decimals for display amounts.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
