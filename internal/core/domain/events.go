package domain

import "time"

// A ProductViewEvent is emitted each time a product detail is read.
type ProductViewEvent struct {
	ProductID int
	Title     string
	Category  string
	Brand     string
	Price     float64
	ViewedAt  time.Time
}
