package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrCatalogNotSync = errors.New("catalog is not synchronized")
	ErrEmptyCart      = errors.New("cart is empty")
)
