package service

import (
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const cartBlobKey = "cart"

var _ port.CartManager = (*CartService)(nil)

// A CartService owns the cart slice. State transitions are pure
// [domain.Cart] snapshots, the persistence mirror is written as a
// separate step after each commit.
type CartService struct {
	mu       sync.Mutex
	cart     domain.Cart
	blobs    port.BlobStore
	products port.ProductGetter
}

// NewCartService restores the cart from the blob store. A missing or
// malformed blob yields an empty cart, never an error.
func NewCartService(blobs port.BlobStore, products port.ProductGetter) *CartService {
	s := &CartService{blobs: blobs, products: products}
	var lines []domain.CartLine
	loadBlob(blobs, cartBlobKey, &lines)
	s.cart = domain.Cart{Lines: lines}
	return s
}

// Add resolves the product id against the catalog and merges it into
// the cart. Adding a present id increments its line quantity.
func (s *CartService) Add(productID, qty int) (domain.Cart, error) {
	const op = "CartService.Add"

	p, err := s.products.Product(productID)
	if err != nil {
		return s.Cart(), fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = s.cart.Add(p, qty)
	s.persist()
	return s.cart, nil
}

// UpdateQuantity sets the line quantity verbatim.
func (s *CartService) UpdateQuantity(id, qty int) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = s.cart.UpdateQuantity(id, qty)
	s.persist()
	return s.cart
}

func (s *CartService) Remove(id int) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = s.cart.Remove(id)
	s.persist()
	return s.cart
}

// Clear empties the cart and deletes the persisted blob entirely.
func (s *CartService) Clear() domain.Cart {
	const op = "CartService.Clear"

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = domain.Cart{}
	deleteBlob(s.blobs, cartBlobKey, op)
	return s.cart
}

// Set replaces the whole line list, mirroring it to the blob store.
func (s *CartService) Set(lines []domain.CartLine) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = s.cart.Set(lines)
	s.persist()
	return s.cart
}

func (s *CartService) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Quote derives the pricing of the current cart snapshot.
func (s *CartService) Quote(couponCode string, m domain.ShippingMethod) domain.Quote {
	return domain.PriceCart(s.Cart(), couponCode, m)
}

// persist mirrors the cart lines, callers hold the lock.
func (s *CartService) persist() {
	const op = "CartService.persist"
	storeBlob(s.blobs, cartBlobKey, s.cart.Lines, op)
}
