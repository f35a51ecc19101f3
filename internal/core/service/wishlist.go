package service

import (
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const wishlistBlobKey = "wishlist"

var _ port.WishlistManager = (*WishlistService)(nil)

// A WishlistService owns the wishlist slice. The set semantics live
// in [domain.Wishlist] itself, so duplicate entries cannot appear
// regardless of the caller.
type WishlistService struct {
	mu       sync.Mutex
	wishlist domain.Wishlist
	blobs    port.BlobStore
	products port.ProductGetter
}

func NewWishlistService(blobs port.BlobStore, products port.ProductGetter) *WishlistService {
	s := &WishlistService{blobs: blobs, products: products}
	var entries []domain.Product
	loadBlob(blobs, wishlistBlobKey, &entries)
	s.wishlist = domain.Wishlist{Entries: entries}
	return s
}

// Toggle adds the product when absent and removes it when present.
func (s *WishlistService) Toggle(productID int) (domain.Wishlist, error) {
	const op = "WishlistService.Toggle"

	p, err := s.products.Product(productID)
	if err != nil {
		return s.Wishlist(), fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist = s.wishlist.Toggle(p)
	s.persist()
	return s.wishlist, nil
}

func (s *WishlistService) Remove(id int) domain.Wishlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist = s.wishlist.Remove(id)
	s.persist()
	return s.wishlist
}

func (s *WishlistService) Clear() domain.Wishlist {
	const op = "WishlistService.Clear"

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist = domain.Wishlist{}
	deleteBlob(s.blobs, wishlistBlobKey, op)
	return s.wishlist
}

func (s *WishlistService) Wishlist() domain.Wishlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist
}

func (s *WishlistService) persist() {
	const op = "WishlistService.persist"
	storeBlob(s.blobs, wishlistBlobKey, s.wishlist.Entries, op)
}
