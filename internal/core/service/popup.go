package service

import (
	"sync"

	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.PopupSwitcher = (*PopupService)(nil)

// A PopupService owns the two drawer visibility flags. The flags are
// independent: any mutual exclusion visible in a client is its own
// convention, not enforced here.
type PopupService struct {
	mu       sync.Mutex
	cart     bool
	wishlist bool
}

func NewPopupService() *PopupService {
	return &PopupService{}
}

func (s *PopupService) SetCartPopup(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = visible
}

func (s *PopupService) SetWishlistPopup(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist = visible
}

func (s *PopupService) Popups() (cart, wishlist bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart, s.wishlist
}
