package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CheckoutProcessor = (*CheckoutService)(nil)

// A CheckoutService validates the form, freezes the cart into an
// order snapshot, persists it and empties the cart. Payment itself
// is not processed.
type CheckoutService struct {
	cart   port.CartManager
	orders port.OrdersStorage
	now    func() time.Time
	newID  func() string
}

func NewCheckoutService(cart port.CartManager, orders port.OrdersStorage) *CheckoutService {
	return &CheckoutService{
		cart:   cart,
		orders: orders,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Checkout places the order. A validation failure returns
// [domain.FormError] and leaves the cart untouched.
func (s *CheckoutService) Checkout(
	ctx context.Context, f domain.CheckoutForm,
) (domain.Order, error) {
	const op = "CheckoutService.Checkout"

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if fields := f.Validate(); fields != nil {
		return domain.Order{}, fmt.Errorf("%s: %w",
			op, &domain.FormError{Fields: fields})
	}

	cart := s.cart.Cart()
	if cart.Empty() {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	quote := s.cart.Quote(f.CouponCode, f.Shipping)
	order := domain.NewOrder(s.newID(), cart, quote, f, s.now())

	if err := s.orders.StoreOrder(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cart.Set(nil)
	return order, nil
}

func (s *CheckoutService) Order(
	ctx context.Context, id string,
) (domain.Order, error) {
	const op = "CheckoutService.Order"

	order, err := s.orders.ReadOrder(ctx, id)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}
