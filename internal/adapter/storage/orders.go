package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.OrdersStorage = (*OrdersRepository)(nil)

type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

func (r OrdersRepository) StoreOrder(
	ctx context.Context, v domain.Order,
) error {
	const op = "OrdersRepository.StoreOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO orders (
			order_id, lines, subtotal, discount, shipping, total,
			name, email, phone, address, city, postal_code,
			shipping_method, coupon_code, placed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (order_id) DO NOTHING;
	`

	linesB, err := json.Marshal(v.Lines)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err = r.sqldb.ExecContext(ctx, query,
		v.ID, string(linesB), v.Subtotal, v.Discount, v.Shipping, v.Total,
		v.Name, v.Email, v.Phone, v.Address, v.City, v.PostalCode,
		string(v.Method), v.CouponCode, v.PlacedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}

func (r OrdersRepository) ReadOrder(
	ctx context.Context, id string,
) (domain.Order, error) {
	const op = "OrdersRepository.ReadOrder"

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			order_id, lines, subtotal, discount, shipping, total,
			name, email, phone, address, city, postal_code,
			shipping_method, coupon_code, placed_at
		FROM orders
		WHERE order_id = $1;`

	var v domain.Order
	var linesS string
	var methodS string
	err := r.sqldb.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &linesS, &v.Subtotal, &v.Discount, &v.Shipping, &v.Total,
		&v.Name, &v.Email, &v.Phone, &v.Address, &v.City, &v.PostalCode,
		&methodS, &v.CouponCode, &v.PlacedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	v.Method = domain.ShippingMethod(methodS)

	if err := json.Unmarshal([]byte(linesS), &v.Lines); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}
