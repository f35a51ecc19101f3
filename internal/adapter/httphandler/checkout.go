package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// POST v1/checkout JSON CheckoutForm (201 Created, 400 Bad request, 409 Conflict, 422 Unprocessable entity)
// GET v1/orders/{id} (200 OK, 404 Not found)

type CheckoutHandler struct {
	checkout port.CheckoutProcessor
}

func RegisterCheckout(mux *http.ServeMux, checkout port.CheckoutProcessor) {
	h := CheckoutHandler{checkout}
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
	mux.HandleFunc("GET /v1/orders/{id}", h.GetOrder)
}

func (h CheckoutHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostCheckout"
	log := slog.With("op", op)

	var form CheckoutForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	order, err := h.checkout.Checkout(r.Context(), h.toDomain(form))
	if err != nil {
		var formErr *domain.FormError
		switch {
		case errors.As(err, &formErr):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation failed",
				"fields": formErr.Fields,
			})
		case errors.Is(err, domain.ErrEmptyCart):
			http.Error(w, "cart is empty", http.StatusConflict)
		default:
			http.Error(w, "failed to place order", http.StatusInternalServerError)
			log.Error("failed to place order", "err", err)
		}
		return
	}

	log.Info("order placed", "orderID", order.ID, "total", order.Total)
	writeJSON(w, http.StatusCreated, toOrderView(order))
}

func (h CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.GetOrder"
	log := slog.With("op", op)

	order, err := h.checkout.Order(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to read order", http.StatusInternalServerError)
		log.Error("failed to read order", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderView(order))
}

func (CheckoutHandler) toDomain(f CheckoutForm) domain.CheckoutForm {
	return domain.CheckoutForm{
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Address:    f.Address,
		City:       f.City,
		PostalCode: f.PostalCode,
		Shipping:   domain.ShippingMethod(f.Shipping),
		CouponCode: f.CouponCode,
	}
}
