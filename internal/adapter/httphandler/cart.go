package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/cart?coupon=&shipping= (200 OK)
// POST v1/cart/items JSON {"product_id" int, "quantity" int} (200 OK, 400 Bad request, 404 Not found)
// PATCH v1/cart/items/{id} JSON {"quantity" int} (200 OK, 400 Bad request)
// DELETE v1/cart/items/{id} (200 OK)
// DELETE v1/cart (204 No content)

type CartHandler struct {
	cart port.CartManager
}

func RegisterCart(mux *http.ServeMux, cart port.CartManager) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PATCH /v1/cart/items/{id}", h.PatchItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	coupon, method := pricingParams(r)
	cart := h.cart.Cart()
	quote := h.cart.Quote(coupon, method)
	writeJSON(w, http.StatusOK, toCartView(cart, quote))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var body struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	cart, err := h.cart.Add(body.ProductID, body.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to add product", http.StatusInternalServerError)
		log.Error("failed to add product", "err", err)
		return
	}

	coupon, method := pricingParams(r)
	writeJSON(w, http.StatusOK, toCartView(cart, h.cart.Quote(coupon, method)))
}

// PatchItem sets the quantity verbatim. A quantity below one means
// removal, the cart slice itself never auto-removes.
func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	var cart domain.Cart
	if body.Quantity < 1 {
		cart = h.cart.Remove(id)
	} else {
		cart = h.cart.UpdateQuantity(id, body.Quantity)
	}

	coupon, method := pricingParams(r)
	writeJSON(w, http.StatusOK, toCartView(cart, h.cart.Quote(coupon, method)))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	cart := h.cart.Remove(id)
	coupon, method := pricingParams(r)
	writeJSON(w, http.StatusOK, toCartView(cart, h.cart.Quote(coupon, method)))
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, _ *http.Request) {
	h.cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func pricingParams(r *http.Request) (coupon string, m domain.ShippingMethod) {
	q := r.URL.Query()
	coupon = q.Get("coupon")
	m = domain.ShippingMethod(q.Get("shipping"))
	if m == "" {
		m = domain.ShippingStandard
	}
	return coupon, m
}
