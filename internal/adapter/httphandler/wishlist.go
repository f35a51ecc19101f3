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

// GET v1/wishlist (200 OK)
// POST v1/wishlist/toggle JSON {"product_id" int} (200 OK, 400 Bad request, 404 Not found)
// DELETE v1/wishlist/{id} (200 OK)
// DELETE v1/wishlist (204 No content)

type WishlistHandler struct {
	wishlist port.WishlistManager
}

func RegisterWishlist(mux *http.ServeMux, wishlist port.WishlistManager) {
	h := WishlistHandler{wishlist}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("POST /v1/wishlist/toggle", h.PostToggle)
	mux.HandleFunc("DELETE /v1/wishlist/{id}", h.DeleteEntry)
	mux.HandleFunc("DELETE /v1/wishlist", h.DeleteWishlist)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.toView(h.wishlist.Wishlist()))
}

func (h WishlistHandler) PostToggle(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.PostToggle"
	log := slog.With("op", op)

	var body struct {
		ProductID int `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	wl, err := h.wishlist.Toggle(body.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to toggle wishlist", http.StatusInternalServerError)
		log.Error("failed to toggle wishlist", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, h.toView(wl))
}

func (h WishlistHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.toView(h.wishlist.Remove(id)))
}

func (h WishlistHandler) DeleteWishlist(w http.ResponseWriter, _ *http.Request) {
	h.wishlist.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (WishlistHandler) toView(wl domain.Wishlist) WishlistView {
	return WishlistView{Entries: toProductViews(wl.Entries)}
}
