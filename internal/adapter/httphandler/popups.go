package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/popups (200 OK)
// PUT v1/popups JSON {"cart" bool, "wishlist" bool} both optional (200 OK, 400 Bad request)

type PopupsHandler struct {
	popups port.PopupSwitcher
}

func RegisterPopups(mux *http.ServeMux, popups port.PopupSwitcher) {
	h := PopupsHandler{popups}
	mux.HandleFunc("GET /v1/popups", h.GetPopups)
	mux.HandleFunc("PUT /v1/popups", h.PutPopups)
}

func (h PopupsHandler) GetPopups(w http.ResponseWriter, _ *http.Request) {
	cart, wishlist := h.popups.Popups()
	writeJSON(w, http.StatusOK, Popups{Cart: cart, Wishlist: wishlist})
}

// PutPopups sets only the flags present in the body. The flags are
// independent, setting one never touches the other.
func (h PopupsHandler) PutPopups(w http.ResponseWriter, r *http.Request) {
	const op = "PopupsHandler.PutPopups"
	log := slog.With("op", op)

	var body struct {
		Cart     *bool `json:"cart"`
		Wishlist *bool `json:"wishlist"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if body.Cart != nil {
		h.popups.SetCartPopup(*body.Cart)
	}
	if body.Wishlist != nil {
		h.popups.SetWishlistPopup(*body.Wishlist)
	}

	cart, wishlist := h.popups.Popups()
	writeJSON(w, http.StatusOK, Popups{Cart: cart, Wishlist: wishlist})
}
