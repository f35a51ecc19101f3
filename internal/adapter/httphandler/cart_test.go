package httphandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/blobstore"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProducts map[int]domain.Product

func (s stubProducts) Product(id int) (domain.Product, error) {
	p, ok := s[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func newCartMux(t *testing.T) *http.ServeMux {
	t.Helper()

	blobs, err := blobstore.New(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)

	products := stubProducts{
		1: {ID: 1, Title: "testProductA", Price: 25.00, InStock: true},
		2: {ID: 2, Title: "testProductB", Price: 10.00, InStock: true},
	}

	var cart port.CartManager = service.NewCartService(blobs, products)

	mux := http.NewServeMux()
	httphandler.RegisterCart(mux, cart)
	return mux
}

func doJSON(
	t *testing.T, mux *http.ServeMux, method, target, body string,
) (*httptest.ResponseRecorder, httphandler.CartView) {
	t.Helper()

	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	var view httphandler.CartView
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	}
	return w, view
}

func TestCartHandler(t *testing.T) {
	t.Run("AddMergesSameProduct", func(t *testing.T) {
		mux := newCartMux(t)

		w, _ := doJSON(t, mux, http.MethodPost, "/v1/cart/items",
			`{"product_id": 1, "quantity": 2}`)
		require.Equal(t, http.StatusOK, w.Code)

		w, view := doJSON(t, mux, http.MethodPost, "/v1/cart/items",
			`{"product_id": 1, "quantity": 3}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 5, view.Lines[0].Quantity)
		assert.Equal(t, 5, view.TotalQuantity)
	})

	t.Run("DefaultQuantityIsOne", func(t *testing.T) {
		mux := newCartMux(t)

		w, view := doJSON(t, mux, http.MethodPost, "/v1/cart/items",
			`{"product_id": 2}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 1, view.Lines[0].Quantity)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		mux := newCartMux(t)

		w, _ := doJSON(t, mux, http.MethodPost, "/v1/cart/items",
			`{"product_id": 99}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("QuoteWithCouponAndShipping", func(t *testing.T) {
		mux := newCartMux(t)

		w, _ := doJSON(t, mux, http.MethodPost, "/v1/cart/items",
			`{"product_id": 1, "quantity": 1}`)
		require.Equal(t, http.StatusOK, w.Code)

		w, view := doJSON(t, mux, http.MethodGet,
			"/v1/cart?coupon=SAVE10&shipping=standard", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.InDelta(t, 25.00, view.Quote.Subtotal, 1e-9)
		assert.InDelta(t, 2.50, view.Quote.Discount, 1e-9)
		assert.InDelta(t, 50.00, view.Quote.Shipping, 1e-9)
		assert.InDelta(t, 72.50, view.Quote.Total, 1e-9)
	})

	t.Run("PatchBelowOneRemovesLine", func(t *testing.T) {
		mux := newCartMux(t)

		w, _ := doJSON(t, mux, http.MethodPost, "/v1/cart/items",
			`{"product_id": 1, "quantity": 2}`)
		require.Equal(t, http.StatusOK, w.Code)

		w, view := doJSON(t, mux, http.MethodPatch, "/v1/cart/items/1",
			`{"quantity": 0}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, view.Lines)
	})

	t.Run("PatchSetsQuantityVerbatim", func(t *testing.T) {
		mux := newCartMux(t)

		w, _ := doJSON(t, mux, http.MethodPost, "/v1/cart/items",
			`{"product_id": 1, "quantity": 2}`)
		require.Equal(t, http.StatusOK, w.Code)

		w, view := doJSON(t, mux, http.MethodPatch, "/v1/cart/items/1",
			`{"quantity": 7}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 7, view.Lines[0].Quantity)
	})

	t.Run("DeleteItemIsIdempotent", func(t *testing.T) {
		mux := newCartMux(t)

		w, view := doJSON(t, mux, http.MethodDelete, "/v1/cart/items/1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, view.Lines)
	})

	t.Run("DeleteCart", func(t *testing.T) {
		mux := newCartMux(t)

		w, _ := doJSON(t, mux, http.MethodPost, "/v1/cart/items",
			`{"product_id": 1, "quantity": 1}`)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = doJSON(t, mux, http.MethodDelete, "/v1/cart", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w, view := doJSON(t, mux, http.MethodGet, "/v1/cart", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, view.Lines)
	})

	t.Run("InvalidJSONBody", func(t *testing.T) {
		mux := newCartMux(t)

		w, _ := doJSON(t, mux, http.MethodPost, "/v1/cart/items", `{broken`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
