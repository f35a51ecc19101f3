package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/products?q=&category=&price_min=&price_max=&brands=&in_stock=&out_of_stock=&min_rating=&sort=&page=&per_page=&show_all= (200 OK)
// GET v1/products/{id} (200 OK, 404 Not found)
// GET v1/categories (200 OK)
// GET v1/recently-viewed (200 OK)
// POST v1/catalog/refresh (204 No content, 502 Bad gateway)

type ProductsHandler struct {
	browser port.ProductsBrowser
	viewer  port.ProductViewer
}

func RegisterProducts(
	mux *http.ServeMux,
	browser port.ProductsBrowser,
	viewer port.ProductViewer,
) {
	h := ProductsHandler{browser, viewer}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/recently-viewed", h.GetRecentlyViewed)
	mux.HandleFunc("POST /v1/catalog/refresh", h.PostRefresh)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	res, err := h.browser.Browse(filterFromQuery(r))

	view := BrowseView{
		Items:      toProductViews(res.Items),
		Total:      res.Total,
		Page:       res.Page,
		PerPage:    res.PerPage,
		TotalPages: res.TotalPages,
	}
	if err != nil {
		// degraded view: last good snapshot plus the error flag
		view.Degraded = "catalog fetch failed, data may be stale"
	}
	writeJSON(w, http.StatusOK, view)
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"
	log := slog.With("op", op)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.viewer.ViewProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to read product", http.StatusInternalServerError)
		log.Error("failed to view product", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProductView(p))
}

func (h ProductsHandler) GetCategories(w http.ResponseWriter, _ *http.Request) {
	cs := h.browser.Categories()
	if cs == nil {
		cs = []string{}
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h ProductsHandler) GetRecentlyViewed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toProductViews(h.viewer.RecentlyViewed()))
}

func (h ProductsHandler) PostRefresh(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.PostRefresh"
	log := slog.With("op", op)

	if err := h.browser.Refresh(r.Context()); err != nil {
		http.Error(w, "catalog is unavailable", http.StatusBadGateway)
		log.Error("failed to refresh catalog", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// filterFromQuery builds the criteria from the listing query params.
// The page param is applied last: criterion setters reset the page
// and an explicit page must survive only on its own.
func filterFromQuery(r *http.Request) domain.FilterState {
	q := r.URL.Query()
	f := domain.NewFilterState()

	if v := q.Get("q"); v != "" {
		f = f.WithQuery(v)
	}
	if v := q.Get("category"); v != "" {
		f = f.WithCategory(v)
	}
	if q.Has("price_min") || q.Has("price_max") {
		min := floatParam(q.Get("price_min"), domain.PriceFloor)
		max := floatParam(q.Get("price_max"), domain.PriceCeil)
		f = f.WithPriceRange(min, max)
	}
	if v := q.Get("brands"); v != "" {
		f = f.WithBrands(strings.Split(v, ","))
	}
	if q.Has("in_stock") || q.Has("out_of_stock") {
		f = f.WithStockStatus(
			boolParam(q.Get("in_stock")),
			boolParam(q.Get("out_of_stock")),
		)
	}
	if v := q.Get("min_rating"); v != "" {
		f = f.WithMinRating(intParam(v, 0))
	}
	if v := q.Get("sort"); v != "" {
		f = f.WithSort(domain.SortOrder(v))
	}
	if v := q.Get("per_page"); v != "" {
		f = f.WithPerPage(intParam(v, domain.DefaultPerPage))
	}
	if boolParam(q.Get("show_all")) {
		f = f.WithShowAll(true)
	}
	if v := q.Get("page"); v != "" {
		f = f.WithPage(intParam(v, 1))
	}
	return f
}

func intParam(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func floatParam(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func boolParam(s string) bool {
	v, err := strconv.ParseBool(s)
	return err == nil && v
}
