// Package catalog is the read-only client of the third-party product
// API. It normalizes the heterogeneous response shapes into the
// canonical [domain.Product] and freezes the simulated fields the
// remote side does not supply.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const defaultTimeout = 10 * time.Second

var _ port.CatalogProvider = (*Client)(nil)

type Client struct {
	httpClient *http.Client
	baseURL    string

	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates the catalog client. The seed makes the simulated
// product fields reproducible.
func New(baseURL string, seed uint64) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		rnd:        rand.New(rand.NewPCG(seed, seed)),
	}
}

// FetchProducts issues one GET to the products collection. There is
// no retry and no deduplication of concurrent fetches, each call
// resolves independently.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "catalog.Client.FetchProducts"

	body, err := c.get(ctx, "/products")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	raws, err := decodeProducts(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	ps := make([]domain.Product, 0, len(raws))
	for _, r := range raws {
		ps = append(ps, c.normalize(r))
	}
	return ps, nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	const op = "catalog.Client.FetchCategories"

	body, err := c.get(ctx, "/products/categories")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs, err := decodeCategories(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+path, nil,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}

	return io.ReadAll(res.Body)
}

// rawProduct covers the field-name differences between the supported
// catalog endpoints: image vs images, plain rating vs rating.rate,
// optional discount and stock.
type rawProduct struct {
	ID                 int             `json:"id"`
	Title              string          `json:"title"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              float64         `json:"price"`
	DiscountPercentage float64         `json:"discountPercentage"`
	Category           string          `json:"category"`
	Brand              string          `json:"brand"`
	Image              string          `json:"image"`
	Images             []string        `json:"images"`
	Rating             json.RawMessage `json:"rating"`
	Stock              *int            `json:"stock"`
}

type ratingObject struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// decodeProducts accepts both a bare JSON array and a
// {"products": [...]} wrapper object.
func decodeProducts(body []byte) ([]rawProduct, error) {
	var raws []rawProduct
	if err := json.Unmarshal(body, &raws); err == nil {
		return raws, nil
	}

	var wrapped struct {
		Products []rawProduct `json:"products"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Products, nil
}

// decodeCategories accepts both ["a","b"] and [{"name":"a"},...].
func decodeCategories(body []byte) ([]string, error) {
	var plain []string
	if err := json.Unmarshal(body, &plain); err == nil {
		return plain, nil
	}

	var objs []struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(body, &objs); err != nil {
		return nil, err
	}
	cs := make([]string, 0, len(objs))
	for _, o := range objs {
		if o.Name != "" {
			cs = append(cs, o.Name)
			continue
		}
		cs = append(cs, o.Slug)
	}
	return cs, nil
}

// normalize builds the canonical product. Simulated fields are
// assigned here exactly once; later reads never re-roll them.
func (c *Client) normalize(r rawProduct) domain.Product {
	p := domain.Product{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Price:       domain.Round2(r.Price),
		Category:    domain.NormalizeCategory(r.Category),
		Brand:       r.Brand,
	}

	if p.Title == "" {
		p.Title = r.Name
	}

	if len(r.Images) > 0 {
		p.Images = r.Images
	} else if r.Image != "" {
		p.Images = []string{r.Image}
	}

	p.Rating = c.normalizeRating(r.Rating)
	p.DiscountPercent, p.OriginalPrice = c.normalizeDiscount(
		r.DiscountPercentage, p.Price,
	)
	p.StockQuantity, p.InStock = c.normalizeStock(r.Stock)
	return p
}

func (c *Client) normalizeRating(raw json.RawMessage) float64 {
	if len(raw) > 0 {
		var num float64
		if err := json.Unmarshal(raw, &num); err == nil {
			return clampRating(num)
		}
		var obj ratingObject
		if err := json.Unmarshal(raw, &obj); err == nil {
			return clampRating(obj.Rate)
		}
	}
	// simulated rating between 3.0 and 5.0
	return domain.Round2(3 + c.rnd.Float64()*2)
}

func (c *Client) normalizeDiscount(
	discount, price float64,
) (percent, original float64) {
	if discount <= 0 {
		// simulated discount up to 30%
		discount = float64(c.rnd.IntN(31))
	}
	if discount >= 100 {
		discount = 0
	}

	original = price
	if discount > 0 {
		original = domain.Round2(price / (1 - discount/100))
	}
	return discount, original
}

func (c *Client) normalizeStock(stock *int) (qty int, inStock bool) {
	if stock != nil {
		if *stock < 0 {
			return 0, false
		}
		return *stock, *stock > 0
	}
	// simulated stock, roughly one of ten products is sold out
	if c.rnd.IntN(10) == 0 {
		return 0, false
	}
	return 1 + c.rnd.IntN(50), true
}

func clampRating(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
