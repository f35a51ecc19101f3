package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const recentBlobKey = "recentlyViewed"

var _ port.ProductViewer = (*RecentService)(nil)

// A RecentService owns the recently viewed slice and emits one view
// event per recorded read. Event emission is best effort: a broker
// failure is logged and never blocks the product read.
type RecentService struct {
	mu       sync.Mutex
	recent   domain.RecentlyViewed
	blobs    port.BlobStore
	products port.ProductGetter
	events   port.ViewEventsProducer
	now      func() time.Time
}

func NewRecentService(
	blobs port.BlobStore,
	products port.ProductGetter,
	events port.ViewEventsProducer,
) *RecentService {
	s := &RecentService{
		blobs:    blobs,
		products: products,
		events:   events,
		now:      time.Now,
	}
	var ps []domain.Product
	loadBlob(blobs, recentBlobKey, &ps)
	s.recent = domain.RecentlyViewed{Products: ps}
	return s
}

// ViewProduct reads the product detail, moves it to the front of the
// recently viewed list and emits the view event.
func (s *RecentService) ViewProduct(
	ctx context.Context, id int,
) (domain.Product, error) {
	const op = "RecentService.ViewProduct"

	p, err := s.products.Product(id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.recent = s.recent.Record(p)
	s.persist()
	s.mu.Unlock()

	s.emit(ctx, p)
	return p, nil
}

func (s *RecentService) RecentlyViewed() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recent.Products
}

func (s *RecentService) emit(ctx context.Context, p domain.Product) {
	const op = "RecentService.emit"

	evt := domain.ProductViewEvent{
		ProductID: p.ID,
		Title:     p.Title,
		Category:  p.Category,
		Brand:     p.Brand,
		Price:     p.Price,
		ViewedAt:  s.now(),
	}
	if err := s.events.ProduceView(ctx, evt); err != nil {
		slog.Error("failed to produce view event",
			"op", op, "productID", p.ID, "err", err)
	}
}

func (s *RecentService) persist() {
	const op = "RecentService.persist"
	storeBlob(s.blobs, recentBlobKey, s.recent.Products, op)
}
