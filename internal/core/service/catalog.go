package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.ProductsBrowser = (*CatalogService)(nil)

// A CatalogService owns the in-memory catalog snapshot and feeds it
// through the derivation pipeline. A failed refresh preserves the
// previous snapshot and leaves an error flag for readers; recovery
// is a manual Refresh retry, never automatic.
type CatalogService struct {
	mu         sync.Mutex
	provider   port.CatalogProvider
	products   []domain.Product
	categories []string
	synced     bool
	lastErr    error
}

func NewCatalogService(provider port.CatalogProvider) *CatalogService {
	return &CatalogService{provider: provider}
}

// Refresh fetches the remote catalog once. Concurrent refreshes are
// not deduplicated, each resolves independently.
func (s *CatalogService) Refresh(ctx context.Context) error {
	const op = "CatalogService.Refresh"

	products, err := s.provider.FetchProducts(ctx)
	if err != nil {
		err = fmt.Errorf("%s: %w", op, err)
		s.setErr(err)
		return err
	}

	categories, err := s.provider.FetchCategories(ctx)
	if err != nil {
		err = fmt.Errorf("%s: %w", op, err)
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.categories = normalizeCategories(categories)
	s.synced = true
	s.lastErr = nil
	return nil
}

// Browse derives the listing for the criteria. The error reports the
// degraded state after a failed refresh; the result still carries
// the last good snapshot.
func (s *CatalogService) Browse(f domain.FilterState) (domain.BrowseResult, error) {
	s.mu.Lock()
	products := s.products
	err := s.flagErr()
	s.mu.Unlock()

	return domain.Derive(products, f), err
}

func (s *CatalogService) Product(id int) (domain.Product, error) {
	const op = "CatalogService.Product"

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: product %d: %w",
		op, id, domain.ErrNotFound)
}

func (s *CatalogService) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categories
}

func (s *CatalogService) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
}

// flagErr reports the surfaced slice error, callers hold the lock.
func (s *CatalogService) flagErr() error {
	if s.lastErr != nil {
		return s.lastErr
	}
	if !s.synced {
		return domain.ErrCatalogNotSync
	}
	return nil
}

func normalizeCategories(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	var out []string
	for _, c := range raw {
		n := domain.NormalizeCategory(c)
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
