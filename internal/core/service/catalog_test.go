package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogProvider struct {
	mock.Mock
}

func (m *MockCatalogProvider) FetchProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockCatalogProvider) FetchCategories(
	ctx context.Context,
) ([]string, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]string)
	return cs, args.Error(1)
}

func TestCatalogService(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Title: "testProductA", Price: 10},
		{ID: 2, Title: "testProductB", Price: 20},
	}

	t.Run("NotSyncBeforeFirstRefresh", func(t *testing.T) {
		s := service.NewCatalogService(new(MockCatalogProvider))

		res, err := s.Browse(domain.NewFilterState())
		assert.ErrorIs(t, err, domain.ErrCatalogNotSync)
		assert.Empty(t, res.Items)
	})

	t.Run("RefreshFillsSnapshot", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		provider.On("FetchProducts", t.Context()).Return(products, nil)
		provider.On("FetchCategories", t.Context()).
			Return([]string{"electronics", "Electronics", "laptops"}, nil)

		s := service.NewCatalogService(provider)
		require.NoError(t, s.Refresh(t.Context()))

		res, err := s.Browse(domain.NewFilterState())
		require.NoError(t, err)
		assert.Len(t, res.Items, 2)

		// duplicates collapse after normalization
		assert.Equal(t, []string{"electronics"}, s.Categories())
	})

	t.Run("FailedRefreshPreservesSnapshot", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		provider.On("FetchProducts", t.Context()).Return(products, nil).Once()
		provider.On("FetchCategories", t.Context()).
			Return([]string{"electronics"}, nil).Once()

		s := service.NewCatalogService(provider)
		require.NoError(t, s.Refresh(t.Context()))

		fetchErr := errors.New("connection refused")
		provider.On("FetchProducts", t.Context()).Return(nil, fetchErr)

		err := s.Refresh(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, fetchErr)

		// previous products still served, with the error flag
		res, err := s.Browse(domain.NewFilterState())
		assert.ErrorIs(t, err, fetchErr)
		assert.Len(t, res.Items, 2)
	})

	t.Run("ManualRetryClearsErrorFlag", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		fetchErr := errors.New("timeout")
		provider.On("FetchProducts", t.Context()).Return(nil, fetchErr).Once()

		s := service.NewCatalogService(provider)
		require.Error(t, s.Refresh(t.Context()))

		provider.On("FetchProducts", t.Context()).Return(products, nil)
		provider.On("FetchCategories", t.Context()).
			Return([]string{"electronics"}, nil)
		require.NoError(t, s.Refresh(t.Context()))

		_, err := s.Browse(domain.NewFilterState())
		assert.NoError(t, err)
	})

	t.Run("ProductByID", func(t *testing.T) {
		provider := new(MockCatalogProvider)
		provider.On("FetchProducts", t.Context()).Return(products, nil)
		provider.On("FetchCategories", t.Context()).
			Return([]string{"electronics"}, nil)

		s := service.NewCatalogService(provider)
		require.NoError(t, s.Refresh(t.Context()))

		p, err := s.Product(2)
		require.NoError(t, err)
		assert.Equal(t, "testProductB", p.Title)

		_, err = s.Product(99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
