package domain_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentlyViewed(t *testing.T) {
	t.Run("MostRecentFirst", func(t *testing.T) {
		r := domain.RecentlyViewed{}
		r = r.Record(domain.Product{ID: 1})
		r = r.Record(domain.Product{ID: 2})

		require.Len(t, r.Products, 2)
		assert.Equal(t, 2, r.Products[0].ID)
	})

	t.Run("RepeatedViewMovesToFront", func(t *testing.T) {
		r := domain.RecentlyViewed{}
		r = r.Record(domain.Product{ID: 1})
		r = r.Record(domain.Product{ID: 2})
		r = r.Record(domain.Product{ID: 1})

		require.Len(t, r.Products, 2)
		assert.Equal(t, 1, r.Products[0].ID)
		assert.Equal(t, 2, r.Products[1].ID)
	})

	t.Run("CappedAtLimit", func(t *testing.T) {
		r := domain.RecentlyViewed{}
		for i := 1; i <= domain.RecentlyViewedLimit+3; i++ {
			r = r.Record(domain.Product{ID: i})
		}

		require.Len(t, r.Products, domain.RecentlyViewedLimit)
		assert.Equal(t, domain.RecentlyViewedLimit+3, r.Products[0].ID)
	})
}
