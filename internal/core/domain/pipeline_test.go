package domain_test

import (
	"fmt"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProducts(n int) []domain.Product {
	ps := make([]domain.Product, 0, n)
	for i := 1; i <= n; i++ {
		ps = append(ps, domain.Product{
			ID:      i,
			Title:   fmt.Sprintf("Product %d", i),
			Price:   float64(i * 10),
			Rating:  float64(i%5) + 0.5,
			Brand:   fmt.Sprintf("brand-%d", i%3),
			InStock: i%4 != 0,
		})
	}
	return ps
}

func TestDerive(t *testing.T) {
	t.Run("NeutralCriteriaFirstPage", func(t *testing.T) {
		products := makeProducts(23)
		res := domain.Derive(products, domain.NewFilterState())

		assert.Equal(t, 23, res.Total)
		assert.Equal(t, 2, res.TotalPages)
		require.Len(t, res.Items, 12)
		assert.Equal(t, 1, res.Items[0].ID)
	})

	t.Run("SecondPageHoldsRemainder", func(t *testing.T) {
		products := makeProducts(23)
		f := domain.NewFilterState().WithPage(2)
		res := domain.Derive(products, f)

		require.Len(t, res.Items, 11)
		assert.Equal(t, 13, res.Items[0].ID)
		assert.Equal(t, 23, res.Items[10].ID)
	})

	t.Run("PageBeyondRangeIsEmpty", func(t *testing.T) {
		products := makeProducts(23)
		f := domain.NewFilterState().WithPage(5)
		res := domain.Derive(products, f)
		assert.Empty(t, res.Items)
		assert.Equal(t, 23, res.Total)
	})

	t.Run("ShowAllSkipsPagination", func(t *testing.T) {
		products := makeProducts(23)
		f := domain.NewFilterState().WithShowAll(true)
		res := domain.Derive(products, f)
		assert.Len(t, res.Items, 23)
		assert.Equal(t, 1, res.TotalPages)
	})

	t.Run("OutputIsSubsetOfInput", func(t *testing.T) {
		products := makeProducts(30)
		byID := make(map[int]domain.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		f := domain.NewFilterState().
			WithPriceRange(50, 250).
			WithMinRating(2).
			WithSort(domain.SortPriceDesc)
		res := domain.Derive(products, f)

		for _, p := range res.Items {
			orig, ok := byID[p.ID]
			require.True(t, ok)
			assert.Equal(t, orig, p)
		}
	})

	t.Run("DerivationIsIdempotent", func(t *testing.T) {
		products := makeProducts(30)
		f := domain.NewFilterState().
			WithQuery("product").
			WithPriceRange(0, 500).
			WithSort(domain.SortPriceAsc)

		first := domain.Derive(products, f)
		second := domain.Derive(products, f)
		assert.Equal(t, first, second)
	})

	t.Run("InputOrderSurvivesDefaultSort", func(t *testing.T) {
		products := makeProducts(10)
		res := domain.Derive(products, domain.NewFilterState())
		for i := 1; i < len(res.Items); i++ {
			assert.Less(t, res.Items[i-1].ID, res.Items[i].ID)
		}
	})

	t.Run("QueryIsCaseInsensitive", func(t *testing.T) {
		products := []domain.Product{
			{ID: 1, Title: "Wireless Headphones"},
			{ID: 2, Title: "Desk Lamp", Description: "warm wireless control"},
			{ID: 3, Title: "Mug"},
		}
		f := domain.NewFilterState().WithQuery("WIRELESS")
		res := domain.Derive(products, f)

		require.Len(t, res.Items, 2)
		assert.Equal(t, 1, res.Items[0].ID)
		assert.Equal(t, 2, res.Items[1].ID)
	})

	t.Run("PriceRangeInclusiveBounds", func(t *testing.T) {
		products := makeProducts(10)
		f := domain.NewFilterState().WithPriceRange(20, 40)
		res := domain.Derive(products, f)

		require.Len(t, res.Items, 3)
		assert.Equal(t, 2, res.Items[0].ID)
		assert.Equal(t, 4, res.Items[2].ID)
	})

	t.Run("StockStatusCheckboxes", func(t *testing.T) {
		products := makeProducts(8)

		tests := []struct {
			name               string
			inStock, outStock  bool
			wantOnlyInStock    bool
			wantOnlyOutOfStock bool
		}{
			{name: "BothActive", inStock: true, outStock: true},
			{name: "NeitherActive"},
			{name: "InStockOnly", inStock: true, wantOnlyInStock: true},
			{name: "OutOfStockOnly", outStock: true, wantOnlyOutOfStock: true},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				f := domain.NewFilterState().
					WithStockStatus(tc.inStock, tc.outStock)
				res := domain.Derive(products, f)

				if !tc.wantOnlyInStock && !tc.wantOnlyOutOfStock {
					assert.Equal(t, len(products), res.Total)
					return
				}
				require.NotEmpty(t, res.Items)
				for _, p := range res.Items {
					assert.Equal(t, tc.wantOnlyInStock, p.InStock)
				}
			})
		}
	})

	t.Run("BrandFilterORSemantics", func(t *testing.T) {
		products := makeProducts(9)
		f := domain.NewFilterState().WithBrands([]string{"Brand-1", "brand-2"})
		res := domain.Derive(products, f)

		require.NotEmpty(t, res.Items)
		for _, p := range res.Items {
			assert.Contains(t, []string{"brand-1", "brand-2"}, p.Brand)
		}
		assert.Equal(t, 6, res.Total)
	})

	t.Run("SortPriceAscending", func(t *testing.T) {
		products := []domain.Product{
			{ID: 1, Price: 30}, {ID: 2, Price: 10}, {ID: 3, Price: 20},
		}
		f := domain.NewFilterState().WithSort(domain.SortPriceAsc)
		res := domain.Derive(products, f)

		require.Len(t, res.Items, 3)
		assert.Equal(t, []int{2, 3, 1},
			[]int{res.Items[0].ID, res.Items[1].ID, res.Items[2].ID})
	})

	t.Run("SortRatingDescendingIsStable", func(t *testing.T) {
		products := []domain.Product{
			{ID: 1, Rating: 4}, {ID: 2, Rating: 5},
			{ID: 3, Rating: 4}, {ID: 4, Rating: 5},
		}
		f := domain.NewFilterState().WithSort(domain.SortRating)
		res := domain.Derive(products, f)

		assert.Equal(t, []int{2, 4, 1, 3}, []int{
			res.Items[0].ID, res.Items[1].ID,
			res.Items[2].ID, res.Items[3].ID,
		})
	})

	t.Run("InputIsNeverMutated", func(t *testing.T) {
		products := []domain.Product{
			{ID: 1, Price: 30}, {ID: 2, Price: 10}, {ID: 3, Price: 20},
		}
		f := domain.NewFilterState().WithSort(domain.SortPriceAsc)
		_ = domain.Derive(products, f)

		assert.Equal(t, 1, products[0].ID)
		assert.Equal(t, 2, products[1].ID)
		assert.Equal(t, 3, products[2].ID)
	})
}
