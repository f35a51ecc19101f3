package domain_test

import (
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart(t *testing.T) {
	pA := domain.Product{ID: 1, Title: "testProductA", Price: 10}
	pB := domain.Product{ID: 2, Title: "testProductB", Price: 5}

	t.Run("AddMergesSameProduct", func(t *testing.T) {
		cart := domain.Cart{}
		cart = cart.Add(pA, 2)
		cart = cart.Add(pB, 1)
		cart = cart.Add(pA, 3)

		require.Len(t, cart.Lines, 2)
		assert.Equal(t, 5, cart.Lines[0].Quantity)
		assert.Equal(t, 1, cart.Lines[1].Quantity)
		assert.Equal(t, 6, cart.TotalQuantity())
	})

	t.Run("AddQuantityBelowOne", func(t *testing.T) {
		cart := domain.Cart{}.Add(pA, 0)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
	})

	t.Run("UpdateQuantityVerbatim", func(t *testing.T) {
		cart := domain.Cart{}.Add(pA, 2)
		cart = cart.UpdateQuantity(pA.ID, 7)

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 7, cart.Lines[0].Quantity)
	})

	t.Run("UpdateQuantityUnknownID", func(t *testing.T) {
		cart := domain.Cart{}.Add(pA, 2)
		next := cart.UpdateQuantity(99, 5)
		assert.Equal(t, cart.Lines, next.Lines)
	})

	t.Run("RemoveIsIdempotent", func(t *testing.T) {
		cart := domain.Cart{}.Add(pA, 1).Add(pB, 1)

		cart = cart.Remove(pA.ID)
		require.Len(t, cart.Lines, 1)

		cart = cart.Remove(pA.ID)
		require.Len(t, cart.Lines, 1)
		assert.False(t, cart.Contains(pA.ID))
		assert.True(t, cart.Contains(pB.ID))
	})

	t.Run("SetReplacesLines", func(t *testing.T) {
		cart := domain.Cart{}.Add(pA, 3)
		cart = cart.Set(nil)
		assert.True(t, cart.Empty())
	})

	t.Run("TransitionsDoNotMutateReceiver", func(t *testing.T) {
		cart := domain.Cart{}.Add(pA, 1)
		_ = cart.Add(pA, 9)
		_ = cart.UpdateQuantity(pA.ID, 9)
		_ = cart.Remove(pA.ID)

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 1, cart.Lines[0].Quantity)
	})
}
