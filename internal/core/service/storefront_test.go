package service_test

import (
	"testing"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorefront(kv *memKV) *service.Storefront {
	catalog := fakeCatalog{products: testProducts(), users: testUsers()}
	return service.NewStorefront(catalog, kv, service.StorefrontConfig{
		TaxRate:          0.1,
		ShippingFlatCost: 150000,
	})
}

func TestStorefrontCart(t *testing.T) {
	t.Run("AddResolvesProductFromCatalog", func(t *testing.T) {
		s := newTestStorefront(newMemKV())

		require.NoError(t, s.AddToCart(1, 2))

		lines := s.CartLines()
		require.Len(t, lines, 1)
		assert.Equal(t, "Red brocade dress", lines[0].Title)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("AddUnknownProduct", func(t *testing.T) {
		s := newTestStorefront(newMemKV())

		err := s.AddToCart(404, 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("AddRejectsNonPositiveQuantity", func(t *testing.T) {
		s := newTestStorefront(newMemKV())

		err := s.AddToCart(1, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestStorefrontIdentityTransitions(t *testing.T) {
	t.Run("LoginLoadsUserPartition", func(t *testing.T) {
		kv := newMemKV()
		s := newTestStorefront(kv)

		require.NoError(t, s.AddToCart(1, 2)) // guest cart

		_, err := s.Login("a@example.com", "secret")
		require.NoError(t, err)

		assert.Empty(t, s.CartLines(), "user partition starts empty")

		require.NoError(t, s.AddToCart(2, 1))
		assert.Equal(t, 1, s.CartCount())
	})

	t.Run("LogoutRestoresGuestPartitionUnchanged", func(t *testing.T) {
		kv := newMemKV()
		s := newTestStorefront(kv)

		require.NoError(t, s.AddToCart(1, 2))

		_, err := s.Login("a@example.com", "secret")
		require.NoError(t, err)
		require.NoError(t, s.AddToCart(2, 5))

		require.NoError(t, s.Logout())

		lines := s.CartLines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(1), lines[0].ProductID)
		assert.Equal(t, 2, lines[0].Quantity)
	})

	t.Run("RelogingInRestoresUserCart", func(t *testing.T) {
		kv := newMemKV()
		s := newTestStorefront(kv)

		_, err := s.Login("a@example.com", "secret")
		require.NoError(t, err)
		require.NoError(t, s.AddToCart(3, 1))
		require.NoError(t, s.Logout())

		_, err = s.Login("a@example.com", "secret")
		require.NoError(t, err)

		lines := s.CartLines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(3), lines[0].ProductID)
	})

	t.Run("WatchlistFollowsIdentity", func(t *testing.T) {
		kv := newMemKV()
		s := newTestStorefront(kv)

		require.NoError(t, s.AddToWatchlist(1))
		require.True(t, s.InWatchlist(1))

		_, err := s.Login("a@example.com", "secret")
		require.NoError(t, err)
		assert.False(t, s.InWatchlist(1))

		require.NoError(t, s.Logout())
		assert.True(t, s.InWatchlist(1))
	})

	t.Run("RegisterSwitchesToFreshPartition", func(t *testing.T) {
		kv := newMemKV()
		s := newTestStorefront(kv)

		require.NoError(t, s.AddToCart(1, 1))

		_, err := s.Register(domain.Registration{
			Name: "New", Email: "n@example.com", Password: "pw",
		})
		require.NoError(t, err)

		assert.Empty(t, s.CartLines())
	})
}

func TestStorefrontWatchlist(t *testing.T) {
	t.Run("AddTwiceKeepsOneEntry", func(t *testing.T) {
		s := newTestStorefront(newMemKV())

		require.NoError(t, s.AddToWatchlist(1))
		require.NoError(t, s.AddToWatchlist(1))

		assert.Len(t, s.WatchlistEntries(), 1)
	})

	t.Run("AddUnknownProduct", func(t *testing.T) {
		s := newTestStorefront(newMemKV())

		err := s.AddToWatchlist(404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
