package service_test

import (
	"testing"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validListingForm() domain.ListingForm {
	return domain.ListingForm{
		Title:    "Ao dai cach tan moi",
		Category: "Modern",
		Price:    990000,
	}
}

func TestSeller(t *testing.T) {
	t.Run("CreateListingRequiresSession", func(t *testing.T) {
		s := newTestStorefront(newMemKV())

		_, err := s.CreateListing(validListingForm())
		assert.ErrorIs(t, err, domain.ErrNoSession)
	})

	t.Run("CreateListingValidation", func(t *testing.T) {
		s := newTestStorefront(newMemKV())
		_, err := s.Login("a@example.com", "secret")
		require.NoError(t, err)

		form := validListingForm()
		form.Price = 0

		_, err = s.CreateListing(form)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("CreateListingSetsSellerAndIdentity", func(t *testing.T) {
		s := newTestStorefront(newMemKV())
		_, err := s.Login("a@example.com", "secret")
		require.NoError(t, err)

		p, err := s.CreateListing(validListingForm())
		require.NoError(t, err)

		assert.NotZero(t, p.ID)
		assert.Equal(t, "Nguyen Van A", p.Seller)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("BackToBackListingsGetDistinctIDs", func(t *testing.T) {
		s := newTestStorefront(newMemKV())
		_, err := s.Login("a@example.com", "secret")
		require.NoError(t, err)

		ids := make(map[int64]bool)
		for range 10 {
			p, err := s.CreateListing(validListingForm())
			require.NoError(t, err)
			assert.False(t, ids[p.ID], "listing IDs must not repeat")
			ids[p.ID] = true
		}
	})

	t.Run("ListingsMergeCatalogAndSessionLocal", func(t *testing.T) {
		s := newTestStorefront(newMemKV())

		// "Mai" owns catalog products 1 and 3; log in as a user named Mai
		_, err := s.Register(domain.Registration{
			Name: "Mai", Email: "mai@example.com", Password: "pw",
		})
		require.NoError(t, err)

		_, err = s.CreateListing(validListingForm())
		require.NoError(t, err)

		listings, err := s.Listings()
		require.NoError(t, err)
		assert.Len(t, listings, 3)
	})

	t.Run("SellerStats", func(t *testing.T) {
		s := newTestStorefront(newMemKV())
		_, err := s.Login("a@example.com", "secret")
		require.NoError(t, err)

		_, err = s.CreateListing(validListingForm())
		require.NoError(t, err)

		require.NoError(t, s.AddToCart(1, 1))
		order, err := s.PlaceOrder(t.Context(), validCheckoutForm())
		require.NoError(t, err)

		stats, err := s.SellerStats()
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TotalListings)
		assert.Equal(t, 1, stats.TotalOrders)
		assert.InDelta(t, order.Total, stats.TotalSales, 1e-9)
	})
}
