package service_test

import (
	"testing"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	products := testProducts()

	t.Run("EmptySelectionIsIdentity", func(t *testing.T) {
		got := service.Apply(
			products, domain.NewFilterSelection(), "", domain.SortBestMatch,
		)
		assert.Equal(t, products, got)
	})

	t.Run("CategoryWithPriceAscending", func(t *testing.T) {
		sel := domain.NewFilterSelection()
		sel.SetCategory("A")

		got := service.Apply(products, sel, "", domain.SortPriceAsc)

		require.Len(t, got, 2)
		for _, p := range got {
			assert.Equal(t, "A", p.Category)
		}
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
		}
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
	})

	t.Run("PriceDescending", func(t *testing.T) {
		got := service.Apply(
			products, domain.NewFilterSelection(), "", domain.SortPriceDesc,
		)
		require.Len(t, got, 3)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
		assert.Equal(t, int64(2), got[2].ID)
	})

	t.Run("NewestPutsMissingTimestampLast", func(t *testing.T) {
		got := service.Apply(
			products, domain.NewFilterSelection(), "", domain.SortNewest,
		)
		require.Len(t, got, 3)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
		assert.Equal(t, int64(3), got[2].ID)
	})

	t.Run("FacetSetsCombineWithAND", func(t *testing.T) {
		sel := domain.NewFilterSelection()
		sel.Toggle(domain.FacetSize, "M")
		sel.Toggle(domain.FacetColor, "Red")
		sel.Toggle(domain.FacetColor, "Green")

		got := service.Apply(products, sel, "", domain.SortBestMatch)

		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
	})

	t.Run("QueryMatchesTitleDescriptionCategory", func(t *testing.T) {
		sel := domain.NewFilterSelection()

		byTitle := service.Apply(products, sel, "BROCADE", domain.SortBestMatch)
		require.Len(t, byTitle, 1)
		assert.Equal(t, int64(1), byTitle[0].ID)

		byDescription := service.Apply(products, sel, "light silk", domain.SortBestMatch)
		require.Len(t, byDescription, 1)
		assert.Equal(t, int64(3), byDescription[0].ID)

		// product 3 has no "b" in title or description, only in its
		// category name
		byCategory := service.Apply(products, sel, "b", domain.SortBestMatch)
		ids := make([]int64, 0, len(byCategory))
		for _, p := range byCategory {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, int64(3))
	})

	t.Run("NoMatchYieldsEmpty", func(t *testing.T) {
		got := service.Apply(
			products, domain.NewFilterSelection(), "no such dress",
			domain.SortBestMatch,
		)
		assert.Empty(t, got)
	})

	t.Run("InputIsNotMutated", func(t *testing.T) {
		before := make([]domain.Product, len(products))
		copy(before, products)

		service.Apply(products, domain.NewFilterSelection(), "", domain.SortPriceDesc)

		assert.Equal(t, before, products)
	})
}

func TestFilterSelectionToggle(t *testing.T) {
	t.Run("DoubleToggleRestoresOriginal", func(t *testing.T) {
		sel := domain.NewFilterSelection()
		sel.Toggle(domain.FacetSize, "M")

		original := append([]string(nil), sel.Size...)

		sel.Toggle(domain.FacetDressLength, "Midi")
		sel.Toggle(domain.FacetDressLength, "Midi")

		assert.Empty(t, sel.DressLength)
		assert.Equal(t, original, sel.Size)
	})

	t.Run("NoDuplicateValues", func(t *testing.T) {
		sel := domain.NewFilterSelection()
		sel.Toggle(domain.FacetColor, "Red")
		sel.Toggle(domain.FacetColor, "Blue")
		sel.Toggle(domain.FacetColor, "Red")
		sel.Toggle(domain.FacetColor, "Red")

		assert.Equal(t, []string{"Blue", "Red"}, sel.Color)
	})

	t.Run("SetCategoryReplaces", func(t *testing.T) {
		sel := domain.NewFilterSelection()
		assert.Equal(t, domain.CategoryAll, sel.Category)

		sel.SetCategory("A")
		sel.SetCategory("B")
		assert.Equal(t, "B", sel.Category)
	})
}

func TestBrowseService(t *testing.T) {
	catalog := fakeCatalog{products: testProducts()}
	browser := service.NewBrowseService(catalog)

	t.Run("Product", func(t *testing.T) {
		p, err := browser.Product(2)
		require.NoError(t, err)
		assert.Equal(t, "Blue modern dress", p.Title)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		_, err := browser.Product(404)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("SearchScenario", func(t *testing.T) {
		sel := domain.NewFilterSelection()
		sel.SetCategory("A")

		got := browser.Search("", sel, domain.SortPriceAsc)

		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(1), got[1].ID)
	})
}
