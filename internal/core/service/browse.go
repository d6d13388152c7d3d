package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hoangptkd/clone-ebay/internal/core/domain"
	"github.com/hoangptkd/clone-ebay/internal/core/port"
)

// Apply runs the filter/sort pipeline: the category choice, each
// non-empty facet set and the free-text query are combined with AND,
// then the survivors are ordered by the sort option. The input slice
// is never mutated; [domain.SortBestMatch] preserves input order and
// every sort is stable for ties.
func Apply(
	products []domain.Product,
	sel domain.FilterSelection,
	query string,
	sort domain.SortOption,
) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	query = strings.ToLower(query)

	for _, p := range products {
		if matchesSelection(p, sel) && matchesQuery(p, query) {
			result = append(result, p)
		}
	}

	sortProducts(result, sort)
	return result
}

func matchesSelection(p domain.Product, sel domain.FilterSelection) bool {
	if sel.Category != "" && sel.Category != domain.CategoryAll &&
		p.Category != sel.Category {
		return false
	}
	return matchesFacet(p.Size, sel.Size) &&
		matchesFacet(p.DressLength, sel.DressLength) &&
		matchesFacet(p.Color, sel.Color) &&
		matchesFacet(p.SleeveLength, sel.SleeveLength)
}

// matchesFacet treats an empty selected set as no constraint.
func matchesFacet(value string, set []string) bool {
	return len(set) == 0 || slices.Contains(set, value)
}

func matchesQuery(p domain.Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func sortProducts(ps []domain.Product, sort domain.SortOption) {
	switch sort {
	case domain.SortPriceAsc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return cmpFloat(a.Price, b.Price)
		})
	case domain.SortPriceDesc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return cmpFloat(b.Price, a.Price)
		})
	case domain.SortNewest:
		// missing timestamps sort as least recent
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

var _ port.ProductBrowser = (*BrowseService)(nil)

// BrowseService runs the engine over the catalog. It holds no state of
// its own and is safe to call from any goroutine.
type BrowseService struct {
	catalog port.Catalog
}

func NewBrowseService(catalog port.Catalog) BrowseService {
	return BrowseService{catalog}
}

func (s BrowseService) Search(
	query string, sel domain.FilterSelection, sort domain.SortOption,
) []domain.Product {
	return Apply(s.catalog.Products(), sel, query, sort)
}

func (s BrowseService) Product(id int64) (domain.Product, error) {
	const op = "BrowseService.Product"

	p, ok := s.catalog.ProductByID(id)
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: product %d: %w",
			op, id, domain.ErrNotFound)
	}
	return p, nil
}

func (s BrowseService) Categories() []domain.Category {
	return s.catalog.Categories()
}
