package domain

// CategoryAll is the category choice that imposes no constraint.
const CategoryAll = "All"

type Facet string

const (
	FacetSize         Facet = "size"
	FacetDressLength  Facet = "dressLength"
	FacetColor        Facet = "color"
	FacetSleeveLength Facet = "sleeveLength"
)

// A FilterSelection holds a single category choice and one independent
// value set per facet. The zero value is not ready to use,
// construct it with [NewFilterSelection].
type FilterSelection struct {
	Category     string
	Size         []string
	DressLength  []string
	Color        []string
	SleeveLength []string
}

func NewFilterSelection() FilterSelection {
	return FilterSelection{Category: CategoryAll}
}

// SetCategory replaces the single category value outright.
func (s *FilterSelection) SetCategory(category string) {
	s.Category = category
}

// Toggle removes value from the facet set when present,
// otherwise appends it. Unknown facets are ignored.
func (s *FilterSelection) Toggle(facet Facet, value string) {
	switch facet {
	case FacetSize:
		s.Size = toggleValue(s.Size, value)
	case FacetDressLength:
		s.DressLength = toggleValue(s.DressLength, value)
	case FacetColor:
		s.Color = toggleValue(s.Color, value)
	case FacetSleeveLength:
		s.SleeveLength = toggleValue(s.SleeveLength, value)
	}
}

func toggleValue(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, value)
}

type SortOption string

const (
	SortBestMatch SortOption = "Best Match"
	SortPriceAsc  SortOption = "Price: Low to High"
	SortPriceDesc SortOption = "Price: High to Low"
	SortNewest    SortOption = "Newest"
)
