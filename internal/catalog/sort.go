package catalog

import (
	"sort"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByRating    SortKey = "rating"
	SortBySales     SortKey = "sales"
	SortByTrending  SortKey = "trending"
	SortByCreatedAt SortKey = "created_at"
)

// ParseSortKey maps a query value to a sort key; anything unknown
// falls back to the created_at default.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortByPrice, SortByRating, SortBySales, SortByTrending:
		return SortKey(s)
	default:
		return SortByCreatedAt
	}
}

// SortProducts orders the collection by the given key. The sort is
// stable and non-mutating: the input slice is left untouched and a new
// slice is returned.
func SortProducts(products []models.Product, key SortKey) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch key {
	case SortByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case SortByRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Stats.AverageRating > sorted[j].Stats.AverageRating
		})
	case SortBySales:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Stats.TotalSales > sorted[j].Stats.TotalSales
		})
	case SortByTrending:
		// Stable partition: trending items first, relative order
		// preserved within both groups.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].IsTrending && !sorted[j].IsTrending
		})
	default:
		// Newest first. Timestamps are ISO-8601 strings, which order
		// lexicographically.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
	}

	return sorted
}
