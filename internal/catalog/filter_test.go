package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{
			ID: 1, Title: "Kit UI Figma", Description: "Composants pour dashboards",
			Category: "design", Subcategory: "ui-kit", Brand: "Figma",
			Price: 50, Tags: []string{"design", "figma"},
			IsFeatured: true, City: "Paris",
			User:  &models.SellerInfo{Name: "Claire"},
			Stats: models.ProductStats{AverageRating: 4.8},
		},
		{
			ID: 2, Title: "Formation React", Description: "Cours complet",
			Category: "formation", Brand: "React",
			Price: 150, Tags: []string{"react", "formation"},
			IsTrending: true, City: "Bruxelles",
			Condition: models.ConditionNew,
		},
		{
			ID: 3, Title: "MacBook Pro", Description: "Portable Apple",
			Category: "electronique", Brand: "Apple",
			Price: 300, Tags: []string{"apple", "occasion"},
			City: "Lyon", Condition: models.ConditionGood,
		},
		{
			ID: 4, Title: "Audit SEO", Description: "Analyse complète",
			Category: "marketing", Price: 200, Tags: []string{"seo"},
			IsFeatured: true, IsTrending: true, City: "Genève",
		},
	}
}

func productIDs(products []models.Product) []int64 {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestApplyFiltersIdentity(t *testing.T) {
	products := testProducts()

	result := ApplyFilters(products, Criteria{})

	assert.Equal(t, products, result)
}

func TestApplyFiltersIdempotent(t *testing.T) {
	products := testProducts()
	criteria := Criteria{Search: "e", Tags: []string{"design", "seo", "react", "apple"}}

	once := ApplyFilters(products, criteria)
	twice := ApplyFilters(once, criteria)

	assert.Equal(t, once, twice)
}

func TestApplyFiltersMonotonic(t *testing.T) {
	products := testProducts()
	base := Criteria{Category: StringSet{"design", "formation", "marketing"}}
	narrowed := base
	narrowed.IsFeatured = true

	baseResult := ApplyFilters(products, base)
	narrowedResult := ApplyFilters(products, narrowed)

	assert.LessOrEqual(t, len(narrowedResult), len(baseResult))
	for _, p := range narrowedResult {
		assert.Contains(t, productIDs(baseResult), p.ID)
	}
}

func TestApplyFiltersPriceRange(t *testing.T) {
	// Products priced [50, 150, 300, 200] with an inclusive 100-250
	// range keep exactly 150 and 200, in original relative order.
	min, max := 100.0, 250.0

	result := ApplyFilters(testProducts(), Criteria{PriceMin: &min, PriceMax: &max})

	assert.Equal(t, []int64{2, 4}, productIDs(result))
}

func TestApplyFiltersEmptySetIsNoConstraint(t *testing.T) {
	products := testProducts()

	// An explicitly empty set must behave like an absent criterion,
	// not like "match nothing".
	assert.Equal(t, products, ApplyFilters(products, Criteria{Category: StringSet{}}))
	assert.Equal(t, products, ApplyFilters(products, Criteria{Tags: []string{}}))
}

func TestApplyFiltersCategorySetAndScalar(t *testing.T) {
	products := testProducts()

	set := ApplyFilters(products, Criteria{Category: StringSet{"design", "marketing"}})
	assert.Equal(t, []int64{1, 4}, productIDs(set))

	scalar := ApplyFilters(products, Criteria{Category: StringSet{"design"}})
	assert.Equal(t, []int64{1}, productIDs(scalar))
}

func TestStringSetDecodesScalarAndArray(t *testing.T) {
	// Older clients persisted the category as a scalar; both forms
	// must decode into the same canonical set.
	var fromScalar, fromArray Criteria

	require.NoError(t, json.Unmarshal([]byte(`{"category":"design"}`), &fromScalar))
	require.NoError(t, json.Unmarshal([]byte(`{"category":["design"]}`), &fromArray))

	assert.Equal(t, fromArray.Category, fromScalar.Category)
	assert.Equal(t, StringSet{"design"}, fromScalar.Category)
}

func TestApplyFiltersSearch(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name   string
		search string
		want   []int64
	}{
		{"title", "macbook", []int64{3}},
		{"description", "cours", []int64{2}},
		{"tag", "seo", []int64{4}},
		{"subcategory", "ui-kit", []int64{1}},
		{"brand", "apple", []int64{3}},
		{"seller name", "claire", []int64{1}},
		{"no match", "zzzz", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyFilters(products, Criteria{Search: tt.search})
			assert.Equal(t, tt.want, productIDs(result))
		})
	}
}

func TestApplyFiltersTagsOrSemantics(t *testing.T) {
	result := ApplyFilters(testProducts(), Criteria{Tags: []string{"FIGMA", "seo"}})

	// Any listed tag matches, case-insensitively.
	assert.Equal(t, []int64{1, 4}, productIDs(result))
}

func TestApplyFiltersBrandEqualityNotSubstring(t *testing.T) {
	products := testProducts()

	assert.Equal(t, []int64{3}, productIDs(ApplyFilters(products, Criteria{Brand: "apple"})))
	assert.Empty(t, ApplyFilters(products, Criteria{Brand: "app"}))
}

func TestApplyFiltersCityAndCondition(t *testing.T) {
	products := testProducts()

	city := ApplyFilters(products, Criteria{City: "brux"})
	assert.Equal(t, []int64{2}, productIDs(city))

	condition := ApplyFilters(products, Criteria{Condition: models.ConditionGood})
	assert.Equal(t, []int64{3}, productIDs(condition))
}

func TestApplyFiltersFlags(t *testing.T) {
	products := testProducts()

	featured := ApplyFilters(products, Criteria{IsFeatured: true})
	assert.Equal(t, []int64{1, 4}, productIDs(featured))

	both := ApplyFilters(products, Criteria{IsFeatured: true, IsTrending: true})
	assert.Equal(t, []int64{4}, productIDs(both))
}

func TestCriteriaActiveCount(t *testing.T) {
	min := 10.0

	assert.Equal(t, 0, Criteria{}.ActiveCount())

	criteria := Criteria{
		Search:     "figma",
		Category:   StringSet{"design"},
		PriceMin:   &min,
		Tags:       []string{"react", "seo"},
		IsFeatured: true,
	}
	// search + category + price range + 2 tags + featured
	assert.Equal(t, 6, criteria.ActiveCount())
}
