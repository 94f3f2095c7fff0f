package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/catalog"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

func listContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/v1/products?"+rawQuery, nil)
	return c
}

func TestGetListQueryDefaults(t *testing.T) {
	query := GetListQuery(listContext(t, ""))

	assert.Equal(t, 1, query.Page)
	assert.Equal(t, DefaultPerPage, query.PerPage)
	assert.Equal(t, catalog.SortByCreatedAt, query.Sort)
	assert.Equal(t, 0, query.Criteria.ActiveCount())
}

func TestGetListQueryBounds(t *testing.T) {
	query := GetListQuery(listContext(t, "page=-2&per_page=5000&sort=price"))

	assert.Equal(t, 1, query.Page)
	assert.Equal(t, DefaultPerPage, query.PerPage)
	assert.Equal(t, catalog.SortByPrice, query.Sort)
}

func TestGetCriteriaFull(t *testing.T) {
	c := listContext(t, "search=figma&category=design&condition=good&brand=Apple"+
		"&tags=react,seo&is_featured=true&city=Paris&price_min=10&price_max=250.5")

	criteria := GetCriteria(c)

	assert.Equal(t, "figma", criteria.Search)
	assert.Equal(t, catalog.StringSet{"design"}, criteria.Category)
	assert.Equal(t, models.ConditionGood, criteria.Condition)
	assert.Equal(t, "Apple", criteria.Brand)
	assert.Equal(t, []string{"react", "seo"}, criteria.Tags)
	assert.True(t, criteria.IsFeatured)
	assert.False(t, criteria.IsTrending)
	assert.Equal(t, "Paris", criteria.City)
	require.NotNil(t, criteria.PriceMin)
	require.NotNil(t, criteria.PriceMax)
	assert.Equal(t, 10.0, *criteria.PriceMin)
	assert.Equal(t, 250.5, *criteria.PriceMax)
}

func TestGetCriteriaRepeatedAndCommaLists(t *testing.T) {
	c := listContext(t, "category=design&category=formation,marketing&tags=a,%20b&tags=c")

	criteria := GetCriteria(c)

	assert.Equal(t, catalog.StringSet{"design", "formation", "marketing"}, criteria.Category)
	assert.Equal(t, []string{"a", "b", "c"}, criteria.Tags)
}

func TestGetCriteriaInvalidValuesIgnored(t *testing.T) {
	criteria := GetCriteria(listContext(t, "price_min=abc&is_featured=maybe"))

	assert.Nil(t, criteria.PriceMin)
	assert.False(t, criteria.IsFeatured)
}
