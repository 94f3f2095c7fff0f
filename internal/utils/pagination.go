package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/catalog"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

const (
	DefaultPerPage = 12
	MaxPerPage     = 100
)

// ListQuery is a parsed product-listing request: the filter criteria
// plus sort and paging parameters.
type ListQuery struct {
	Criteria catalog.Criteria
	Sort     catalog.SortKey
	Page     int
	PerPage  int
}

// GetListQuery reads the listing parameters from the query string,
// applying defaults and bounds. Absent fields impose no constraint.
func GetListQuery(c *gin.Context) ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(DefaultPerPage)))

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}

	return ListQuery{
		Criteria: GetCriteria(c),
		Sort:     catalog.ParseSortKey(c.Query("sort")),
		Page:     page,
		PerPage:  perPage,
	}
}

// GetCriteria reads the filter criteria from the query string.
// category and tags accept both repeated parameters and comma lists.
func GetCriteria(c *gin.Context) catalog.Criteria {
	criteria := catalog.Criteria{
		Search:     c.Query("search"),
		Category:   catalog.StringSet(queryList(c, "category")),
		Condition:  models.Condition(c.Query("condition")),
		Brand:      c.Query("brand"),
		Tags:       queryList(c, "tags"),
		IsFeatured: queryBool(c, "is_featured"),
		IsTrending: queryBool(c, "is_trending"),
		City:       c.Query("city"),
	}

	if value := c.Query("price_min"); value != "" {
		if min, err := strconv.ParseFloat(value, 64); err == nil {
			criteria.PriceMin = &min
		}
	}
	if value := c.Query("price_max"); value != "" {
		if max, err := strconv.ParseFloat(value, 64); err == nil {
			criteria.PriceMax = &max
		}
	}

	return criteria
}

func queryList(c *gin.Context, key string) []string {
	var values []string
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}

func queryBool(c *gin.Context, key string) bool {
	value, err := strconv.ParseBool(c.Query(key))
	return err == nil && value
}
