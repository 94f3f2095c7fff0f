package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

func numberedProducts(n int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, models.Product{ID: int64(i), Title: fmt.Sprintf("Produit %d", i)})
	}
	return products
}

func TestPaginateFirstPage(t *testing.T) {
	result := Paginate(numberedProducts(25), 1, 12)

	assert.Len(t, result.Data, 12)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 25, result.Total)
	assert.Equal(t, 3, result.LastPage)
	assert.Equal(t, 1, result.From)
	assert.Equal(t, 12, result.To)
	assert.Equal(t, int64(1), result.Data[0].ID)
}

func TestPaginateLastPartialPage(t *testing.T) {
	result := Paginate(numberedProducts(25), 3, 12)

	assert.Len(t, result.Data, 1)
	assert.Equal(t, int64(25), result.Data[0].ID)
	assert.Equal(t, 25, result.From)
	assert.Equal(t, 25, result.To)
}

func TestPaginateConservation(t *testing.T) {
	products := numberedProducts(25)
	perPage := 7

	seen := []int64{}
	result := Paginate(products, 1, perPage)
	for page := 1; page <= result.LastPage; page++ {
		seen = append(seen, productIDs(Paginate(products, page, perPage).Data)...)
	}

	// Walking every page recovers the full set exactly once, in order.
	assert.Equal(t, productIDs(products), seen)
}

func TestPaginateOutOfRangePage(t *testing.T) {
	result := Paginate(numberedProducts(10), 5, 12)

	assert.Empty(t, result.Data)
	assert.Equal(t, 5, result.CurrentPage)
	assert.Equal(t, 10, result.Total)
	assert.Equal(t, 1, result.LastPage)
	assert.Equal(t, 0, result.From)
	assert.Equal(t, 0, result.To)
}

func TestPaginateEmptyCollection(t *testing.T) {
	result := Paginate([]models.Product{}, 1, 12)

	assert.Empty(t, result.Data)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 1, result.LastPage)
	assert.Equal(t, 0, result.From)
	assert.Equal(t, 0, result.To)
}

func TestPaginateLastPageRoundsUp(t *testing.T) {
	assert.Equal(t, 3, Paginate(numberedProducts(25), 1, 12).LastPage)
	assert.Equal(t, 2, Paginate(numberedProducts(24), 1, 12).LastPage)
	assert.Equal(t, 1, Paginate(numberedProducts(12), 1, 12).LastPage)
}
