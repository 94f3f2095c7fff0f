package catalog

import (
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

// PageResult is the Laravel-style page envelope the storefront
// consumes: the page slice plus the metadata describing the full
// filtered set.
type PageResult struct {
	Data        []models.Product `json:"data"`
	CurrentPage int              `json:"current_page"`
	PerPage     int              `json:"per_page"`
	Total       int              `json:"total"`
	LastPage    int              `json:"last_page"`
	From        int              `json:"from"`
	To          int              `json:"to"`
}

// Paginate slices the collection into the requested page. It does not
// clamp the page number: an out-of-range page yields an empty data
// slice while Total and LastPage still describe the whole set. Callers
// are responsible for keeping navigation within LastPage.
func Paginate(products []models.Product, page, perPage int) PageResult {
	total := len(products)

	lastPage := 1
	if perPage > 0 {
		lastPage = (total + perPage - 1) / perPage
		if lastPage < 1 {
			lastPage = 1
		}
	}

	start := (page - 1) * perPage
	end := start + perPage

	data := []models.Product{}
	from, to := 0, 0
	if start >= 0 && start < total {
		if end > total {
			end = total
		}
		data = append(data, products[start:end]...)
		from = start + 1
		to = end
	}

	return PageResult{
		Data:        data,
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
		From:        from,
		To:          to,
	}
}
