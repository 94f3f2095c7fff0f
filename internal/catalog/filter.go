package catalog

import (
	"encoding/json"
	"strings"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

// StringSet decodes from either a single JSON string or an array of
// strings. Older clients persisted the category filter as a scalar;
// the set form is canonical and the scalar form folds into it.
type StringSet []string

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*s = nil
		} else {
			*s = StringSet{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringSet(many)
	return nil
}

// Criteria is the current set of optional filter constraints. A zero
// field imposes no constraint, and an explicitly empty set behaves the
// same way; empty never means "match nothing".
type Criteria struct {
	Search     string           `json:"search,omitempty"`
	Category   StringSet        `json:"category,omitempty"`
	PriceMin   *float64         `json:"price_min,omitempty"`
	PriceMax   *float64         `json:"price_max,omitempty"`
	Condition  models.Condition `json:"condition,omitempty"`
	Brand      string           `json:"brand,omitempty"`
	Tags       []string         `json:"tags,omitempty"`
	IsFeatured bool             `json:"is_featured,omitempty"`
	IsTrending bool             `json:"is_trending,omitempty"`
	City       string           `json:"city,omitempty"`
}

// ActiveCount reports how many filter selections are active, for the
// storefront's filter badge: search, category, the price range (both
// bounds together) and the featured toggle each count once, every
// selected tag counts separately.
func (c Criteria) ActiveCount() int {
	count := 0
	if strings.TrimSpace(c.Search) != "" {
		count++
	}
	if len(c.Category) > 0 {
		count++
	}
	if c.PriceMin != nil || c.PriceMax != nil {
		count++
	}
	count += len(c.Tags)
	if c.IsFeatured {
		count++
	}
	return count
}

// ApplyFilters evaluates the criteria as a conjunction of optional
// predicates over the collection. It is pure, preserves the relative
// order of survivors and returns a new slice.
func ApplyFilters(products []models.Product, criteria Criteria) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, product := range products {
		if matches(product, criteria) {
			result = append(result, product)
		}
	}
	return result
}

func matches(p models.Product, c Criteria) bool {
	if q := strings.ToLower(strings.TrimSpace(c.Search)); q != "" && !matchesSearch(p, q) {
		return false
	}
	if len(c.Category) > 0 && !contains(c.Category, p.Category) {
		return false
	}
	if c.PriceMin != nil && p.Price < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && p.Price > *c.PriceMax {
		return false
	}
	if c.Condition != "" && p.Condition != c.Condition {
		return false
	}
	if c.Brand != "" && !strings.EqualFold(c.Brand, p.Brand) {
		return false
	}
	if len(c.Tags) > 0 && !tagsIntersect(c.Tags, p.Tags) {
		return false
	}
	if c.IsFeatured && !p.IsFeatured {
		return false
	}
	if c.IsTrending && !p.IsTrending {
		return false
	}
	if city := strings.TrimSpace(c.City); city != "" &&
		!strings.Contains(strings.ToLower(p.City), strings.ToLower(city)) {
		return false
	}
	return true
}

// matchesSearch is an OR across the product's free-text surfaces.
func matchesSearch(p models.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Subcategory), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	if p.User != nil && strings.Contains(strings.ToLower(p.User.Name), q) {
		return true
	}
	return false
}

func contains(set []string, value string) bool {
	for _, entry := range set {
		if entry == value {
			return true
		}
	}
	return false
}

func tagsIntersect(wanted, have []string) bool {
	for _, w := range wanted {
		for _, h := range have {
			if strings.EqualFold(w, h) {
				return true
			}
		}
	}
	return false
}
