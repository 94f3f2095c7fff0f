package services

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/catalog"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

func TestTagsColumn(t *testing.T) {
	criteria := catalog.Criteria{Tags: []string{"react", "", "seo"}}

	assert.Equal(t, pq.StringArray{"react", "seo"}, tagsColumn(criteria))

	// No selection stores as an empty array rather than NULL.
	empty := tagsColumn(catalog.Criteria{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCriteriaJSONBRoundTrip(t *testing.T) {
	min := 100.0
	criteria := catalog.Criteria{
		Search:   "figma",
		Category: catalog.StringSet{"design"},
		PriceMin: &min,
		Tags:     []string{"react"},
	}

	payload, err := encodeCriteria(criteria)
	require.NoError(t, err)

	decoded := decodeCriteria(payload)
	assert.Equal(t, criteria, decoded)
}

func TestDecodeCriteriaCorruptPayload(t *testing.T) {
	corrupt := models.JSONB{"price_min": "not a number"}

	assert.Equal(t, catalog.Criteria{}, decodeCriteria(corrupt))
	assert.Equal(t, catalog.Criteria{}, decodeCriteria(nil))
}
