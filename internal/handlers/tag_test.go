package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/catalog"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/services"
)

func tagRouter(client services.OffersClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTagHandler(services.NewTagService(client, 5*time.Minute))

	r := gin.New()
	r.GET("/v1/tags/popular", handler.GetPopularTags)
	return r
}

func TestGetPopularTagsEndpoint(t *testing.T) {
	client := &stubOffersClient{offers: []catalog.RawOffer{
		{ID: 1, Tags: []string{"design", "react"}},
		{ID: 2, Tags: []string{"design"}},
	}}

	w, body := doRequest(t, tagRouter(client), "/v1/tags/popular?limit=5")

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"design", "react"}, data["tags"])
}

func TestGetPopularTagsEndpointCapsLimit(t *testing.T) {
	offers := make([]catalog.RawOffer, 0, 200)
	for i := 0; i < 200; i++ {
		offers = append(offers, catalog.RawOffer{
			ID:   catalog.FlexInt(i),
			Tags: []string{fmt.Sprintf("tag-%03d", i)},
		})
	}
	client := &stubOffersClient{offers: offers}

	_, body := doRequest(t, tagRouter(client), "/v1/tags/popular?limit=5000")

	// Oversized limits fall back to the default, matching the listing
	// endpoints' per-page cap.
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["tags"], 16)
}

func TestGetPopularTagsEndpointDefaultsOnFailure(t *testing.T) {
	client := &stubOffersClient{err: assert.AnError}

	w, body := doRequest(t, tagRouter(client), "/v1/tags/popular")

	// The widget always gets a vocabulary, even with the feed down.
	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["tags"])
}
