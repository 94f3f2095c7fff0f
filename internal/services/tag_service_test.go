package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/catalog"
)

func tagFixtureClient() *stubOffersClient {
	return &stubOffersClient{offers: []catalog.RawOffer{
		{ID: 1, Tags: []string{"design", "Figma", "react"}},
		{ID: 2, Tags: []string{"design", "react"}},
		{ID: 3, Tags: []string{"design", " SEO "}},
	}}
}

// fakeClock drives the tag cache TTL without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTagService(client *stubOffersClient, ttl time.Duration) (*TagService, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	service := NewTagService(client, ttl)
	service.now = clock.Now
	return service, clock
}

func TestGetPopularTagsRanking(t *testing.T) {
	client := tagFixtureClient()
	service, _ := newTestTagService(client, 5*time.Minute)

	tags := service.GetPopularTags(context.Background(), 0, false)

	// Frequency descending, alphabetical on ties, lower-cased and
	// trimmed.
	assert.Equal(t, []string{"design", "react", "figma", "seo"}, tags)
}

func TestGetPopularTagsCachedWithinTTL(t *testing.T) {
	client := tagFixtureClient()
	service, clock := newTestTagService(client, 5*time.Minute)

	first := service.GetPopularTags(context.Background(), 5, false)
	clock.Advance(2 * time.Minute)
	second := service.GetPopularTags(context.Background(), 5, false)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.listCalls)
}

func TestGetPopularTagsRefetchesAfterTTL(t *testing.T) {
	client := tagFixtureClient()
	service, clock := newTestTagService(client, 5*time.Minute)

	service.GetPopularTags(context.Background(), 5, false)
	clock.Advance(6 * time.Minute)
	service.GetPopularTags(context.Background(), 5, false)

	assert.Equal(t, 2, client.listCalls)
}

func TestGetPopularTagsForceRefresh(t *testing.T) {
	client := tagFixtureClient()
	service, _ := newTestTagService(client, 5*time.Minute)

	service.GetPopularTags(context.Background(), 5, false)
	service.GetPopularTags(context.Background(), 5, true)

	// forceRefresh bypasses the TTL with exactly one extra fetch.
	assert.Equal(t, 2, client.listCalls)
}

func TestGetPopularTagsLimit(t *testing.T) {
	service, _ := newTestTagService(tagFixtureClient(), 5*time.Minute)

	assert.Len(t, service.GetPopularTags(context.Background(), 2, false), 2)
	assert.Len(t, service.GetPopularTags(context.Background(), 100, false), 4)
}

func TestGetPopularTagsDefaultsOnFailure(t *testing.T) {
	client := &stubOffersClient{err: errors.New("unreachable")}
	service, _ := newTestTagService(client, 5*time.Minute)

	tags := service.GetPopularTags(context.Background(), 5, false)

	assert.Equal(t, defaultTags[:5], tags)

	// The default vocabulary is not cached: a recovered feed is
	// picked up on the next read.
	client.err = nil
	client.offers = tagFixtureClient().offers
	assert.Equal(t, []string{"design", "react", "figma", "seo"}, service.GetPopularTags(context.Background(), 0, false))
}

func TestInvalidateDropsCache(t *testing.T) {
	client := tagFixtureClient()
	service, _ := newTestTagService(client, 5*time.Minute)

	service.GetPopularTags(context.Background(), 5, false)
	service.Invalidate()
	service.GetPopularTags(context.Background(), 5, false)

	assert.Equal(t, 2, client.listCalls)
}
