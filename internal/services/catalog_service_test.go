package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/catalog"
)

// stubOffersClient replaces the remote offers service in tests.
type stubOffersClient struct {
	offers    []catalog.RawOffer
	offer     *catalog.RawOffer
	err       error
	listCalls int
	getCalls  int
}

func (s *stubOffersClient) ListOffers(ctx context.Context) ([]catalog.RawOffer, error) {
	s.listCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.offers, nil
}

func (s *stubOffersClient) GetOffer(ctx context.Context, id int64) (*catalog.RawOffer, error) {
	s.getCalls++
	if s.err != nil {
		return nil, s.err
	}
	return s.offer, nil
}

func TestFetchProductsRemote(t *testing.T) {
	client := &stubOffersClient{offers: []catalog.RawOffer{
		{ID: 1, Title: "Kit UI", Price: 59, Tags: []string{"design"}},
		{ID: 2, Title: "Formation React", Price: 149, Tags: []string{"react"}},
	}}
	service := NewCatalogService(client)

	result := service.FetchProducts(context.Background(), catalog.Criteria{}, catalog.SortByPrice, 1, 12)

	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Kit UI", result.Data[0].Title)
	assert.Equal(t, 1, client.listCalls)
}

func TestFetchProductsFallsBackWhenRemoteFails(t *testing.T) {
	client := &stubOffersClient{err: errors.New("connection refused")}
	service := NewCatalogService(client)

	result := service.FetchProducts(context.Background(), catalog.Criteria{}, catalog.SortByCreatedAt, 1, 12)

	// A broken remote never breaks the storefront: the embedded
	// dataset flows through the same pipeline.
	assert.Greater(t, result.Total, 0)
	assert.NotEmpty(t, result.Data)
	assert.Equal(t, len(catalog.FallbackProducts()), result.Total)
}

func TestFetchProductsFallbackRunsSamePipeline(t *testing.T) {
	client := &stubOffersClient{err: errors.New("boom")}
	service := NewCatalogService(client)

	result := service.FetchProducts(context.Background(), catalog.Criteria{IsFeatured: true}, catalog.SortByPrice, 1, 2)

	featured := 0
	for _, p := range catalog.FallbackProducts() {
		if p.IsFeatured {
			featured++
		}
	}
	assert.Equal(t, featured, result.Total)
	for _, p := range result.Data {
		assert.True(t, p.IsFeatured)
	}
	if len(result.Data) == 2 {
		assert.LessOrEqual(t, result.Data[0].Price, result.Data[1].Price)
	}
}

func TestFetchProductsNormalizesPaging(t *testing.T) {
	client := &stubOffersClient{offers: []catalog.RawOffer{{ID: 1}}}
	service := NewCatalogService(client)

	result := service.FetchProducts(context.Background(), catalog.Criteria{}, catalog.SortByCreatedAt, 0, -3)

	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, DefaultPerPage, result.PerPage)
}

func TestGetProductRemote(t *testing.T) {
	client := &stubOffersClient{offer: &catalog.RawOffer{ID: 7, Title: "Audit SEO"}}
	service := NewCatalogService(client)

	product, err := service.GetProduct(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), product.ID)
	assert.Equal(t, "Audit SEO", product.Title)
}

func TestGetProductFallbackWhenRemoteFails(t *testing.T) {
	client := &stubOffersClient{err: errors.New("timeout")}
	service := NewCatalogService(client)

	known := catalog.FallbackProducts()[0]

	product, err := service.GetProduct(context.Background(), known.ID)
	require.NoError(t, err)
	assert.Equal(t, known.Title, product.Title)

	_, err = service.GetProduct(context.Background(), 424242)
	assert.Error(t, err)
}

func TestCatalogVersion(t *testing.T) {
	service := NewCatalogService(&stubOffersClient{})

	assert.Equal(t, int64(0), service.Version())
	assert.Equal(t, int64(1), service.BumpVersion())
	assert.Equal(t, int64(2), service.BumpVersion())
	assert.Equal(t, int64(2), service.Version())
}
