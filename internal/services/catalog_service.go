package services

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/catalog"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

const DefaultPerPage = 12

// OffersClient is the remote data source feeding the catalog.
type OffersClient interface {
	ListOffers(ctx context.Context) ([]catalog.RawOffer, error)
	GetOffer(ctx context.Context, id int64) (*catalog.RawOffer, error)
}

// CatalogService is the fetch orchestrator: it sources products from
// the offers service, degrades to the embedded fallback dataset when
// the remote is unavailable, and runs the identical
// filter/sort/paginate pipeline in both cases. Listing fetches never
// fail from the caller's point of view.
type CatalogService struct {
	offers  OffersClient
	version atomic.Int64
}

func NewCatalogService(offers OffersClient) *CatalogService {
	return &CatalogService{offers: offers}
}

// FetchProducts returns one page of the filtered, sorted catalog.
func (s *CatalogService) FetchProducts(ctx context.Context, criteria catalog.Criteria, sortKey catalog.SortKey, page, perPage int) catalog.PageResult {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	products := s.loadProducts(ctx)
	filtered := catalog.ApplyFilters(products, criteria)
	sorted := catalog.SortProducts(filtered, sortKey)
	return catalog.Paginate(sorted, page, perPage)
}

// GetProduct looks up a single product by id, trying the remote first
// and the fallback dataset second.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	offer, err := s.offers.GetOffer(ctx, id)
	if err == nil && offer != nil {
		product := catalog.MapOfferToProduct(*offer)
		return &product, nil
	}
	if err != nil {
		logrus.WithError(err).WithField("product_id", id).
			Warn("Offer lookup failed, checking fallback dataset")
	}

	for _, product := range catalog.FallbackProducts() {
		if product.ID == id {
			return &product, nil
		}
	}
	return nil, errors.New("product not found")
}

// Version reports the current catalog version. Clients poll it as the
// "please refetch" signal after mutations such as review submissions.
func (s *CatalogService) Version() int64 {
	return s.version.Load()
}

// BumpVersion advances the catalog version.
func (s *CatalogService) BumpVersion() int64 {
	return s.version.Add(1)
}

// loadProducts sources the canonical product list. The remote branch
// and the fallback branch feed the exact same downstream pipeline,
// which is what keeps degraded mode behaviorally identical.
func (s *CatalogService) loadProducts(ctx context.Context) []models.Product {
	offers, err := s.offers.ListOffers(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Offers fetch failed, serving fallback dataset")
		return catalog.FallbackProducts()
	}
	return catalog.MapOffersToProducts(offers)
}
