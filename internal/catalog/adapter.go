// Package catalog implements the product pipeline the storefront is
// built on: mapping raw offer records into canonical products, then
// filtering, sorting and paginating the resulting collection in memory.
package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

const shortDescriptionLength = 120

// FlexFloat tolerates numbers encoded as JSON numbers, numeric strings
// or null. Anything unusable decodes to 0: one bad field must degrade
// that field only, never the whole record.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = 0
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		*f = FlexFloat(v)
	}
	return nil
}

// FlexInt is the integer counterpart of FlexFloat.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = FlexInt(f)
	return nil
}

// RawOffer is the loosely-typed boundary record coming from the offers
// service. Its shape is not controlled by this system, so every field
// is optional and numeric fields tolerate string encodings. Nothing of
// this type leaks past MapOfferToProduct.
type RawOffer struct {
	ID             FlexInt                `json:"id"`
	Slug           string                 `json:"slug"`
	Title          string                 `json:"title"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Category       string                 `json:"category"`
	Subcategory    string                 `json:"subcategory"`
	Brand          string                 `json:"brand"`
	Model          string                 `json:"model"`
	Price          FlexFloat              `json:"price"`
	Currency       string                 `json:"currency"`
	PriceType      string                 `json:"price_type"`
	Images         []RawImage             `json:"images"`
	Image          string                 `json:"image"`
	ImageURL       string                 `json:"image_url"`
	FeaturedImage  string                 `json:"featured_image"`
	Tags           []string               `json:"tags"`
	Features       []string               `json:"features"`
	Specifications map[string]interface{} `json:"specifications"`
	Status         string                 `json:"status"`
	IsFeatured     bool                   `json:"is_featured"`
	IsTrending     bool                   `json:"is_trending"`
	Localisation   string                 `json:"localisation"`
	Location       string                 `json:"location"`
	Country        string                 `json:"country"`
	City           string                 `json:"city"`
	Condition      string                 `json:"condition"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
	PublishedAt    string                 `json:"published_at"`
	User           *RawSeller             `json:"user"`
	Reviews        []RawReview            `json:"reviews"`
	SalesCount     *FlexInt               `json:"sales_count"`
	Stats          *RawStats              `json:"stats"`
}

type RawImage struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"is_primary"`
}

type RawSeller struct {
	ID           FlexInt   `json:"id"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar"`
	Verified     bool      `json:"verified"`
	SellerRating FlexFloat `json:"seller_rating"`
	ProductCount FlexInt   `json:"product_count"`
}

type RawReview struct {
	Rating  FlexFloat `json:"rating"`
	Comment string    `json:"comment"`
}

type RawStats struct {
	TotalReviews  FlexInt   `json:"total_reviews"`
	AverageRating FlexFloat `json:"average_rating"`
	TotalSales    FlexInt   `json:"total_sales"`
	ViewsCount    FlexInt   `json:"views_count"`
}

var slugStripRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the input and collapses every run of
// non-alphanumeric characters into a single hyphen.
func Slugify(s string) string {
	slug := slugStripRe.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// MapOfferToProduct normalizes a raw offer into the canonical Product.
// It is total: missing or malformed fields get defensible defaults and
// the function never fails.
func MapOfferToProduct(offer RawOffer) models.Product {
	title := strings.TrimSpace(offer.Title)
	if title == "" {
		title = strings.TrimSpace(offer.Name)
	}

	slug := strings.TrimSpace(offer.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		slug = fmt.Sprintf("offer-%d", offer.ID)
	}

	price := float64(offer.Price)
	if price < 0 {
		price = 0
	}

	product := models.Product{
		ID:               int64(offer.ID),
		Slug:             slug,
		Title:            title,
		Description:      offer.Description,
		ShortDescription: truncate(offer.Description, shortDescriptionLength),
		Category:         strings.TrimSpace(offer.Category),
		Subcategory:      strings.TrimSpace(offer.Subcategory),
		Model:            strings.TrimSpace(offer.Model),
		Price:            price,
		Currency:         parseCurrency(offer.Currency),
		PriceType:        parsePriceType(offer.PriceType),
		Tags:             normalizeTags(offer.Tags),
		Features:         offer.Features,
		Specifications:   offer.Specifications,
		Status:           parseStatus(offer.Status),
		IsFeatured:       offer.IsFeatured,
		IsTrending:       offer.IsTrending,
		Condition:        parseCondition(offer.Condition),
		CreatedAt:        offer.CreatedAt,
		UpdatedAt:        offer.UpdatedAt,
		PublishedAt:      offer.PublishedAt,
	}
	if product.Features == nil {
		product.Features = []string{}
	}

	product.Brand = DeriveBrand(offer.Brand, product.Tags, title)
	product.City, product.Country = resolveLocation(offer)
	product.Images, product.FeaturedImage = resolveImages(offer)
	product.Stats = deriveStats(offer)
	product.User = mapSeller(offer.User)

	return product
}

// MapOffersToProducts maps a whole feed, skipping nothing: the adapter
// is total, so every record yields a product.
func MapOffersToProducts(offers []RawOffer) []models.Product {
	products := make([]models.Product, 0, len(offers))
	for _, offer := range offers {
		products = append(products, MapOfferToProduct(offer))
	}
	return products
}

// DecodeOffers parses an offers payload, tolerating both a bare array
// and a {data: [...]} envelope.
func DecodeOffers(payload []byte) ([]RawOffer, error) {
	var offers []RawOffer
	if err := json.Unmarshal(payload, &offers); err == nil {
		return offers, nil
	}

	var envelope struct {
		Data []RawOffer `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode offers payload: %w", err)
	}
	return envelope.Data, nil
}

// DecodeOffer parses a single-offer payload, tolerating both a bare
// object and a {data: {...}} envelope.
func DecodeOffer(payload []byte) (*RawOffer, error) {
	var envelope struct {
		Data *RawOffer `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var offer RawOffer
	if err := json.Unmarshal(payload, &offer); err != nil {
		return nil, fmt.Errorf("failed to decode offer payload: %w", err)
	}
	return &offer, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// normalizeTags trims entries and drops case-insensitive duplicates,
// keeping the first spelling seen.
func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, tag)
	}
	return result
}

func resolveLocation(offer RawOffer) (string, models.Country) {
	location := strings.TrimSpace(offer.Localisation)
	if location == "" {
		location = strings.TrimSpace(offer.Location)
	}

	city := strings.TrimSpace(offer.City)
	if city == "" {
		city = location
	}

	if country, ok := LookupCountry(location); ok {
		return city, country
	}
	if country, ok := LookupCountry(offer.Country); ok {
		return city, country
	}
	return city, models.CountryOther
}

func resolveImages(offer RawOffer) ([]models.ProductImage, string) {
	if len(offer.Images) > 0 {
		images := make([]models.ProductImage, 0, len(offer.Images))
		featured := ""
		for _, img := range offer.Images {
			images = append(images, models.ProductImage{
				URL:       img.URL,
				Alt:       img.Alt,
				IsPrimary: img.IsPrimary,
			})
			if featured == "" && img.IsPrimary {
				featured = img.URL
			}
		}
		if featured == "" {
			featured = images[0].URL
		}
		return images, featured
	}

	// No image list: synthesize a single primary image from whichever
	// single-image field the feed happened to use.
	for _, url := range []string{offer.FeaturedImage, offer.Image, offer.ImageURL} {
		if url != "" {
			return []models.ProductImage{{URL: url, IsPrimary: true}}, url
		}
	}
	return []models.ProductImage{}, ""
}

func deriveStats(offer RawOffer) models.ProductStats {
	stats := models.ProductStats{}

	// Review aggregates come from the raw reviews alone. Without them
	// both stay zero; the nested stats block only ever contributes
	// sales and view counts.
	if len(offer.Reviews) > 0 {
		sum := 0.0
		for _, review := range offer.Reviews {
			sum += float64(review.Rating)
		}
		stats.TotalReviews = len(offer.Reviews)
		stats.AverageRating = sum / float64(len(offer.Reviews))
	}
	if stats.AverageRating < 0 {
		stats.AverageRating = 0
	}
	if stats.AverageRating > 5 {
		stats.AverageRating = 5
	}

	switch {
	case offer.SalesCount != nil:
		stats.TotalSales = int64(*offer.SalesCount)
	case offer.Stats != nil:
		stats.TotalSales = int64(offer.Stats.TotalSales)
	}
	if offer.Stats != nil {
		stats.ViewsCount = int64(offer.Stats.ViewsCount)
	}

	return stats
}

func mapSeller(seller *RawSeller) *models.SellerInfo {
	if seller == nil {
		return nil
	}
	return &models.SellerInfo{
		ID:           int64(seller.ID),
		Name:         seller.Name,
		Avatar:       seller.Avatar,
		Verified:     seller.Verified,
		SellerRating: float64(seller.SellerRating),
		ProductCount: int(seller.ProductCount),
	}
}

func parseCurrency(s string) models.Currency {
	switch models.Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case models.CurrencyUSD:
		return models.CurrencyUSD
	case models.CurrencyGBP:
		return models.CurrencyGBP
	case models.CurrencyCHF:
		return models.CurrencyCHF
	default:
		return models.CurrencyEUR
	}
}

func parsePriceType(s string) models.PriceType {
	switch models.PriceType(strings.ToLower(strings.TrimSpace(s))) {
	case models.PriceTypeSubscription:
		return models.PriceTypeSubscription
	case models.PriceTypeQuote:
		return models.PriceTypeQuote
	case models.PriceTypeFree:
		return models.PriceTypeFree
	default:
		return models.PriceTypeFixed
	}
}

func parseStatus(s string) models.ProductStatus {
	switch models.ProductStatus(strings.ToLower(strings.TrimSpace(s))) {
	case models.ProductStatusDraft:
		return models.ProductStatusDraft
	case models.ProductStatusInactive:
		return models.ProductStatusInactive
	case models.ProductStatusPending:
		return models.ProductStatusPending
	case models.ProductStatusRejected:
		return models.ProductStatusRejected
	default:
		// A listed offer without a recognizable status is live.
		return models.ProductStatusActive
	}
}

func parseCondition(s string) models.Condition {
	switch models.Condition(strings.ToLower(strings.TrimSpace(s))) {
	case models.ConditionNew:
		return models.ConditionNew
	case models.ConditionLikeNew:
		return models.ConditionLikeNew
	case models.ConditionGood:
		return models.ConditionGood
	case models.ConditionFair:
		return models.ConditionFair
	case models.ConditionPoor:
		return models.ConditionPoor
	default:
		return ""
	}
}
