package models

// Product is the canonical entity the filter/sort/paginate pipeline
// operates on. Products are not persisted: they are rebuilt from the
// offers feed (or the fallback dataset) on every fetch, so this is a
// plain JSON struct rather than a gorm model. The numeric ID is the
// only identity carried across fetches.
type Product struct {
	ID               int64                  `json:"id"`
	Slug             string                 `json:"slug"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	ShortDescription string                 `json:"short_description"`
	Category         string                 `json:"category"`
	Subcategory      string                 `json:"subcategory,omitempty"`
	Brand            string                 `json:"brand,omitempty"`
	Model            string                 `json:"model,omitempty"`
	Price            float64                `json:"price"`
	Currency         Currency               `json:"currency"`
	PriceType        PriceType              `json:"price_type"`
	FeaturedImage    string                 `json:"featured_image"`
	Images           []ProductImage         `json:"images"`
	Tags             []string               `json:"tags"`
	Features         []string               `json:"features"`
	Specifications   map[string]interface{} `json:"specifications,omitempty"`
	Status           ProductStatus          `json:"status"`
	IsFeatured       bool                   `json:"is_featured"`
	IsTrending       bool                   `json:"is_trending"`
	Country          Country                `json:"country"`
	City             string                 `json:"city,omitempty"`
	Condition        Condition              `json:"condition,omitempty"`
	CreatedAt        string                 `json:"created_at"`
	UpdatedAt        string                 `json:"updated_at"`
	PublishedAt      string                 `json:"published_at,omitempty"`
	User             *SellerInfo            `json:"user,omitempty"`
	Stats            ProductStats           `json:"stats"`
}

type ProductImage struct {
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"is_primary"`
}

// SellerInfo is an embedded snapshot of the owning user, not a live
// reference to the users table.
type SellerInfo struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Avatar       string  `json:"avatar,omitempty"`
	Verified     bool    `json:"verified"`
	SellerRating float64 `json:"seller_rating"`
	ProductCount int     `json:"product_count"`
}

// ProductStats are derived aggregates, recomputed by the offer adapter
// from raw reviews when present.
type ProductStats struct {
	TotalReviews  int     `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	TotalSales    int64   `json:"total_sales"`
	ViewsCount    int64   `json:"views_count"`
}
