package catalog

import (
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

// FallbackProducts returns the embedded dataset served when the offers
// service is unreachable. The list is fixed and already canonical: it
// goes through the exact same filter/sort/paginate pipeline as live
// data, so degraded mode behaves identically to normal mode.
func FallbackProducts() []models.Product {
	products := make([]models.Product, len(fallbackDataset))
	copy(products, fallbackDataset)
	return products
}

var fallbackDataset = []models.Product{
	{
		ID:               9001,
		Slug:             "kit-ui-saas-figma",
		Title:            "Kit UI SaaS complet pour Figma",
		Description:      "Plus de 300 composants prêts à l'emploi pour concevoir un dashboard SaaS moderne. Inclut les variantes sombres et claires, la grille responsive et une bibliothèque d'icônes.",
		ShortDescription: "Plus de 300 composants prêts à l'emploi pour concevoir un dashboard SaaS moderne. Inclut les variantes sombres et clair",
		Category:         "design",
		Subcategory:      "ui-kit",
		Brand:            "Figma",
		Price:            59,
		Currency:         models.CurrencyEUR,
		PriceType:        models.PriceTypeFixed,
		FeaturedImage:    "https://cdn.marketpro.dev/products/ui-kit-saas.jpg",
		Images: []models.ProductImage{
			{URL: "https://cdn.marketpro.dev/products/ui-kit-saas.jpg", Alt: "Kit UI SaaS", IsPrimary: true},
		},
		Tags:       []string{"design", "figma", "ui-kit"},
		Features:   []string{"300+ composants", "Mode sombre", "Auto-layout"},
		Status:     models.ProductStatusActive,
		IsFeatured: true,
		IsTrending: true,
		Country:    models.CountryFR,
		City:       "Paris",
		CreatedAt:  "2025-06-02T09:15:00Z",
		UpdatedAt:  "2025-07-18T14:00:00Z",
		User: &models.SellerInfo{
			ID: 41, Name: "Claire Dubois", Verified: true, SellerRating: 4.9, ProductCount: 12,
		},
		Stats: models.ProductStats{TotalReviews: 87, AverageRating: 4.8, TotalSales: 412, ViewsCount: 10234},
	},
	{
		ID:               9002,
		Slug:             "formation-react-typescript",
		Title:            "Formation React et TypeScript avancée",
		Description:      "12 heures de vidéo pour maîtriser React 18, les hooks avancés et le typage strict avec TypeScript. Projets pratiques inclus avec code source complet.",
		ShortDescription: "12 heures de vidéo pour maîtriser React 18, les hooks avancés et le typage strict avec TypeScript. Projets pratiques in",
		Category:         "formation",
		Subcategory:      "developpement",
		Brand:            "React",
		Price:            149,
		Currency:         models.CurrencyEUR,
		PriceType:        models.PriceTypeFixed,
		FeaturedImage:    "https://cdn.marketpro.dev/products/formation-react.jpg",
		Images: []models.ProductImage{
			{URL: "https://cdn.marketpro.dev/products/formation-react.jpg", Alt: "Formation React", IsPrimary: true},
		},
		Tags:       []string{"react", "typescript", "formation"},
		Features:   []string{"12h de vidéo", "Code source", "Accès à vie"},
		Status:     models.ProductStatusActive,
		IsTrending: true,
		Country:    models.CountryBE,
		City:       "Bruxelles",
		CreatedAt:  "2025-05-21T08:00:00Z",
		UpdatedAt:  "2025-07-02T10:30:00Z",
		User: &models.SellerInfo{
			ID: 17, Name: "Mathieu Lambert", Verified: true, SellerRating: 4.7, ProductCount: 5,
		},
		Stats: models.ProductStats{TotalReviews: 203, AverageRating: 4.6, TotalSales: 958, ViewsCount: 22410},
	},
	{
		ID:               9003,
		Slug:             "macbook-pro-14-m3",
		Title:            "MacBook Pro 14 pouces M3",
		Description:      "MacBook Pro 14\" puce M3, 16 Go de RAM, SSD 512 Go. Très bon état, facture d'origine et garantie constructeur jusqu'en mars prochain. Livraison soignée.",
		ShortDescription: "MacBook Pro 14\" puce M3, 16 Go de RAM, SSD 512 Go. Très bon état, facture d'origine et garantie constructeur jusqu'en m",
		Category:         "electronique",
		Subcategory:      "ordinateurs",
		Brand:            "Apple",
		Model:            "MacBook Pro 14 M3",
		Price:            1690,
		Currency:         models.CurrencyEUR,
		PriceType:        models.PriceTypeFixed,
		FeaturedImage:    "https://cdn.marketpro.dev/products/macbook-m3.jpg",
		Images: []models.ProductImage{
			{URL: "https://cdn.marketpro.dev/products/macbook-m3.jpg", Alt: "MacBook Pro M3", IsPrimary: true},
			{URL: "https://cdn.marketpro.dev/products/macbook-m3-2.jpg", Alt: "MacBook Pro M3 ouvert", IsPrimary: false},
		},
		Tags:      []string{"apple", "occasion", "garantie"},
		Features:  []string{"Puce M3", "16 Go RAM", "SSD 512 Go"},
		Status:    models.ProductStatusActive,
		Condition: models.ConditionLikeNew,
		Country:   models.CountryFR,
		City:      "Lyon",
		CreatedAt: "2025-07-11T16:45:00Z",
		UpdatedAt: "2025-07-11T16:45:00Z",
		User: &models.SellerInfo{
			ID: 88, Name: "Sophie Renard", Verified: false, SellerRating: 4.2, ProductCount: 3,
		},
		Stats: models.ProductStats{TotalReviews: 6, AverageRating: 4.3, TotalSales: 1, ViewsCount: 742},
	},
	{
		ID:               9004,
		Slug:             "audit-seo-complet",
		Title:            "Audit SEO complet de votre site",
		Description:      "Analyse technique et sémantique complète : crawl, vitesse, maillage interne, backlinks et plan d'action priorisé sur 90 jours. Rapport détaillé sous 5 jours ouvrés.",
		ShortDescription: "Analyse technique et sémantique complète : crawl, vitesse, maillage interne, backlinks et plan d'action priorisé sur 90",
		Category:         "marketing",
		Subcategory:      "seo",
		Price:            350,
		Currency:         models.CurrencyEUR,
		PriceType:        models.PriceTypeQuote,
		FeaturedImage:    "https://cdn.marketpro.dev/products/audit-seo.jpg",
		Images: []models.ProductImage{
			{URL: "https://cdn.marketpro.dev/products/audit-seo.jpg", Alt: "Audit SEO", IsPrimary: true},
		},
		Tags:       []string{"seo", "marketing", "consultation"},
		Features:   []string{"Rapport 40 pages", "Plan d'action 90 jours"},
		Status:     models.ProductStatusActive,
		IsFeatured: true,
		Country:    models.CountryCH,
		City:       "Genève",
		CreatedAt:  "2025-04-30T11:20:00Z",
		UpdatedAt:  "2025-06-25T09:05:00Z",
		User: &models.SellerInfo{
			ID: 52, Name: "Julien Moreau", Verified: true, SellerRating: 4.8, ProductCount: 8,
		},
		Stats: models.ProductStats{TotalReviews: 44, AverageRating: 4.7, TotalSales: 129, ViewsCount: 5613},
	},
	{
		ID:               9005,
		Slug:             "galaxy-s23-ultra-256",
		Title:            "Samsung Galaxy S23 Ultra 256 Go",
		Description:      "Galaxy S23 Ultra noir, 256 Go, débloqué tout opérateur. Écran impeccable, micro-rayures sur le cadre. Vendu avec chargeur et coque d'origine.",
		ShortDescription: "Galaxy S23 Ultra noir, 256 Go, débloqué tout opérateur. Écran impeccable, micro-rayures sur le cadre. Vendu avec charge",
		Category:         "electronique",
		Subcategory:      "smartphones",
		Brand:            "Samsung",
		Model:            "Galaxy S23 Ultra",
		Price:            720,
		Currency:         models.CurrencyEUR,
		PriceType:        models.PriceTypeFixed,
		FeaturedImage:    "https://cdn.marketpro.dev/products/galaxy-s23.jpg",
		Images: []models.ProductImage{
			{URL: "https://cdn.marketpro.dev/products/galaxy-s23.jpg", Alt: "Galaxy S23 Ultra", IsPrimary: true},
		},
		Tags:      []string{"samsung", "occasion", "livraison"},
		Features:  []string{"256 Go", "Débloqué", "Chargeur inclus"},
		Status:    models.ProductStatusActive,
		Condition: models.ConditionGood,
		Country:   models.CountryBE,
		City:      "Bruxelles",
		CreatedAt: "2025-07-01T19:30:00Z",
		UpdatedAt: "2025-07-05T08:10:00Z",
		User: &models.SellerInfo{
			ID: 73, Name: "Nadia Petit", Verified: false, SellerRating: 3.9, ProductCount: 2,
		},
		Stats: models.ProductStats{TotalReviews: 2, AverageRating: 4.0, TotalSales: 0, ViewsCount: 318},
	},
	{
		ID:               9006,
		Slug:             "maintenance-wordpress-mensuelle",
		Title:            "Maintenance WordPress mensuelle",
		Description:      "Mises à jour, sauvegardes quotidiennes, surveillance de disponibilité et deux heures de petites évolutions chaque mois. Résiliable à tout moment.",
		ShortDescription: "Mises à jour, sauvegardes quotidiennes, surveillance de disponibilité et deux heures de petites évolutions chaque mois.",
		Category:         "developpement",
		Subcategory:      "wordpress",
		Brand:            "WordPress",
		Price:            89,
		Currency:         models.CurrencyEUR,
		PriceType:        models.PriceTypeSubscription,
		FeaturedImage:    "https://cdn.marketpro.dev/products/maintenance-wp.jpg",
		Images: []models.ProductImage{
			{URL: "https://cdn.marketpro.dev/products/maintenance-wp.jpg", Alt: "Maintenance WordPress", IsPrimary: true},
		},
		Tags:      []string{"développement", "wordpress", "maintenance"},
		Features:  []string{"Sauvegardes quotidiennes", "Surveillance 24/7"},
		Status:    models.ProductStatusActive,
		Country:   models.CountryCA,
		City:      "Montréal",
		CreatedAt: "2025-03-14T07:50:00Z",
		UpdatedAt: "2025-07-20T12:40:00Z",
		User: &models.SellerInfo{
			ID: 29, Name: "Antoine Girard", Verified: true, SellerRating: 4.5, ProductCount: 6,
		},
		Stats: models.ProductStats{TotalReviews: 31, AverageRating: 4.4, TotalSales: 77, ViewsCount: 2980},
	},
	{
		ID:               9007,
		Slug:             "pack-icones-3d-premium",
		Title:            "Pack d'icônes 3D premium",
		Description:      "450 icônes 3D rendues en haute résolution, livrées en PNG transparent et fichiers Blender sources. Licence commerciale incluse.",
		ShortDescription: "450 icônes 3D rendues en haute résolution, livrées en PNG transparent et fichiers Blender sources. Licence commerciale",
		Category:         "design",
		Subcategory:      "illustrations",
		Brand:            "Blender",
		Price:            0,
		Currency:         models.CurrencyEUR,
		PriceType:        models.PriceTypeFree,
		FeaturedImage:    "https://cdn.marketpro.dev/products/icones-3d.jpg",
		Images: []models.ProductImage{
			{URL: "https://cdn.marketpro.dev/products/icones-3d.jpg", Alt: "Icônes 3D", IsPrimary: true},
		},
		Tags:       []string{"design", "3d", "gratuit"},
		Features:   []string{"450 icônes", "Fichiers sources", "Licence commerciale"},
		Status:     models.ProductStatusActive,
		IsTrending: true,
		Country:    models.CountryGB,
		City:       "London",
		CreatedAt:  "2025-06-28T13:05:00Z",
		UpdatedAt:  "2025-06-28T13:05:00Z",
		User: &models.SellerInfo{
			ID: 64, Name: "Emma Wright", Verified: true, SellerRating: 4.6, ProductCount: 9,
		},
		Stats: models.ProductStats{TotalReviews: 154, AverageRating: 4.5, TotalSales: 2310, ViewsCount: 45120},
	},
	{
		ID:               9008,
		Slug:             "campagne-ads-cle-en-main",
		Title:            "Campagne Google Ads clé en main",
		Description:      "Création, structuration et optimisation de votre première campagne Google Ads : recherche de mots-clés, rédaction des annonces et suivi des conversions pendant 30 jours.",
		ShortDescription: "Création, structuration et optimisation de votre première campagne Google Ads : recherche de mots-clés, rédaction des a",
		Category:         "marketing",
		Subcategory:      "publicite",
		Brand:            "Google",
		Price:            480,
		Currency:         models.CurrencyEUR,
		PriceType:        models.PriceTypeFixed,
		FeaturedImage:    "https://cdn.marketpro.dev/products/google-ads.jpg",
		Images: []models.ProductImage{
			{URL: "https://cdn.marketpro.dev/products/google-ads.jpg", Alt: "Campagne Google Ads", IsPrimary: true},
		},
		Tags:       []string{"marketing", "publicité", "google"},
		Features:   []string{"Mots-clés inclus", "30 jours de suivi"},
		Status:     models.ProductStatusActive,
		IsFeatured: true,
		Country:    models.CountryFR,
		City:       "Bordeaux",
		CreatedAt:  "2025-05-09T10:00:00Z",
		UpdatedAt:  "2025-07-15T17:25:00Z",
		User: &models.SellerInfo{
			ID: 35, Name: "Laura Fontaine", Verified: true, SellerRating: 4.9, ProductCount: 4,
		},
		Stats: models.ProductStats{TotalReviews: 58, AverageRating: 4.8, TotalSales: 164, ViewsCount: 7204},
	},
}
