package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/config"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/handlers"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/middleware"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/offers"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/services"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, *services.TagService) {
	// Initialize services
	offersClient := offers.NewClient(cfg.Offers)
	catalogService := services.NewCatalogService(offersClient)
	tagService := services.NewTagService(offersClient, time.Duration(cfg.Tags.CacheTTL)*time.Second)
	authService := services.NewAuthService(db, cfg)
	reviewService := services.NewReviewService(db, catalogService)
	filterService := services.NewFilterService(db)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService)
	tagHandler := handlers.NewTagHandler(tagService)
	authHandler := handlers.NewAuthHandler(authService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	filterStateHandler := handlers.NewFilterStateHandler(filterService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.GET("/profile", middleware.AuthRequired(), authHandler.GetProfile)
			auth.PUT("/profile", middleware.AuthRequired(), authHandler.UpdateProfile)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/trending", productHandler.GetTrendingProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)
			products.GET("/:id/reviews", reviewHandler.GetProductReviews)
			products.POST("/:id/reviews", middleware.AuthRequired(), reviewHandler.CreateReview)
		}

		// Tag routes
		tags := v1.Group("/tags")
		{
			tags.GET("/popular", tagHandler.GetPopularTags)
			tags.POST("/invalidate", middleware.AuthRequired(), tagHandler.InvalidateTags)
		}

		// Catalog version (cross-client "please refetch" signal)
		v1.GET("/catalog/version", productHandler.GetCatalogVersion)

		// Session filter state
		filters := v1.Group("/filters")
		filters.Use(middleware.OptionalAuth())
		{
			filters.GET("", filterStateHandler.GetFilters)
			filters.PUT("", filterStateHandler.SaveFilters)
			filters.DELETE("", filterStateHandler.ResetFilters)
		}

		// Search routes
		search := v1.Group("/search")
		{
			search.GET("/products", middleware.OptionalAuth(), productHandler.GetProducts)
		}
	}

	return r, tagService
}
