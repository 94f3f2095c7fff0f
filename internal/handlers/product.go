package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/catalog"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/services"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// GET /v1/products
//
// Listing never returns an error: when the offers service is down the
// catalog serves its fallback dataset through the same pipeline.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	query := utils.GetListQuery(c)
	result := h.catalogService.FetchProducts(
		c.Request.Context(), query.Criteria, query.Sort, query.Page, query.PerPage)
	utils.SuccessResponse(c, result)
}

// GET /v1/products/featured
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	h.flaggedList(c, catalog.Criteria{IsFeatured: true})
}

// GET /v1/products/trending
func (h *ProductHandler) GetTrendingProducts(c *gin.Context) {
	h.flaggedList(c, catalog.Criteria{IsTrending: true})
}

func (h *ProductHandler) flaggedList(c *gin.Context, criteria catalog.Criteria) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))
	if limit < 1 || limit > utils.MaxPerPage {
		limit = 8
	}

	result := h.catalogService.FetchProducts(
		c.Request.Context(), criteria, catalog.SortByCreatedAt, 1, limit)
	utils.SuccessResponse(c, gin.H{
		"products": result.Data,
	})
}

// GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "invalid product id", nil)
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		utils.NotFoundResponse(c, "product not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// GET /v1/catalog/version
func (h *ProductHandler) GetCatalogVersion(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"version": h.catalogService.Version(),
	})
}
