package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/services"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// GET /v1/products/:id/reviews
func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "invalid product id", nil)
		return
	}

	reviews, err := h.reviewService.GetProductReviews(productID)
	if err != nil {
		utils.InternalErrorResponse(c, "failed to fetch reviews")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"reviews": reviews,
	})
}

// POST /v1/products/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "invalid product id", nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "invalid request body", err.Error())
		return
	}

	result, err := h.reviewService.CreateReview(productID, userID, &req)
	if err != nil {
		utils.InternalErrorResponse(c, "failed to submit review")
		return
	}

	// Validation outcomes ride the envelope as-is: a rejected review
	// is a structured result, not an HTTP error.
	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, utils.APIResponse{
			Success: false,
			Message: result.Message,
		})
		return
	}

	utils.CreatedResponse(c, gin.H{
		"review": result.Review,
	})
}
