package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

type ReviewService struct {
	db      *gorm.DB
	catalog *CatalogService
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewResult is the structured outcome of a review submission.
// Validation failures are results, not errors: the caller always gets
// a {success, message} pair it can hand straight to the UI.
type ReviewResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Review  *models.Review `json:"review,omitempty"`
}

func NewReviewService(db *gorm.DB, catalog *CatalogService) *ReviewService {
	return &ReviewService{
		db:      db,
		catalog: catalog,
	}
}

// ValidateReview applies the review submission rules: rating within
// [1,5] and a non-empty comment.
func ValidateReview(req *CreateReviewRequest) (bool, string) {
	if req.Rating < 1 || req.Rating > 5 {
		return false, "rating must be between 1 and 5"
	}
	if strings.TrimSpace(req.Comment) == "" {
		return false, "comment cannot be empty"
	}
	return true, ""
}

func (s *ReviewService) CreateReview(productID int64, userID uuid.UUID, req *CreateReviewRequest) (*ReviewResult, error) {
	if ok, message := ValidateReview(req); !ok {
		return &ReviewResult{Success: false, Message: message}, nil
	}

	review := &models.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.db.Preload("User").First(review, review.ID)

	// A new review changes product aggregates; signal clients to
	// refetch.
	if s.catalog != nil {
		s.catalog.BumpVersion()
	}

	return &ReviewResult{
		Success: true,
		Message: "review submitted",
		Review:  review,
	}, nil
}

func (s *ReviewService) GetProductReviews(productID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Where("product_id = ?", productID).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}
