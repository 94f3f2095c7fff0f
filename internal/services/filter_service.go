package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/catalog"
	"github.com/Fiderana-antemasoa/agency-et-marketpro/internal/models"
)

// FilterService is the session filter-state store: it persists each
// session's current filter selection so the storefront can restore it
// between visits, and computes the active-filter count for the UI
// badge. Persistence is best effort: corrupt or missing state reads
// back as an empty selection, never an error.
type FilterService struct {
	db *gorm.DB
}

func NewFilterService(db *gorm.DB) *FilterService {
	return &FilterService{db: db}
}

// FilterStateResponse pairs the stored criteria with the derived
// active-filter count.
type FilterStateResponse struct {
	Criteria    catalog.Criteria `json:"criteria"`
	ActiveCount int              `json:"active_count"`
}

func (s *FilterService) GetState(sessionKey string) FilterStateResponse {
	var state models.FilterState
	if err := s.db.Where("session_key = ?", sessionKey).First(&state).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).Warn("Failed to load filter state, treating as absent")
		}
		return FilterStateResponse{Criteria: catalog.Criteria{}}
	}

	criteria := decodeCriteria(state.Criteria)
	return FilterStateResponse{
		Criteria:    criteria,
		ActiveCount: criteria.ActiveCount(),
	}
}

func (s *FilterService) SaveState(sessionKey string, criteria catalog.Criteria) (FilterStateResponse, error) {
	payload, err := encodeCriteria(criteria)
	if err != nil {
		return FilterStateResponse{}, fmt.Errorf("failed to serialize criteria: %w", err)
	}

	tags := tagsColumn(criteria)
	state := models.FilterState{
		SessionKey: sessionKey,
		Criteria:   payload,
		Tags:       tags,
	}
	err = s.db.Where("session_key = ?", sessionKey).
		Assign(map[string]interface{}{"criteria": payload, "tags": tags}).
		FirstOrCreate(&state).Error
	if err != nil {
		return FilterStateResponse{}, fmt.Errorf("failed to save filter state: %w", err)
	}

	return FilterStateResponse{
		Criteria:    criteria,
		ActiveCount: criteria.ActiveCount(),
	}, nil
}

func (s *FilterService) ResetState(sessionKey string) error {
	if err := s.db.Where("session_key = ?", sessionKey).
		Delete(&models.FilterState{}).Error; err != nil {
		return fmt.Errorf("failed to reset filter state: %w", err)
	}
	return nil
}

// tagsColumn extracts the selected tags for the denormalized array
// column. An empty selection stores as an empty array, not NULL.
func tagsColumn(criteria catalog.Criteria) pq.StringArray {
	tags := make(pq.StringArray, 0, len(criteria.Tags))
	for _, tag := range criteria.Tags {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func encodeCriteria(criteria catalog.Criteria) (models.JSONB, error) {
	raw, err := json.Marshal(criteria)
	if err != nil {
		return nil, err
	}
	var payload models.JSONB
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// decodeCriteria round-trips the stored JSONB back into Criteria.
// Anything unreadable degrades to the empty selection.
func decodeCriteria(payload models.JSONB) catalog.Criteria {
	if payload == nil {
		return catalog.Criteria{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return catalog.Criteria{}
	}
	var criteria catalog.Criteria
	if err := json.Unmarshal(raw, &criteria); err != nil {
		logrus.WithError(err).Warn("Corrupt filter state, treating as absent")
		return catalog.Criteria{}
	}
	return criteria
}
