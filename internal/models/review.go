package models

import (
	"github.com/google/uuid"
)

// Review is a buyer review of a catalog product. ProductID refers to
// the numeric id from the offers feed, not a local table.
type Review struct {
	BaseModel
	ProductID int64     `json:"product_id" gorm:"not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
