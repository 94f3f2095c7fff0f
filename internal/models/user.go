package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Name              string     `json:"name" gorm:"size:100;not null"`
	Email             string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash      string     `json:"-" gorm:"size:255;not null"`
	Avatar            string     `json:"avatar" gorm:"size:500"`
	Verified          bool       `json:"verified" gorm:"default:false"`
	SellerRating      float64    `json:"seller_rating" gorm:"type:decimal(3,2);default:0"`
	ProductCount      int        `json:"product_count" gorm:"default:0"`
	Status            UserStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	ProfileData       JSONB      `json:"profile_data" gorm:"type:jsonb"`
	ResetToken        string     `json:"-" gorm:"size:255;index"`
	ResetTokenExpires *time.Time `json:"-"`
	LastLoginAt       *time.Time `json:"last_login_at"`

	// Relationships
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
