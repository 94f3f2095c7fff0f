package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums

type ProductStatus string

const (
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusRejected ProductStatus = "rejected"
)

type PriceType string

const (
	PriceTypeFixed        PriceType = "fixed"
	PriceTypeSubscription PriceType = "subscription"
	PriceTypeQuote        PriceType = "quote"
	PriceTypeFree         PriceType = "free"
)

type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyCHF Currency = "CHF"
)

type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like_new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
	ConditionPoor    Condition = "poor"
)

// Country is an ISO 3166-1 alpha-2 code, or CountryOther when the raw
// location could not be resolved to a supported country.
type Country string

const (
	CountryFR    Country = "FR"
	CountryUS    Country = "US"
	CountryGB    Country = "GB"
	CountryDE    Country = "DE"
	CountryCA    Country = "CA"
	CountryIT    Country = "IT"
	CountryES    Country = "ES"
	CountryCH    Country = "CH"
	CountryBE    Country = "BE"
	CountryNL    Country = "NL"
	CountryAU    Country = "AU"
	CountryJP    Country = "JP"
	CountryAE    Country = "AE"
	CountryOther Country = "OTHER"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"
)
