package models

import (
	"github.com/lib/pq"
)

// FilterState persists a session's current filter selection so the
// storefront can restore it between visits. SessionKey is either an
// authenticated user id or an anonymous session id supplied by the
// client. Criteria is the serialized filter selection; corrupt or
// missing payloads are treated as "no saved filters", never an error.
// Tags denormalizes the selected tags out of the criteria blob so they
// stay queryable with array operators.
type FilterState struct {
	BaseModel
	SessionKey string         `json:"session_key" gorm:"uniqueIndex;size:100;not null"`
	Criteria   JSONB          `json:"criteria" gorm:"type:jsonb"`
	Tags       pq.StringArray `json:"tags" gorm:"type:text[]"`
}
