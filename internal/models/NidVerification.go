package models

import (
	"time"

	"gorm.io/gorm"
)

// NidVerification is the pre-loaded national ID registry. Registration is
// only allowed for IDs present here; rows are never written at runtime.
type NidVerification struct {
	gorm.Model
	Nid  string    `json:"nid" gorm:"uniqueIndex"`
	Name string    `json:"name"`
	Dob  time.Time `json:"dob"`
}
