package models

import "gorm.io/gorm"

// Sector is a top-level government classification (reference data).
type Sector struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`

	Subsectors []Subsector `gorm:"foreignKey:SectorID" json:"subsectors,omitempty"`
}
