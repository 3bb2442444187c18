package models

import "gorm.io/gorm"

// Subsector belongs to exactly one Sector.
type Subsector struct {
	gorm.Model
	Name     string `json:"name"`
	SectorID uint   `json:"sectorId" gorm:"index"`
}
