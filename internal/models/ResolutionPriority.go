package models

import "gorm.io/gorm"

// ResolutionPriority ranks sectors for government admins. Higher wins.
type ResolutionPriority struct {
	gorm.Model
	SectorID uint `json:"sectorId" gorm:"uniqueIndex"`
	Priority int  `json:"priority"`

	Sector Sector `gorm:"foreignKey:SectorID" json:"sector,omitempty"`
}
