package models

import "gorm.io/gorm"

// ProblemSummary is derived state: one row per sector, fully recomputed
// whenever a report is created in that sector.
type ProblemSummary struct {
	gorm.Model
	SectorID uint   `json:"sectorId" gorm:"uniqueIndex"`
	Summary  string `json:"summary"`
	Problems int    `json:"problems"` // number of reports that fed the summary

	Sector Sector `gorm:"foreignKey:SectorID" json:"sector,omitempty"`
}
