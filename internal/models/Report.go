package models

import "gorm.io/gorm"

// Report status lifecycle. New reports start PENDING; sector admins move
// them to UNDER_REVIEW or RESOLVED. REJECTED exists in the schema for
// moderation tooling but is not a reachable target of the status endpoint.
const (
	StatusPending     = "PENDING"
	StatusUnderReview = "UNDER_REVIEW"
	StatusResolved    = "RESOLVED"
	StatusRejected    = "REJECTED"
)

type Report struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status" gorm:"default:PENDING;index"`

	UserID      uint `json:"userId" gorm:"index"`
	SectorID    uint `json:"sectorId" gorm:"index"`
	SubsectorID uint `json:"subsectorId"`

	User      User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Sector    Sector        `gorm:"foreignKey:SectorID" json:"sector,omitempty"`
	Subsector Subsector     `gorm:"foreignKey:SubsectorID" json:"subsector,omitempty"`
	Images    []ReportImage `gorm:"foreignKey:ReportID" json:"images,omitempty"`
}
