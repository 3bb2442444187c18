package models

import "gorm.io/gorm"

// ReportImage holds a storage reference (URL), never inline image bytes.
type ReportImage struct {
	gorm.Model
	URL      string `json:"url"`
	ReportID uint   `json:"reportId" gorm:"index"`
}
