package config

import (
	"time"

	"gorm.io/gorm"

	"nagorik_desk/internal/models"
)

// Seed loads the static reference data: the sector/subsector classification
// tree, the NID registry, and the resolution priority ranking. It only runs
// against an empty database so restarts do not duplicate rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Sector{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sectors := []struct {
		name        string
		description string
		priority    int
		subsectors  []string
	}{
		{"Health", "Hospitals, clinics and public health services", 90,
			[]string{"Hospitals", "Primary Care", "Medicine Supply"}},
		{"Education", "Schools, colleges and education administration", 80,
			[]string{"Primary Schools", "Secondary Schools", "Higher Education"}},
		{"Transport", "Roads, bridges and public transport", 70,
			[]string{"Roads", "Bridges", "Public Transit"}},
		{"Utilities", "Electricity, water and gas supply", 60,
			[]string{"Electricity", "Water Supply", "Gas Supply"}},
		{"Law Enforcement", "Police and public safety services", 50,
			[]string{"Police", "Traffic Control", "Emergency Response"}},
	}

	for _, s := range sectors {
		sector := models.Sector{Name: s.name, Description: s.description}
		for _, sub := range s.subsectors {
			sector.Subsectors = append(sector.Subsectors, models.Subsector{Name: sub})
		}
		if err := db.Create(&sector).Error; err != nil {
			return err
		}
		priority := models.ResolutionPriority{SectorID: sector.ID, Priority: s.priority}
		if err := db.Create(&priority).Error; err != nil {
			return err
		}
	}

	nids := []models.NidVerification{
		{Nid: "1990123456789", Name: "Abdul Karim", Dob: date(1990, 1, 15)},
		{Nid: "1985987654321", Name: "Fatema Begum", Dob: date(1985, 6, 30)},
		{Nid: "2000555666777", Name: "Rahim Uddin", Dob: date(2000, 12, 1)},
	}
	return db.Create(&nids).Error
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
