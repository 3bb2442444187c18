package models

import "gorm.io/gorm"

// Role values carried on User.Role and inside JWT claims.
const (
	RoleEndUser     = "END_USER"
	RoleSectorAdmin = "SECTOR_ADMIN"
	RoleGovtAdmin   = "GOVT_ADMIN"
)

type User struct {
	gorm.Model
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	Phone        string `json:"phone" gorm:"uniqueIndex"`
	Password     string `json:"-"`
	Nid          string `json:"nid" gorm:"uniqueIndex"`
	IsRegistered bool   `json:"isRegistered"`
	Role         string `json:"role" gorm:"default:END_USER"` // END_USER, SECTOR_ADMIN, GOVT_ADMIN

	Reports []Report `gorm:"foreignKey:UserID" json:"reports,omitempty"`
}
