package db

import "gorm.io/gorm"

// Page represents a standalone content page such as About, Vision or Mission.
type Page struct {
	gorm.Model
	Title     string `gorm:"not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	Summary   string
	Content   string `gorm:"type:text"`
	Published bool   `gorm:"default:false"`
	AuthorID  uint
	Author    User
}
