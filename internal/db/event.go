package db

import (
	"time"

	"gorm.io/gorm"
)

// Event 定义了竞选活动日程模型
type Event struct {
	gorm.Model
	Title         string `gorm:"not null"`
	Slug          string `gorm:"uniqueIndex;not null"`
	Summary       string
	Content       string `gorm:"type:text"`
	Location      string `gorm:"size:255"`
	StartsAt      time.Time
	FeaturedImage string `gorm:"size:255"`
	Published     bool   `gorm:"default:false"`
}
