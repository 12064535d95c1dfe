package db

import "gorm.io/gorm"

// Post 定义了新闻/博客文章模型
type Post struct {
	gorm.Model
	Title         string `gorm:"not null"`
	Slug          string `gorm:"uniqueIndex;not null"`
	Summary       string
	Content       string `gorm:"type:text"`
	FeaturedImage string `gorm:"size:255"`
	Published     bool   `gorm:"default:false"`
	AuthorID      uint
	Author        User
}
