package db

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventGallery 定义了活动相册模型，Images 为按展示顺序保存的图片链接列表
type EventGallery struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"size:255"`
	EventDate   time.Time
	Images      datatypes.JSONSlice[string]
	Published   bool `gorm:"default:false"`
}

// TableName 返回自定义表名，避免冲突
func (EventGallery) TableName() string {
	return "event_galleries"
}
