package db

import "gorm.io/gorm"

// TeamMember 用于保存前台展示的团队与组织架构成员
// Sort 值越小越靠前
type TeamMember struct {
	gorm.Model
	Name      string `gorm:"size:120;not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	Role      string `gorm:"size:120"`
	Bio       string `gorm:"type:text"`
	PhotoURL  string `gorm:"size:255"`
	Sort      int    `gorm:"default:0"`
	Published bool   `gorm:"default:false"`
}

// TableName 返回自定义表名，避免冲突
func (TeamMember) TableName() string {
	return "team_members"
}
