package db

import "gorm.io/gorm"

// Menu target values
const (
	MenuTargetSelf  = "_self"
	MenuTargetBlank = "_blank"
)

// MenuItem represents one entry of the site navigation. ParentID of nil
// marks a top-level item; the render surface shows at most two levels.
// SortOrder only ranks siblings sharing the same ParentID.
type MenuItem struct {
	gorm.Model
	Label     string `gorm:"size:80;not null"`
	URL       string `gorm:"size:255;not null"`
	Icon      string `gorm:"size:50"`
	SortOrder int    `gorm:"default:0;index"`
	ParentID  *uint  `gorm:"index"`
	Target    string `gorm:"size:10;default:_self"`
	Published bool   `gorm:"default:false"`
}

// IsValidMenuTarget checks if a link target value is supported.
func IsValidMenuTarget(target string) bool {
	return target == MenuTargetSelf || target == MenuTargetBlank
}
