package db

import "gorm.io/gorm"

// Setting 存储后台可配置的站点级键值对，Type 决定后台表单与前台消费方式
type Setting struct {
	gorm.Model
	Key         string `gorm:"size:100;uniqueIndex;not null"`
	Value       string `gorm:"type:text"`
	Type        string `gorm:"size:20;default:text"`
	Description string `gorm:"size:255"`
}

// TableName 自定义表名以保持命名一致。
func (Setting) TableName() string {
	return "settings"
}

// Setting value types
const (
	SettingTypeText    = "text"
	SettingTypeBoolean = "boolean"
)

const (
	// SettingKeySiteName 表示站点名称。
	SettingKeySiteName = "site_name"
	// SettingKeySiteLogoURL 表示站点 Logo 链接。
	SettingKeySiteLogoURL = "site_logo_url"
	// SettingKeyMaintenanceMode 表示前台维护模式开关。
	SettingKeyMaintenanceMode = "maintenance_mode"
	// SettingKeyFacebookURL 表示 Facebook 主页链接。
	SettingKeyFacebookURL = "facebook_url"
	// SettingKeyTwitterURL 表示 Twitter/X 主页链接。
	SettingKeyTwitterURL = "twitter_url"
	// SettingKeyContactEmail 表示联系邮箱。
	SettingKeyContactEmail = "contact_email"
)
