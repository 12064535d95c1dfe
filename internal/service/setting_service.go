package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSettingNotFound   = fmt.Errorf("%w: setting", ErrNotFound)
	ErrSettingKeyMissing = fmt.Errorf("%w: setting key is required", ErrValidation)
)

// SettingInput 用于批量更新站点设置。
type SettingInput struct {
	Key         string
	Value       string
	Type        string
	Description string
}

// SettingService 提供站点设置的读取与批量更新能力。
type SettingService struct {
	db *gorm.DB
}

// NewSettingService 构造 SettingService。
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// List 读取全部设置，按 key 排序。
func (s *SettingService) List() ([]db.Setting, error) {
	var settings []db.Setting
	if err := s.db.Order("key").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("%w: load settings: %v", ErrUpstream, err)
	}
	return settings, nil
}

// Get 按 key 读取单个设置。
func (s *SettingService) Get(key string) (*db.Setting, error) {
	var setting db.Setting
	if err := s.db.Where("key = ?", strings.TrimSpace(key)).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return &setting, nil
}

// BulkUpsert 在单个事务内整体替换后台可编辑的设置集合。任何一个 key 写入
// 失败都会回滚整批，错误信息指明出错的 key。
func (s *SettingService) BulkUpsert(inputs []SettingInput) error {
	sanitized := make([]db.Setting, 0, len(inputs))
	for _, input := range inputs {
		key := strings.TrimSpace(input.Key)
		if key == "" {
			return ErrSettingKeyMissing
		}

		settingType := strings.ToLower(strings.TrimSpace(input.Type))
		if settingType == "" {
			settingType = db.SettingTypeText
		}
		if settingType != db.SettingTypeText && settingType != db.SettingTypeBoolean {
			return fmt.Errorf("%w: setting %s has unsupported type %q", ErrValidation, key, input.Type)
		}

		value := strings.TrimSpace(input.Value)
		if settingType == db.SettingTypeBoolean && value != "true" && value != "false" {
			return fmt.Errorf("%w: setting %s must be \"true\" or \"false\"", ErrValidation, key)
		}

		sanitized = append(sanitized, db.Setting{
			Key:         key,
			Value:       value,
			Type:        settingType,
			Description: strings.TrimSpace(input.Description),
		})
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, setting := range sanitized {
			if err := upsertSetting(tx, setting); err != nil {
				return err
			}
		}
		return nil
	})
}

// MaintenanceMode 读取维护模式开关，未配置时视为关闭。
func (s *SettingService) MaintenanceMode() (bool, error) {
	setting, err := s.Get(db.SettingKeyMaintenanceMode)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return false, nil
		}
		return false, err
	}
	return setting.Value == "true", nil
}

func upsertSetting(tx *gorm.DB, setting db.Setting) error {
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":       setting.Value,
			"type":        setting.Type,
			"description": setting.Description,
			"updated_at":  gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("%w: upsert setting %s: %v", ErrUpstream, setting.Key, err)
	}
	return nil
}
