package repository

import (
	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) Get(key string) (string, error) {
	var c models.Configuration
	if err := r.db.Where("config_key = ?", key).First(&c).Error; err != nil {
		return "", err
	}
	return c.ConfigValue, nil
}

// GetAll returns every configuration entry as a key/value map.
func (r *ConfigRepository) GetAll() (map[string]string, error) {
	var list []models.Configuration
	if err := r.db.Find(&list).Error; err != nil {
		return nil, err
	}
	result := make(map[string]string, len(list))
	for _, c := range list {
		result[c.ConfigKey] = c.ConfigValue
	}
	return result, nil
}

// SetAll upserts every key in one transaction: existing keys are
// overwritten, unknown keys are inserted. Keyed upsert makes the input
// order irrelevant.
func (r *ConfigRepository) SetAll(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "config_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"config_value"}),
			}).Create(&models.Configuration{ConfigKey: key, ConfigValue: value}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
