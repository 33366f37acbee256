package models

// Configuration stores site-wide key/value settings with upsert semantics.
type Configuration struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ConfigKey   string `gorm:"uniqueIndex;size:100;not null" json:"config_key"`
	ConfigValue string `gorm:"type:text;not null" json:"config_value"`
}
