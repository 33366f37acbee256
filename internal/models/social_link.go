package models

type SocialLink struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	URL    string `gorm:"size:512;not null" json:"url"`
	Icon   string `gorm:"size:255" json:"icon"`
	Color  string `gorm:"size:100" json:"color"`
	UserID *uint  `gorm:"index" json:"user_id,omitempty"`
}
