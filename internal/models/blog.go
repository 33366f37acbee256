package models

import "time"

type Blog struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Subtitle    string     `gorm:"size:255" json:"subtitle"`
	Description string     `gorm:"type:text" json:"description"`
	Image       string     `gorm:"size:512" json:"image"`
	HTMLContent string     `gorm:"type:text" json:"html_content,omitempty"`
	Published   bool       `json:"published"`
	Name        string     `gorm:"uniqueIndex;size:255;not null" json:"name"`
	PublishDate *time.Time `gorm:"type:date" json:"publish_date"` // defaults to creation day
	Show        bool       `json:"show"`
	AuthorID    uint       `gorm:"not null;index" json:"author_id"`
}
