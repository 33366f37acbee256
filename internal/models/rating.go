package models

// Rating is one reader rating (1-5) against a blog identifier. Rows are
// append-only: never updated or deleted, and never deduplicated by reader.
// BlogID is free text rather than a foreign key so ratings survive blog
// renames and can be collected before a post exists.
type Rating struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	BlogID string `gorm:"size:100;not null;index" json:"blog_id"`
	Rating int    `gorm:"not null" json:"rating"`
	UserID *uint  `json:"user_id,omitempty"`
}
