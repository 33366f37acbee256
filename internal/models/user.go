package models

// User is the author account. A user owns at most one Site and any number
// of blogs, books, and social links. Slug is always the deterministic
// transform of Username (see pkg/slug) and is recomputed on username change.
type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Slug         string  `gorm:"uniqueIndex;size:80;not null" json:"slug"`
	Email        *string `gorm:"uniqueIndex;size:255" json:"email"` // nil when never provided (avoids duplicate '' on unique index)
	Name         string  `gorm:"size:255" json:"name"`
	PasswordHash string  `gorm:"size:128;not null" json:"-"`
	About        string  `gorm:"type:text" json:"about,omitempty"`
	Philosophy   string  `gorm:"type:text" json:"philosophy,omitempty"`
}
