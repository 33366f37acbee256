package models

// Site holds an author's site-wide presentation settings, one row per user.
type Site struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Title          string `gorm:"size:255" json:"title"`
	Author         string `gorm:"size:255" json:"author"` // display name, independent of User.Name
	Introduction   string `gorm:"type:text" json:"introduction"`
	Navbar         string `gorm:"size:100" json:"navbar"`
	Footer         string `gorm:"size:100" json:"footer"`
	HeroBackground string `gorm:"size:255" json:"heroBackground"`
	UserID         uint   `gorm:"uniqueIndex;not null" json:"user_id"`
}
