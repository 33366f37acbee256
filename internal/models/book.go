package models

type Book struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Title             string `gorm:"size:255;not null" json:"title"`
	Description       string `gorm:"type:text" json:"description"`
	Image             string `gorm:"size:512" json:"image"`
	Published         bool   `json:"published"`
	AmazonURL         string `gorm:"size:512" json:"amazonUrl"`
	BarnesAndNobleURL string `gorm:"size:512" json:"barnesandnobleUrl"`
	GoogleBooksURL    string `gorm:"size:512" json:"googlebooksUrl"`
	AuthorID          uint   `gorm:"not null;index" json:"author_id"`
}
