package repository

import (
	"inkwell/internal/models"

	"gorm.io/gorm"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(b *models.Book) error {
	return r.db.Create(b).Error
}

func (r *BookRepository) GetByID(id uint) (*models.Book, error) {
	var b models.Book
	if err := r.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookRepository) ListByAuthor(authorID uint) ([]models.Book, error) {
	var books []models.Book
	err := r.db.Where("author_id = ?", authorID).Order("id ASC").Find(&books).Error
	return books, err
}

func (r *BookRepository) Update(b *models.Book) error {
	return r.db.Save(b).Error
}
