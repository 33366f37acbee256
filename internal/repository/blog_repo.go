package repository

import (
	"inkwell/internal/models"

	"gorm.io/gorm"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(b *models.Blog) error {
	return r.db.Create(b).Error
}

func (r *BlogRepository) GetByID(id uint) (*models.Blog, error) {
	var b models.Blog
	if err := r.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepository) GetByName(name string) (*models.Blog, error) {
	var b models.Blog
	if err := r.db.Where("name = ?", name).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByAuthor returns every blog for the author, visible or not, ordered
// by id for deterministic output.
func (r *BlogRepository) ListByAuthor(authorID uint) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Where("author_id = ?", authorID).Order("id ASC").Find(&blogs).Error
	return blogs, err
}

func (r *BlogRepository) Update(b *models.Blog) error {
	return r.db.Save(b).Error
}
