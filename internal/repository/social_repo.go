package repository

import (
	"inkwell/internal/models"

	"gorm.io/gorm"
)

type SocialLinkRepository struct {
	db *gorm.DB
}

func NewSocialLinkRepository(db *gorm.DB) *SocialLinkRepository {
	return &SocialLinkRepository{db: db}
}

func (r *SocialLinkRepository) Create(l *models.SocialLink) error {
	return r.db.Create(l).Error
}

func (r *SocialLinkRepository) GetByID(id uint) (*models.SocialLink, error) {
	var l models.SocialLink
	if err := r.db.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *SocialLinkRepository) ListByUser(userID uint) ([]models.SocialLink, error) {
	var links []models.SocialLink
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&links).Error
	return links, err
}

func (r *SocialLinkRepository) Update(l *models.SocialLink) error {
	return r.db.Save(l).Error
}
