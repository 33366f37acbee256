package repository

import (
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) GetByUser(userID uint) (*models.Site, error) {
	var s models.Site
	if err := r.db.Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert writes the user's single Site row, creating it on first save.
func (r *SiteRepository) Upsert(site *models.Site) error {
	var existing models.Site
	err := r.db.Where("user_id = ?", site.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(site).Error
	}
	if err != nil {
		return err
	}
	site.ID = existing.ID
	return r.db.Save(site).Error
}
