package repository

import (
	"inkwell/internal/models"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// Summary holds the aggregate for one blog identifier. Average is nil when
// no ratings exist, which is a valid state rather than an error.
type Summary struct {
	Average *float64 `json:"average"`
	Count   int64    `json:"count"`
}

// Summarize computes count and arithmetic mean over all stored ratings for
// blogID. The mean is a plain float division of sum/count with no rounding;
// presentation rounding is the caller's concern.
func (r *RatingRepository) Summarize(blogID string) (*Summary, error) {
	var agg struct {
		Count int64
		Sum   int64
	}
	err := r.db.Model(&models.Rating{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum").
		Where("blog_id = ?", blogID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	summary := &Summary{Count: agg.Count}
	if agg.Count > 0 {
		avg := float64(agg.Sum) / float64(agg.Count)
		summary.Average = &avg
	}
	return summary, nil
}
