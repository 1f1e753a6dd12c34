package repository

import (
	"context"

	"gorm.io/gorm"

	"stayspots/internal/model"
)

// ReviewImageRepository defines review image persistence operations.
type ReviewImageRepository interface {
	Create(ctx context.Context, image *model.ReviewImage) error
	Delete(ctx context.Context, image *model.ReviewImage) error
	FindByID(ctx context.Context, id uint) (*model.ReviewImage, error)
	CountByReview(ctx context.Context, reviewID uint) (int64, error)
}

type reviewImageRepository struct {
	db *gorm.DB
}

// NewReviewImageRepository creates a new review image repository.
func NewReviewImageRepository(db *gorm.DB) ReviewImageRepository {
	return &reviewImageRepository{db: db}
}

func (r *reviewImageRepository) Create(ctx context.Context, image *model.ReviewImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *reviewImageRepository) Delete(ctx context.Context, image *model.ReviewImage) error {
	return r.db.WithContext(ctx).Delete(image).Error
}

func (r *reviewImageRepository) FindByID(ctx context.Context, id uint) (*model.ReviewImage, error) {
	var image model.ReviewImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *reviewImageRepository) CountByReview(ctx context.Context, reviewID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ReviewImage{}).
		Where("review_id = ?", reviewID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
