package repository

import (
	"context"

	"gorm.io/gorm"

	"stayspots/internal/model"
)

// SpotImageRepository defines spot image persistence operations.
type SpotImageRepository interface {
	Create(ctx context.Context, image *model.SpotImage) error
	Delete(ctx context.Context, image *model.SpotImage) error
	FindByID(ctx context.Context, id uint) (*model.SpotImage, error)
	// ClearPreview drops the preview flag from every image of a spot.
	ClearPreview(ctx context.Context, spotID uint) error
	// PreviewURLs returns the preview image URL per spot id, for the given spots.
	PreviewURLs(ctx context.Context, spotIDs []uint) (map[uint]string, error)
}

type spotImageRepository struct {
	db *gorm.DB
}

// NewSpotImageRepository creates a new spot image repository.
func NewSpotImageRepository(db *gorm.DB) SpotImageRepository {
	return &spotImageRepository{db: db}
}

func (r *spotImageRepository) Create(ctx context.Context, image *model.SpotImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *spotImageRepository) Delete(ctx context.Context, image *model.SpotImage) error {
	return r.db.WithContext(ctx).Delete(image).Error
}

func (r *spotImageRepository) FindByID(ctx context.Context, id uint) (*model.SpotImage, error) {
	var image model.SpotImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *spotImageRepository) ClearPreview(ctx context.Context, spotID uint) error {
	return r.db.WithContext(ctx).Model(&model.SpotImage{}).
		Where("spot_id = ? AND preview = ?", spotID, true).
		Update("preview", false).Error
}

func (r *spotImageRepository) PreviewURLs(ctx context.Context, spotIDs []uint) (map[uint]string, error) {
	urls := make(map[uint]string, len(spotIDs))
	if len(spotIDs) == 0 {
		return urls, nil
	}

	var images []model.SpotImage
	if err := r.db.WithContext(ctx).
		Where("spot_id IN ? AND preview = ?", spotIDs, true).
		Find(&images).Error; err != nil {
		return nil, err
	}
	for _, img := range images {
		urls[img.SpotID] = img.URL
	}
	return urls, nil
}
