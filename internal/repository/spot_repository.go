package repository

import (
	"context"

	"gorm.io/gorm"

	"stayspots/internal/model"
)

// SpotFilter narrows and pages the spot listing query. Nil bounds are
// unconstrained.
type SpotFilter struct {
	Page     int
	Size     int
	MinLat   *float64
	MaxLat   *float64
	MinLng   *float64
	MaxLng   *float64
	MinPrice *float64
	MaxPrice *float64
}

// SpotRepository defines spot persistence operations.
type SpotRepository interface {
	Create(ctx context.Context, spot *model.Spot) error
	Save(ctx context.Context, spot *model.Spot) error
	Delete(ctx context.Context, spot *model.Spot) error
	FindByID(ctx context.Context, id uint) (*model.Spot, error)
	// FindByIDWithDetails preloads the owner and images for the detail view.
	FindByIDWithDetails(ctx context.Context, id uint) (*model.Spot, error)
	List(ctx context.Context, filter SpotFilter) ([]model.Spot, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Spot, error)
}

type spotRepository struct {
	db *gorm.DB
}

// NewSpotRepository creates a new spot repository.
func NewSpotRepository(db *gorm.DB) SpotRepository {
	return &spotRepository{db: db}
}

func (r *spotRepository) Create(ctx context.Context, spot *model.Spot) error {
	return r.db.WithContext(ctx).Create(spot).Error
}

func (r *spotRepository) Save(ctx context.Context, spot *model.Spot) error {
	return r.db.WithContext(ctx).Save(spot).Error
}

func (r *spotRepository) Delete(ctx context.Context, spot *model.Spot) error {
	return r.db.WithContext(ctx).Delete(spot).Error
}

func (r *spotRepository) FindByID(ctx context.Context, id uint) (*model.Spot, error) {
	var spot model.Spot
	if err := r.db.WithContext(ctx).First(&spot, id).Error; err != nil {
		return nil, err
	}
	return &spot, nil
}

func (r *spotRepository) FindByIDWithDetails(ctx context.Context, id uint) (*model.Spot, error) {
	var spot model.Spot
	if err := r.db.WithContext(ctx).
		Preload("OwnerUser").
		Preload("SpotImages").
		First(&spot, id).Error; err != nil {
		return nil, err
	}
	return &spot, nil
}

func (r *spotRepository) List(ctx context.Context, filter SpotFilter) ([]model.Spot, error) {
	q := r.db.WithContext(ctx).Model(&model.Spot{})

	if filter.MinLat != nil {
		q = q.Where("lat >= ?", *filter.MinLat)
	}
	if filter.MaxLat != nil {
		q = q.Where("lat <= ?", *filter.MaxLat)
	}
	if filter.MinLng != nil {
		q = q.Where("lng >= ?", *filter.MinLng)
	}
	if filter.MaxLng != nil {
		q = q.Where("lng <= ?", *filter.MaxLng)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	var spots []model.Spot
	offset := (filter.Page - 1) * filter.Size
	if err := q.Offset(offset).Limit(filter.Size).Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

func (r *spotRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Spot, error) {
	var spots []model.Spot
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}
