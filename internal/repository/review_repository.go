package repository

import (
	"context"

	"gorm.io/gorm"

	"stayspots/internal/model"
)

// RatingAggregate is the review rollup for one spot.
type RatingAggregate struct {
	SpotID     uint
	NumReviews int64
	// AvgStars is nil when the spot has no reviews.
	AvgStars *float64
}

// ReviewRepository defines review persistence operations, including the
// on-demand rating aggregation used by spot reads.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	Save(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id uint) (*model.Review, error)
	FindBySpotAndUser(ctx context.Context, spotID, userID uint) (*model.Review, error)
	ListBySpot(ctx context.Context, spotID uint) ([]model.Review, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Review, error)
	Aggregate(ctx context.Context, spotID uint) (RatingAggregate, error)
	AggregateMany(ctx context.Context, spotIDs []uint) (map[uint]RatingAggregate, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) Save(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Delete(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindBySpotAndUser(ctx context.Context, spotID, userID uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).
		Where("spot_id = ? AND user_id = ?", spotID, userID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListBySpot(ctx context.Context, spotID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("ReviewImages").
		Where("spot_id = ?", spotID).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Spot").
		Preload("ReviewImages").
		Where("user_id = ?", userID).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

type ratingRow struct {
	SpotID     uint
	NumReviews int64
	AvgStars   *float64
}

func (r *reviewRepository) Aggregate(ctx context.Context, spotID uint) (RatingAggregate, error) {
	var row ratingRow
	if err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("spot_id AS spot_id, COUNT(id) AS num_reviews, AVG(stars) AS avg_stars").
		Where("spot_id = ?", spotID).
		Group("spot_id").
		Scan(&row).Error; err != nil {
		return RatingAggregate{}, err
	}
	return RatingAggregate{SpotID: spotID, NumReviews: row.NumReviews, AvgStars: row.AvgStars}, nil
}

func (r *reviewRepository) AggregateMany(ctx context.Context, spotIDs []uint) (map[uint]RatingAggregate, error) {
	aggregates := make(map[uint]RatingAggregate, len(spotIDs))
	if len(spotIDs) == 0 {
		return aggregates, nil
	}

	var rows []ratingRow
	if err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("spot_id AS spot_id, COUNT(id) AS num_reviews, AVG(stars) AS avg_stars").
		Where("spot_id IN ?", spotIDs).
		Group("spot_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		aggregates[row.SpotID] = RatingAggregate{
			SpotID:     row.SpotID,
			NumReviews: row.NumReviews,
			AvgStars:   row.AvgStars,
		}
	}
	return aggregates, nil
}
