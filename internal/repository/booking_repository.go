package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayspots/internal/model"
)

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	Save(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id uint) (*model.Booking, error)
	// ListByUser preloads each booking's spot for the current-user listing.
	ListByUser(ctx context.Context, userID uint) ([]model.Booking, error)
	ListBySpot(ctx context.Context, spotID uint, withBooker bool) ([]model.Booking, error)
	// WithSpotLock runs fn inside a transaction that holds a row lock on the
	// spot, serializing concurrent conflict-check-then-write sequences for
	// that spot. fn receives a transaction-scoped repository.
	WithSpotLock(ctx context.Context, spotID uint, fn func(repo BookingRepository) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) Save(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) Delete(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Delete(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Preload("Spot").
		Where("user_id = ?", userID).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListBySpot(ctx context.Context, spotID uint, withBooker bool) ([]model.Booking, error) {
	q := r.db.WithContext(ctx).Where("spot_id = ?", spotID)
	if withBooker {
		q = q.Preload("Booker")
	}
	var bookings []model.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) WithSpotLock(ctx context.Context, spotID uint, fn func(repo BookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var spot model.Spot
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&spot, spotID).Error; err != nil {
			return err
		}
		return fn(&bookingRepository{db: tx})
	})
}
