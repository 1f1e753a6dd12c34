package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"stayspots/internal/model"
	"stayspots/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByCredential(ctx context.Context, credential string) (*model.User, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockSpotRepository is a mock implementation of SpotRepository.
type MockSpotRepository struct {
	mock.Mock
}

func (m *MockSpotRepository) Create(ctx context.Context, spot *model.Spot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockSpotRepository) Save(ctx context.Context, spot *model.Spot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockSpotRepository) Delete(ctx context.Context, spot *model.Spot) error {
	args := m.Called(ctx, spot)
	return args.Error(0)
}

func (m *MockSpotRepository) FindByID(ctx context.Context, id uint) (*model.Spot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Spot), args.Error(1)
}

func (m *MockSpotRepository) FindByIDWithDetails(ctx context.Context, id uint) (*model.Spot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Spot), args.Error(1)
}

func (m *MockSpotRepository) List(ctx context.Context, filter repository.SpotFilter) ([]model.Spot, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Spot), args.Error(1)
}

func (m *MockSpotRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Spot, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Spot), args.Error(1)
}

// MockSpotImageRepository is a mock implementation of SpotImageRepository.
type MockSpotImageRepository struct {
	mock.Mock
}

func (m *MockSpotImageRepository) Create(ctx context.Context, image *model.SpotImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockSpotImageRepository) Delete(ctx context.Context, image *model.SpotImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockSpotImageRepository) FindByID(ctx context.Context, id uint) (*model.SpotImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SpotImage), args.Error(1)
}

func (m *MockSpotImageRepository) ClearPreview(ctx context.Context, spotID uint) error {
	args := m.Called(ctx, spotID)
	return args.Error(0)
}

func (m *MockSpotImageRepository) PreviewURLs(ctx context.Context, spotIDs []uint) (map[uint]string, error) {
	args := m.Called(ctx, spotIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]string), args.Error(1)
}

// MockReviewRepository is a mock implementation of ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Save(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uint) (*model.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewRepository) FindBySpotAndUser(ctx context.Context, spotID, userID uint) (*model.Review, error) {
	args := m.Called(ctx, spotID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewRepository) ListBySpot(ctx context.Context, spotID uint) ([]model.Review, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID uint) ([]model.Review, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewRepository) Aggregate(ctx context.Context, spotID uint) (repository.RatingAggregate, error) {
	args := m.Called(ctx, spotID)
	return args.Get(0).(repository.RatingAggregate), args.Error(1)
}

func (m *MockReviewRepository) AggregateMany(ctx context.Context, spotIDs []uint) (map[uint]repository.RatingAggregate, error) {
	args := m.Called(ctx, spotIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]repository.RatingAggregate), args.Error(1)
}

// MockReviewImageRepository is a mock implementation of ReviewImageRepository.
type MockReviewImageRepository struct {
	mock.Mock
}

func (m *MockReviewImageRepository) Create(ctx context.Context, image *model.ReviewImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockReviewImageRepository) Delete(ctx context.Context, image *model.ReviewImage) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

func (m *MockReviewImageRepository) FindByID(ctx context.Context, id uint) (*model.ReviewImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ReviewImage), args.Error(1)
}

func (m *MockReviewImageRepository) CountByReview(ctx context.Context, reviewID uint) (int64, error) {
	args := m.Called(ctx, reviewID)
	return args.Get(0).(int64), args.Error(1)
}

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Save(ctx context.Context, booking *model.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, booking *model.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uint) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByUser(ctx context.Context, userID uint) ([]model.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBySpot(ctx context.Context, spotID uint, withBooker bool) ([]model.Booking, error) {
	args := m.Called(ctx, spotID, withBooker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Booking), args.Error(1)
}

// WithSpotLock runs fn against the mock itself, standing in for the
// transaction-scoped repository.
func (m *MockBookingRepository) WithSpotLock(ctx context.Context, spotID uint, fn func(repo repository.BookingRepository) error) error {
	args := m.Called(ctx, spotID)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}
