package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "stayspots/internal/errors"
	"stayspots/internal/model"
)

func TestReviewService_Create(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockReviewRepository, *MockSpotRepository)
		expectedError error
	}{
		{
			name: "successful review",
			setupMock: func(mReviews *MockReviewRepository, mSpots *MockSpotRepository) {
				mSpots.On("FindByID", mock.Anything, uint(1)).Return(&model.Spot{ID: 1, OwnerID: 2}, nil)
				mReviews.On("FindBySpotAndUser", mock.Anything, uint(1), uint(5)).Return(nil, gorm.ErrRecordNotFound)
				mReviews.On("Create", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)
			},
		},
		{
			name: "spot not found",
			setupMock: func(mReviews *MockReviewRepository, mSpots *MockSpotRepository) {
				mSpots.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrSpotNotFound,
		},
		{
			name: "second review for the same spot is rejected",
			setupMock: func(mReviews *MockReviewRepository, mSpots *MockSpotRepository) {
				mSpots.On("FindByID", mock.Anything, uint(1)).Return(&model.Spot{ID: 1, OwnerID: 2}, nil)
				mReviews.On("FindBySpotAndUser", mock.Anything, uint(1), uint(5)).Return(&model.Review{ID: 9, SpotID: 1, UserID: 5}, nil)
			},
			expectedError: apperrors.ErrDuplicateReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReviews := new(MockReviewRepository)
			mockSpots := new(MockSpotRepository)
			tt.setupMock(mockReviews, mockSpots)

			service := NewReviewService(mockReviews, new(MockReviewImageRepository), mockSpots, new(MockSpotImageRepository), nil)
			review, err := service.Create(context.Background(), 1, 5, "Great stay", 5)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, review)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, review)
				assert.Equal(t, uint(1), review.SpotID)
				assert.Equal(t, uint(5), review.UserID)
				assert.Equal(t, 5, review.Stars)
			}

			mockReviews.AssertExpectations(t)
			mockSpots.AssertExpectations(t)
		})
	}
}

func TestReviewService_Update(t *testing.T) {
	t.Run("author updates the review", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockReviews.On("FindByID", mock.Anything, uint(9)).Return(&model.Review{ID: 9, SpotID: 1, UserID: 5, Stars: 3}, nil)
		mockReviews.On("Save", mock.Anything, mock.AnythingOfType("*model.Review")).Return(nil)

		service := NewReviewService(mockReviews, new(MockReviewImageRepository), new(MockSpotRepository), new(MockSpotImageRepository), nil)
		review, err := service.Update(context.Background(), 9, 5, "Even better the second time", 4)

		assert.NoError(t, err)
		assert.Equal(t, 4, review.Stars)
		assert.Equal(t, "Even better the second time", review.Review)
		mockReviews.AssertExpectations(t)
	})

	t.Run("non-author is rejected", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockReviews.On("FindByID", mock.Anything, uint(9)).Return(&model.Review{ID: 9, SpotID: 1, UserID: 5}, nil)

		service := NewReviewService(mockReviews, new(MockReviewImageRepository), new(MockSpotRepository), new(MockSpotImageRepository), nil)
		review, err := service.Update(context.Background(), 9, 99, "hijack", 1)

		assert.Equal(t, apperrors.ErrForbidden, err)
		assert.Nil(t, review)
	})

	t.Run("review not found", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockReviews.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		service := NewReviewService(mockReviews, new(MockReviewImageRepository), new(MockSpotRepository), new(MockSpotImageRepository), nil)
		review, err := service.Update(context.Background(), 9, 5, "text", 3)

		assert.Equal(t, apperrors.ErrReviewNotFound, err)
		assert.Nil(t, review)
	})
}

func TestReviewService_AddImage(t *testing.T) {
	tests := []struct {
		name          string
		actorID       uint
		setupMock     func(*MockReviewRepository, *MockReviewImageRepository)
		expectedError error
	}{
		{
			name:    "image added under the cap",
			actorID: 5,
			setupMock: func(mReviews *MockReviewRepository, mImages *MockReviewImageRepository) {
				mReviews.On("FindByID", mock.Anything, uint(9)).Return(&model.Review{ID: 9, SpotID: 1, UserID: 5}, nil)
				mImages.On("CountByReview", mock.Anything, uint(9)).Return(int64(model.MaxReviewImages-1), nil)
				mImages.On("Create", mock.Anything, mock.AnythingOfType("*model.ReviewImage")).Return(nil)
			},
		},
		{
			name:    "cap reached",
			actorID: 5,
			setupMock: func(mReviews *MockReviewRepository, mImages *MockReviewImageRepository) {
				mReviews.On("FindByID", mock.Anything, uint(9)).Return(&model.Review{ID: 9, SpotID: 1, UserID: 5}, nil)
				mImages.On("CountByReview", mock.Anything, uint(9)).Return(int64(model.MaxReviewImages), nil)
			},
			expectedError: apperrors.ErrReviewImageLimit,
		},
		{
			name:    "only the author may add images",
			actorID: 99,
			setupMock: func(mReviews *MockReviewRepository, mImages *MockReviewImageRepository) {
				mReviews.On("FindByID", mock.Anything, uint(9)).Return(&model.Review{ID: 9, SpotID: 1, UserID: 5}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReviews := new(MockReviewRepository)
			mockImages := new(MockReviewImageRepository)
			tt.setupMock(mockReviews, mockImages)

			service := NewReviewService(mockReviews, mockImages, new(MockSpotRepository), new(MockSpotImageRepository), nil)
			image, err := service.AddImage(context.Background(), 9, tt.actorID, "https://img.test/r.jpg")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, image)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, image)
				assert.Equal(t, uint(9), image.ReviewID)
			}

			mockReviews.AssertExpectations(t)
			mockImages.AssertExpectations(t)
		})
	}
}

func TestReviewService_DeleteImage(t *testing.T) {
	t.Run("image not found", func(t *testing.T) {
		mockImages := new(MockReviewImageRepository)
		mockImages.On("FindByID", mock.Anything, uint(21)).Return(nil, gorm.ErrRecordNotFound)

		service := NewReviewService(new(MockReviewRepository), mockImages, new(MockSpotRepository), new(MockSpotImageRepository), nil)
		err := service.DeleteImage(context.Background(), 21, 5)

		assert.Equal(t, apperrors.ErrReviewImageNotFound, err)
	})

	t.Run("author deletes an image", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockImages := new(MockReviewImageRepository)
		mockImages.On("FindByID", mock.Anything, uint(21)).Return(&model.ReviewImage{ID: 21, ReviewID: 9}, nil)
		mockReviews.On("FindByID", mock.Anything, uint(9)).Return(&model.Review{ID: 9, SpotID: 1, UserID: 5}, nil)
		mockImages.On("Delete", mock.Anything, mock.AnythingOfType("*model.ReviewImage")).Return(nil)

		service := NewReviewService(mockReviews, mockImages, new(MockSpotRepository), new(MockSpotImageRepository), nil)
		err := service.DeleteImage(context.Background(), 21, 5)

		assert.NoError(t, err)
		mockImages.AssertExpectations(t)
	})
}

func TestReviewService_ListBySpot(t *testing.T) {
	t.Run("attaches author payloads", func(t *testing.T) {
		mockReviews := new(MockReviewRepository)
		mockSpots := new(MockSpotRepository)
		mockSpots.On("FindByID", mock.Anything, uint(1)).Return(&model.Spot{ID: 1}, nil)
		mockReviews.On("ListBySpot", mock.Anything, uint(1)).Return([]model.Review{
			{ID: 9, SpotID: 1, UserID: 5, Author: &model.User{ID: 5, FirstName: "Fake", LastName: "UserOne"}},
		}, nil)

		service := NewReviewService(mockReviews, new(MockReviewImageRepository), mockSpots, new(MockSpotImageRepository), nil)
		reviews, err := service.ListBySpot(context.Background(), 1)

		assert.NoError(t, err)
		assert.Len(t, reviews, 1)
		assert.NotNil(t, reviews[0].User)
		assert.Equal(t, "Fake", reviews[0].User.FirstName)
	})

	t.Run("spot not found", func(t *testing.T) {
		mockSpots := new(MockSpotRepository)
		mockSpots.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		service := NewReviewService(new(MockReviewRepository), new(MockReviewImageRepository), mockSpots, new(MockSpotImageRepository), nil)
		reviews, err := service.ListBySpot(context.Background(), 1)

		assert.Equal(t, apperrors.ErrSpotNotFound, err)
		assert.Nil(t, reviews)
	})
}

func TestReviewService_ListByUser(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockSpotImages := new(MockSpotImageRepository)
	mockReviews.On("ListByUser", mock.Anything, uint(5)).Return([]model.Review{
		{ID: 9, SpotID: 1, UserID: 5, Spot: &model.Spot{ID: 1}},
	}, nil)
	mockSpotImages.On("PreviewURLs", mock.Anything, []uint{1}).Return(map[uint]string{1: "https://img.test/1.jpg"}, nil)

	service := NewReviewService(mockReviews, new(MockReviewImageRepository), new(MockSpotRepository), mockSpotImages, nil)
	reviews, err := service.ListByUser(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, "https://img.test/1.jpg", reviews[0].Spot.PreviewImage)
	mockReviews.AssertExpectations(t)
	mockSpotImages.AssertExpectations(t)
}
