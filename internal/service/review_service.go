package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stayspots/internal/cache"
	apperrors "stayspots/internal/errors"
	"stayspots/internal/model"
	"stayspots/internal/repository"
)

// ReviewService handles reviews and review images.
type ReviewService interface {
	ListBySpot(ctx context.Context, spotID uint) ([]model.Review, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Review, error)
	Create(ctx context.Context, spotID, userID uint, text string, stars int) (*model.Review, error)
	Update(ctx context.Context, reviewID, actorID uint, text string, stars int) (*model.Review, error)
	Delete(ctx context.Context, reviewID, actorID uint) error
	AddImage(ctx context.Context, reviewID, actorID uint, url string) (*model.ReviewImage, error)
	DeleteImage(ctx context.Context, imageID, actorID uint) error
}

type reviewService struct {
	reviewRepo    repository.ReviewRepository
	imageRepo     repository.ReviewImageRepository
	spotRepo      repository.SpotRepository
	spotImageRepo repository.SpotImageRepository
	cache         *cache.Client
}

// NewReviewService creates a new review service.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	imageRepo repository.ReviewImageRepository,
	spotRepo repository.SpotRepository,
	spotImageRepo repository.SpotImageRepository,
	cache *cache.Client,
) ReviewService {
	return &reviewService{
		reviewRepo:    reviewRepo,
		imageRepo:     imageRepo,
		spotRepo:      spotRepo,
		spotImageRepo: spotImageRepo,
		cache:         cache,
	}
}

func (s *reviewService) ListBySpot(ctx context.Context, spotID uint) ([]model.Review, error) {
	if _, err := s.spotRepo.FindByID(ctx, spotID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrSpotNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.ListBySpot(ctx, spotID)
	if err != nil {
		return nil, err
	}
	attachAuthors(reviews)
	return reviews, nil
}

func (s *reviewService) ListByUser(ctx context.Context, userID uint) ([]model.Review, error) {
	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	attachAuthors(reviews)

	// The nested spot payload carries its preview image.
	ids := make([]uint, 0, len(reviews))
	for _, review := range reviews {
		if review.Spot != nil {
			ids = append(ids, review.SpotID)
		}
	}
	previews, err := s.spotImageRepo.PreviewURLs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load preview images: %w", err)
	}
	for i := range reviews {
		if reviews[i].Spot != nil {
			reviews[i].Spot.PreviewImage = previews[reviews[i].SpotID]
		}
	}
	return reviews, nil
}

func (s *reviewService) Create(ctx context.Context, spotID, userID uint, text string, stars int) (*model.Review, error) {
	if _, err := s.spotRepo.FindByID(ctx, spotID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrSpotNotFound
		}
		return nil, err
	}

	// One review per user per spot.
	if existing, err := s.reviewRepo.FindBySpotAndUser(ctx, spotID, userID); err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateReview
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check existing review: %w", err)
	}

	review := &model.Review{SpotID: spotID, UserID: userID, Review: text, Stars: stars}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	s.invalidateSpot(ctx, spotID)
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, reviewID, actorID uint, text string, stars int) (*model.Review, error) {
	review, err := s.loadAuthored(ctx, reviewID, actorID)
	if err != nil {
		return nil, err
	}

	review.Review = text
	review.Stars = stars
	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}
	s.invalidateSpot(ctx, review.SpotID)
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, reviewID, actorID uint) error {
	review, err := s.loadAuthored(ctx, reviewID, actorID)
	if err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(ctx, review); err != nil {
		return err
	}
	s.invalidateSpot(ctx, review.SpotID)
	return nil
}

func (s *reviewService) AddImage(ctx context.Context, reviewID, actorID uint, url string) (*model.ReviewImage, error) {
	if _, err := s.loadAuthored(ctx, reviewID, actorID); err != nil {
		return nil, err
	}

	count, err := s.imageRepo.CountByReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if count >= model.MaxReviewImages {
		return nil, apperrors.ErrReviewImageLimit
	}

	image := &model.ReviewImage{ReviewID: reviewID, URL: url}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *reviewService) DeleteImage(ctx context.Context, imageID, actorID uint) error {
	image, err := s.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrReviewImageNotFound
		}
		return err
	}
	if _, err := s.loadAuthored(ctx, image.ReviewID, actorID); err != nil {
		return err
	}
	return s.imageRepo.Delete(ctx, image)
}

// loadAuthored loads a review and verifies the actor authored it.
func (s *reviewService) loadAuthored(ctx context.Context, reviewID, actorID uint) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != actorID {
		return nil, apperrors.ErrForbidden
	}
	return review, nil
}

func (s *reviewService) invalidateSpot(ctx context.Context, spotID uint) {
	_ = s.cache.Delete(ctx, fmt.Sprintf("spot:%d", spotID))
}

func attachAuthors(reviews []model.Review) {
	for i := range reviews {
		if reviews[i].Author != nil {
			author := reviews[i].Author.Public()
			reviews[i].User = &author
		}
	}
}
