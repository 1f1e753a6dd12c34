package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"stayspots/internal/cache"
	apperrors "stayspots/internal/errors"
	"stayspots/internal/model"
	"stayspots/internal/repository"
)

const spotCacheTTL = 5 * time.Minute

// SpotService handles spot CRUD, spot images, and the aggregated listing
// and detail reads.
type SpotService interface {
	List(ctx context.Context, filter repository.SpotFilter) ([]model.Spot, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Spot, error)
	Get(ctx context.Context, id uint) (*model.Spot, error)
	Create(ctx context.Context, spot *model.Spot) error
	Update(ctx context.Context, id, actorID uint, in *model.Spot) (*model.Spot, error)
	Delete(ctx context.Context, id, actorID uint) error
	AddImage(ctx context.Context, spotID, actorID uint, url string, preview bool) (*model.SpotImage, error)
	DeleteImage(ctx context.Context, imageID, actorID uint) error
}

type spotService struct {
	spotRepo   repository.SpotRepository
	imageRepo  repository.SpotImageRepository
	reviewRepo repository.ReviewRepository
	cache      *cache.Client
}

// NewSpotService creates a new spot service.
func NewSpotService(
	spotRepo repository.SpotRepository,
	imageRepo repository.SpotImageRepository,
	reviewRepo repository.ReviewRepository,
	cache *cache.Client,
) SpotService {
	return &spotService{
		spotRepo:   spotRepo,
		imageRepo:  imageRepo,
		reviewRepo: reviewRepo,
		cache:      cache,
	}
}

func (s *spotService) cacheKey(id uint) string {
	return fmt.Sprintf("spot:%d", id)
}

// decorate attaches avgRating and previewImage to listing rows. Ratings are
// recomputed on every read so they always reflect the current review set.
func (s *spotService) decorate(ctx context.Context, spots []model.Spot) error {
	ids := make([]uint, 0, len(spots))
	for _, spot := range spots {
		ids = append(ids, spot.ID)
	}

	aggregates, err := s.reviewRepo.AggregateMany(ctx, ids)
	if err != nil {
		return fmt.Errorf("aggregate ratings: %w", err)
	}
	previews, err := s.imageRepo.PreviewURLs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load preview images: %w", err)
	}

	for i := range spots {
		if agg, ok := aggregates[spots[i].ID]; ok {
			spots[i].AvgRating = roundedAvg(agg.AvgStars)
		}
		spots[i].PreviewImage = previews[spots[i].ID]
	}
	return nil
}

func (s *spotService) List(ctx context.Context, filter repository.SpotFilter) ([]model.Spot, error) {
	spots, err := s.spotRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := s.decorate(ctx, spots); err != nil {
		return nil, err
	}
	return spots, nil
}

func (s *spotService) ListByOwner(ctx context.Context, ownerID uint) ([]model.Spot, error) {
	spots, err := s.spotRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.decorate(ctx, spots); err != nil {
		return nil, err
	}
	return spots, nil
}

func (s *spotService) Get(ctx context.Context, id uint) (*model.Spot, error) {
	var cached model.Spot
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	spot, err := s.spotRepo.FindByIDWithDetails(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrSpotNotFound
		}
		return nil, err
	}

	agg, err := s.reviewRepo.Aggregate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}
	spot.NumReviews = &agg.NumReviews
	spot.AvgStarRating = roundedAvg(agg.AvgStars)
	if spot.OwnerUser != nil {
		owner := spot.OwnerUser.Public()
		spot.Owner = &owner
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), spot, spotCacheTTL)
	return spot, nil
}

func (s *spotService) Create(ctx context.Context, spot *model.Spot) error {
	return s.spotRepo.Create(ctx, spot)
}

func (s *spotService) Update(ctx context.Context, id, actorID uint, in *model.Spot) (*model.Spot, error) {
	spot, err := s.loadOwned(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	spot.Address = in.Address
	spot.City = in.City
	spot.State = in.State
	spot.Country = in.Country
	spot.Lat = in.Lat
	spot.Lng = in.Lng
	spot.Name = in.Name
	spot.Description = in.Description
	spot.Price = in.Price

	if err := s.spotRepo.Save(ctx, spot); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return spot, nil
}

func (s *spotService) Delete(ctx context.Context, id, actorID uint) error {
	spot, err := s.loadOwned(ctx, id, actorID)
	if err != nil {
		return err
	}
	if err := s.spotRepo.Delete(ctx, spot); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *spotService) AddImage(ctx context.Context, spotID, actorID uint, url string, preview bool) (*model.SpotImage, error) {
	if _, err := s.loadOwned(ctx, spotID, actorID); err != nil {
		return nil, err
	}

	// Only one image per spot may be the preview.
	if preview {
		if err := s.imageRepo.ClearPreview(ctx, spotID); err != nil {
			return nil, err
		}
	}

	image := &model.SpotImage{SpotID: spotID, URL: url, Preview: preview}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(spotID))
	return image, nil
}

func (s *spotService) DeleteImage(ctx context.Context, imageID, actorID uint) error {
	image, err := s.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrSpotImageNotFound
		}
		return err
	}

	if _, err := s.loadOwned(ctx, image.SpotID, actorID); err != nil {
		return err
	}
	if err := s.imageRepo.Delete(ctx, image); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(image.SpotID))
	return nil
}

// loadOwned loads a spot and verifies the actor owns it. Existence is
// checked before authorization so error precedence stays deterministic.
func (s *spotService) loadOwned(ctx context.Context, id, actorID uint) (*model.Spot, error) {
	spot, err := s.spotRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrSpotNotFound
		}
		return nil, err
	}
	if spot.OwnerID != actorID {
		return nil, apperrors.ErrForbidden
	}
	return spot, nil
}
