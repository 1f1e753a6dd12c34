package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "stayspots/internal/errors"
	"stayspots/internal/model"
	"stayspots/internal/repository"
)

// BookingService handles reservations and the booking conflict rules.
type BookingService interface {
	ListByUser(ctx context.Context, userID uint) ([]model.Booking, error)
	// ListBySpot reports the bookings along with whether the actor owns the
	// spot; non-owners only see a reduced payload.
	ListBySpot(ctx context.Context, spotID, actorID uint) ([]model.Booking, bool, error)
	Create(ctx context.Context, spotID, actorID uint, start, end model.Date) (*model.Booking, error)
	Update(ctx context.Context, bookingID, actorID uint, start, end model.Date) (*model.Booking, error)
	Delete(ctx context.Context, bookingID, actorID uint) error
}

type bookingService struct {
	bookingRepo   repository.BookingRepository
	spotRepo      repository.SpotRepository
	spotImageRepo repository.SpotImageRepository
	today         func() model.Date
}

// NewBookingService creates a new booking service.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	spotRepo repository.SpotRepository,
	spotImageRepo repository.SpotImageRepository,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		spotRepo:      spotRepo,
		spotImageRepo: spotImageRepo,
		today:         model.Today,
	}
}

func (s *bookingService) ListByUser(ctx context.Context, userID uint) ([]model.Booking, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(bookings))
	for _, booking := range bookings {
		if booking.Spot != nil {
			ids = append(ids, booking.SpotID)
		}
	}
	previews, err := s.spotImageRepo.PreviewURLs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load preview images: %w", err)
	}
	for i := range bookings {
		if bookings[i].Spot != nil {
			bookings[i].Spot.PreviewImage = previews[bookings[i].SpotID]
		}
	}
	return bookings, nil
}

func (s *bookingService) ListBySpot(ctx context.Context, spotID, actorID uint) ([]model.Booking, bool, error) {
	spot, err := s.spotRepo.FindByID(ctx, spotID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, apperrors.ErrSpotNotFound
		}
		return nil, false, err
	}

	isOwner := spot.OwnerID == actorID
	bookings, err := s.bookingRepo.ListBySpot(ctx, spotID, isOwner)
	if err != nil {
		return nil, false, err
	}
	if isOwner {
		for i := range bookings {
			if bookings[i].Booker != nil {
				booker := bookings[i].Booker.Public()
				bookings[i].User = &booker
			}
		}
	}
	return bookings, isOwner, nil
}

// Create reserves a spot for [start, end). The overlap check and the insert
// run inside one transaction holding a lock on the spot row, so two
// concurrent requests for the same spot cannot both pass the check.
func (s *bookingService) Create(ctx context.Context, spotID, actorID uint, start, end model.Date) (*model.Booking, error) {
	if err := s.validateDates(start, end); err != nil {
		return nil, err
	}

	spot, err := s.spotRepo.FindByID(ctx, spotID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrSpotNotFound
		}
		return nil, err
	}
	if spot.OwnerID == actorID {
		// Owners cannot book their own spot.
		return nil, apperrors.ErrForbidden
	}

	booking := &model.Booking{SpotID: spotID, UserID: actorID, StartDate: start, EndDate: end}
	err = s.bookingRepo.WithSpotLock(ctx, spotID, func(repo repository.BookingRepository) error {
		if err := s.checkConflicts(ctx, repo, spotID, start, end, 0); err != nil {
			return err
		}
		return repo.Create(ctx, booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Update moves a booking to a new interval, re-running the conflict check
// with the booking's own id excluded.
func (s *bookingService) Update(ctx context.Context, bookingID, actorID uint, start, end model.Date) (*model.Booking, error) {
	if err := s.validateDates(start, end); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	if booking.UserID != actorID {
		return nil, apperrors.ErrForbidden
	}
	// A booking that has already ended is frozen.
	if !booking.EndDate.After(s.today().Time) {
		return nil, apperrors.ErrBookingPast
	}

	booking.StartDate = start
	booking.EndDate = end
	err = s.bookingRepo.WithSpotLock(ctx, booking.SpotID, func(repo repository.BookingRepository) error {
		if err := s.checkConflicts(ctx, repo, booking.SpotID, start, end, bookingID); err != nil {
			return err
		}
		return repo.Save(ctx, booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Delete removes a booking. The booker or the spot owner may delete it, but
// only before its interval has begun.
func (s *bookingService) Delete(ctx context.Context, bookingID, actorID uint) error {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrBookingNotFound
		}
		return err
	}

	if booking.UserID != actorID {
		spot, err := s.spotRepo.FindByID(ctx, booking.SpotID)
		if err != nil || spot.OwnerID != actorID {
			return apperrors.ErrForbidden
		}
	}

	if booking.Started(s.today()) {
		return apperrors.ErrBookingStarted
	}
	return s.bookingRepo.Delete(ctx, booking)
}

// validateDates applies the date-range rules, collecting every violation
// into one aggregated error.
func (s *bookingService) validateDates(start, end model.Date) error {
	fields := map[string]string{}
	if start.IsZero() {
		fields["startDate"] = "startDate must be a valid date"
	} else if start.Before(s.today().Time) {
		fields["startDate"] = "startDate cannot be in the past"
	}
	if end.IsZero() {
		fields["endDate"] = "endDate must be a valid date"
	} else if !start.IsZero() && !end.After(start.Time) {
		fields["endDate"] = "endDate cannot be on or before startDate"
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}
	return nil
}

// checkConflicts scans the spot's bookings for a half-open interval overlap,
// skipping excludeID (the booking being edited).
func (s *bookingService) checkConflicts(ctx context.Context, repo repository.BookingRepository, spotID uint, start, end model.Date, excludeID uint) error {
	existing, err := repo.ListBySpot(ctx, spotID, false)
	if err != nil {
		return err
	}
	for i := range existing {
		if existing[i].ID == excludeID {
			continue
		}
		if existing[i].Overlaps(start, end) {
			return apperrors.ErrBookingConflict
		}
	}
	return nil
}
