package model

import "time"

// Booking is a reservation of a spot for the half-open interval
// [StartDate, EndDate).
type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SpotID    uint      `json:"spotId" gorm:"not null;index"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	StartDate Date      `json:"startDate" gorm:"type:date;not null;index"`
	EndDate   Date      `json:"endDate" gorm:"type:date;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// User carries the trimmed booker payload shown to spot owners.
	User *PublicUser `json:"User,omitempty" gorm:"-"`

	// Relations
	Booker *User `json:"-" gorm:"foreignKey:UserID"`
	Spot   *Spot `json:"Spot,omitempty" gorm:"foreignKey:SpotID"`
}

// Overlaps reports whether this booking's interval intersects [start, end).
// Intervals are half-open, so touching at a boundary is not a conflict.
func (b *Booking) Overlaps(start, end Date) bool {
	return b.StartDate.Before(end.Time) && start.Before(b.EndDate.Time)
}

// Started reports whether the booking's interval has begun as of today.
func (b *Booking) Started(today Date) bool {
	return !today.Before(b.StartDate.Time)
}
