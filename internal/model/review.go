package model

import "time"

// MaxReviewImages caps how many images a single review may carry.
const MaxReviewImages = 10

// Review is a user's review of a spot. A user may author at most one review
// per spot.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SpotID    uint      `json:"spotId" gorm:"not null;uniqueIndex:idx_reviews_spot_user"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_reviews_spot_user"`
	Review    string    `json:"review" gorm:"type:text;not null"`
	Stars     int       `json:"stars" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// User carries the trimmed author payload on review listings.
	User *PublicUser `json:"User,omitempty" gorm:"-"`

	// Relations
	Author       *User         `json:"-" gorm:"foreignKey:UserID"`
	Spot         *Spot         `json:"Spot,omitempty" gorm:"foreignKey:SpotID"`
	ReviewImages []ReviewImage `json:"ReviewImages,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}

// ReviewImage is a URL attached to a review.
type ReviewImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ReviewID  uint      `json:"reviewId" gorm:"not null;index"`
	URL       string    `json:"url" gorm:"size:2048;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
