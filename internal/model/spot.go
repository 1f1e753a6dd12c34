package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Spot represents a rentable property listing.
type Spot struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	OwnerID     uint            `json:"ownerId" gorm:"not null;index"`
	Address     string          `json:"address" gorm:"size:255;not null"`
	City        string          `json:"city" gorm:"size:100;not null"`
	State       string          `json:"state" gorm:"size:100;not null"`
	Country     string          `json:"country" gorm:"size:100;not null"`
	Lat         float64         `json:"lat" gorm:"not null"`
	Lng         float64         `json:"lng" gorm:"not null"`
	Name        string          `json:"name" gorm:"size:50"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Computed per request, never stored. See the rating aggregation rules.
	AvgRating     *decimal.Decimal `json:"avgRating,omitempty" gorm:"-"`
	AvgStarRating *decimal.Decimal `json:"avgStarRating,omitempty" gorm:"-"`
	NumReviews    *int64           `json:"numReviews,omitempty" gorm:"-"`
	PreviewImage  string           `json:"previewImage,omitempty" gorm:"-"`

	// Owner carries the trimmed payload serialized on spot detail; the full
	// record loads through the OwnerUser relation.
	Owner *PublicUser `json:"Owner,omitempty" gorm:"-"`

	// Relations
	OwnerUser  *User       `json:"-" gorm:"foreignKey:OwnerID"`
	SpotImages []SpotImage `json:"SpotImages,omitempty" gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE"`
	Reviews    []Review    `json:"-" gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE"`
	Bookings   []Booking   `json:"-" gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE"`
}

// SpotImage is a URL attached to a spot. At most one image per spot carries
// the preview flag at a time.
type SpotImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SpotID    uint      `json:"spotId" gorm:"not null;index"`
	URL       string    `json:"url" gorm:"size:2048;not null"`
	Preview   bool      `json:"preview" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
