package model

import "time"

// User represents a registered account. A user owns spots and authors
// reviews and bookings.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:30;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	FirstName      string    `json:"firstName" gorm:"size:50"`
	LastName       string    `json:"lastName" gorm:"size:50"`
	HashedPassword string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Relations
	Spots    []Spot    `json:"-" gorm:"foreignKey:OwnerID"`
	Reviews  []Review  `json:"-" gorm:"foreignKey:UserID"`
	Bookings []Booking `json:"-" gorm:"foreignKey:UserID"`
}

// SessionUser is the trimmed identity payload returned by auth endpoints.
type SessionUser struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Session returns the trimmed identity payload for this user.
func (u *User) Session() SessionUser {
	return SessionUser{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// PublicUser is the nested owner/author payload embedded in other resources.
type PublicUser struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Public returns the nested owner/author payload for this user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName}
}
