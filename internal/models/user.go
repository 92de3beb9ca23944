// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultBio is applied to new accounts that leave the bio empty.
const DefaultBio = "Tell us about yourself"

// DefaultProfilePic is the placeholder avatar for new accounts.
const DefaultProfilePic = "https://cdn-icons-png.flaticon.com/512/149/149071.png"

// MaxInterests bounds the number of interest tags per user.
const MaxInterests = 10

// User represents a TuteGram account and profile.
// Password is empty for accounts created through an external provider.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"size:56;not null" json:"firstName"`
	LastName     string    `gorm:"size:56" json:"lastName,omitempty"`
	Username     string    `gorm:"size:56;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"size:100" json:"-"`
	ProviderID   *string   `gorm:"uniqueIndex" json:"-"`
	RefreshToken string    `json:"-"`
	Age          int       `json:"age,omitempty"`
	Gender       string    `gorm:"size:32" json:"gender,omitempty"`
	Location     string    `gorm:"size:128" json:"location,omitempty"`
	Bio          string    `gorm:"size:250" json:"bio"`
	ProfilePic   string    `json:"profilePic"`
	CoverPic     string    `json:"coverPic,omitempty"`
	Interests    []string  `gorm:"serializer:json" json:"interests"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate applies schema-level defaults.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.Bio == "" {
		u.Bio = DefaultBio
	}
	if u.ProfilePic == "" {
		u.ProfilePic = DefaultProfilePic
	}
	return nil
}

// PublicUser is the only user shape handlers serialize. Password and refresh
// token do not exist on this type, so they cannot leak by omission mistakes.
type PublicUser struct {
	ID         uint      `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName,omitempty"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Age        int       `json:"age,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	Location   string    `json:"location,omitempty"`
	Bio        string    `json:"bio"`
	ProfilePic string    `json:"profilePic"`
	CoverPic   string    `json:"coverPic,omitempty"`
	Interests  []string  `json:"interests"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Public projects the user onto its API-safe view.
func (u *User) Public() PublicUser {
	interests := u.Interests
	if interests == nil {
		interests = []string{}
	}
	return PublicUser{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Username:   u.Username,
		Email:      u.Email,
		Age:        u.Age,
		Gender:     u.Gender,
		Location:   u.Location,
		Bio:        u.Bio,
		ProfilePic: u.ProfilePic,
		CoverPic:   u.CoverPic,
		Interests:  interests,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// PublicUsers projects a slice of users.
func PublicUsers(users []User) []PublicUser {
	out := make([]PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out
}
