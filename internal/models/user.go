package models

import "time"

// User is an account that posts tweets. APIKey is the static credential
// clients send in the api-key header.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:80;not null"`
	APIKey    string    `json:"-" gorm:"column:api_key;size:100;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCompact is the id/name pair embedded in feed items and profiles.
type UserCompact struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ToCompact converts a User to its compact representation
func (u User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Name: u.Name}
}

// UserProfile is the body of GET /api/users/me and GET /api/users/:id
type UserProfile struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Followers []UserCompact `json:"followers"`
	Following []UserCompact `json:"following"`
}

// NewUserProfile builds a profile from a user and its follow edges.
func NewUserProfile(user *User, followers, following []User) UserProfile {
	profile := UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Followers: make([]UserCompact, 0, len(followers)),
		Following: make([]UserCompact, 0, len(following)),
	}
	for _, f := range followers {
		profile.Followers = append(profile.Followers, f.ToCompact())
	}
	for _, f := range following {
		profile.Following = append(profile.Following, f.ToCompact())
	}
	return profile
}
