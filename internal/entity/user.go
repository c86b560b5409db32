package entity

import "time"

type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	AvatarURL    *string   `json:"avatarUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Author is the public part of a user embedded in posts and comments.
type Author struct {
	ID        uint    `json:"id"`
	Username  string  `json:"username"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	AvatarURL *string `json:"avatarUrl"`
}

func (u *User) Author() Author {
	return Author{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
	}
}

type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type ProfileUpdate struct {
	FirstName *string
	LastName  *string
}

func (p ProfileUpdate) Empty() bool {
	return p.FirstName == nil && p.LastName == nil
}
