// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account. Users are append-only: once
// created they are never mutated or deleted by this service.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Email        string    `json:"email"`
	Address      string    `json:"address,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the projection of a User that is safe to return to
// callers. The password hash is never part of it.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PublicView returns the caller-facing projection of the user.
func (u *User) PublicView() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
