package dto

import "github.com/contactbook/contactbook/internal/model"

// SignupRequest represents the request body for user signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionData carries a freshly issued token and the public user view.
// Used as the data object for both signup and login responses.
type SessionData struct {
	AccessToken string            `json:"access_token"`
	User        *model.PublicUser `json:"user"`
}
