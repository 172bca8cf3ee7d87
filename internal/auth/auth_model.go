package auth

import "github.com/picklepro/api/internal/user"

// GoogleAuthRequest is the sign-in payload carrying the Google ID token.
type GoogleAuthRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// AuthResponse is returned after a successful sign-in.
type AuthResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}
