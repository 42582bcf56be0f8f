package model

import "time"

// Profile is a named owner of stored generator settings.
type Profile struct {
	ID             int64
	Name           string
	PassphraseHash string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateProfileRequest represents a profile registration request.
type CreateProfileRequest struct {
	Name       string `json:"name"`
	Passphrase string `json:"passphrase"`
}

// LoginRequest represents a profile login request.
type LoginRequest struct {
	Name       string `json:"name"`
	Passphrase string `json:"passphrase"`
}

// AuthResponse returns a bearer token with the profile it was issued for.
type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// ProfileResponse is the public view of a profile.
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
