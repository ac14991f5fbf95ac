package dto

import "github.com/hongminglow/campus-library/internal/models"

// LoginRequest is the payload for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns a token and the authenticated user.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// MeResponse describes the caller and whether they may borrow right now.
type MeResponse struct {
	User      models.User `json:"user"`
	CanBorrow bool        `json:"canBorrow"`
}
