package dto

import "time"

// RegisterRequest is the JSON body for POST /auth/register.
// Name is optional; the web client sends it, API clients may omit it.
type RegisterRequest struct {
	Name     string `json:"name" binding:"omitempty,max=120"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=1,max=72"`
}

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the identity returned after register. Never carries the hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is returned by POST /auth/login.
type TokenResponse struct {
	Token string `json:"token"`
}
