package dto

import "github.com/coursehub/coursehub/internal/app/models"

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=student instructor"`
}

// LoginRequest represents user login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents a successful authentication response
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn" example:"86400"`
	User      *models.User `json:"user"`
}
