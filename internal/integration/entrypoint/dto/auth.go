// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// SignupRequest represents the request body for user signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ForgotPasswordRequest represents the request body for forgot password.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents the request body for password reset.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// DeleteAccountRequest represents the request body for account deletion.
type DeleteAccountRequest struct {
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation"`
}

// SignupResponse represents the response for a successful signup.
// No tokens are issued until an administrator approves the account.
type SignupResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// VerifyTokenResponse represents the response for token verification.
type VerifyTokenResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Approved   bool      `json:"approved"`
	Currency   string    `json:"currency"`
	DateFormat string    `json:"date_format"`
	Language   string    `json:"language"`
	Theme      string    `json:"theme"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		Role:       string(user.Role),
		Approved:   user.Approved,
		Currency:   user.Currency,
		DateFormat: string(user.DateFormat),
		Language:   user.Language,
		Theme:      string(user.Theme),
		AvatarURL:  user.AvatarURL,
		CreatedAt:  user.CreatedAt,
	}
}
