package dto

import (
	"time"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// PendingUserResponse represents a user awaiting administrator approval.
type PendingUserResponse struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// PendingUsersResponse wraps the pending registration list.
type PendingUsersResponse struct {
	Users []PendingUserResponse `json:"users"`
}

// ApproveUserRequest represents an administrator's approval decision.
// Approve false rejects and removes the registration.
type ApproveUserRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Approve *bool  `json:"approve" binding:"required"`
}

// ToPendingUserResponses converts pending user entities.
func ToPendingUserResponses(users []*entity.PendingUser) []PendingUserResponse {
	responses := make([]PendingUserResponse, len(users))
	for i, user := range users {
		responses[i] = PendingUserResponse{
			UserID:    user.UserID.String(),
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		}
	}
	return responses
}
