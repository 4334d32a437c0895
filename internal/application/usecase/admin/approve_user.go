// Package admin contains administrator-only use cases.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
)

// ApproveUserInput represents the input for an approval decision.
// Approve=false rejects the registration and removes the account.
type ApproveUserInput struct {
	UserID  uuid.UUID
	Approve bool
}

// ApproveUserOutput represents the result of an approval decision.
type ApproveUserOutput struct {
	Message string
}

// ApproveUserUseCase handles the admin approval decision.
type ApproveUserUseCase struct {
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
	appBaseURL   string
}

// NewApproveUserUseCase creates a new ApproveUserUseCase instance.
func NewApproveUserUseCase(
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	appBaseURL string,
) *ApproveUserUseCase {
	return &ApproveUserUseCase{
		userRepo:     userRepo,
		emailService: emailService,
		appBaseURL:   appBaseURL,
	}
}

// Execute applies the approval decision. Approving an already-approved
// user is a no-op, so retried requests stay safe.
func (uc *ApproveUserUseCase) Execute(ctx context.Context, input ApproveUserInput) (*ApproveUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAdminError(
			domainerror.ErrCodePendingUserNotFound,
			"pending user not found",
			domainerror.ErrPendingUserNotFound,
		)
	}

	if !input.Approve {
		if err := uc.userRepo.Delete(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("failed to remove rejected user: %w", err)
		}
		return &ApproveUserOutput{Message: "User registration rejected"}, nil
	}

	alreadyApproved := user.Approved
	user.Approve(time.Now().UTC())

	if !alreadyApproved {
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to approve user: %w", err)
		}

		if uc.emailService != nil {
			err := uc.emailService.QueueAccountApprovedEmail(ctx, adapter.QueueAccountApprovedInput{
				UserEmail: user.Email,
				UserName:  user.Name,
				LoginURL:  uc.appBaseURL + "/login",
			})
			if err != nil {
				// The approval itself succeeded; the notification is best effort
				slog.Error("Failed to queue account approved email", "error", err, "userID", user.ID)
			}
		}
	}

	return &ApproveUserOutput{Message: "User approved"}, nil
}
