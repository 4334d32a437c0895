// Package email provides email sending functionality.
package email

import (
	"context"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	subject := "Reset your password - Expense Tracker"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue password reset email",
			err,
		)
	}

	return nil
}

// QueueAccountApprovedEmail queues an account-approved notification email.
func (s *Service) QueueAccountApprovedEmail(ctx context.Context, input adapter.QueueAccountApprovedInput) error {
	subject := "Your account has been approved - Expense Tracker"

	templateData := map[string]interface{}{
		"user_name": input.UserName,
		"login_url": input.LoginURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateAccountApproved,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue account approved email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
