// Package admin contains administrator-only use cases.
package admin

import (
	"context"
	"fmt"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// ListPendingUsersOutput represents the unapproved registrations.
type ListPendingUsersOutput struct {
	PendingUsers []*entity.PendingUser
}

// ListPendingUsersUseCase lists registrations awaiting approval.
type ListPendingUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListPendingUsersUseCase creates a new ListPendingUsersUseCase instance.
func NewListPendingUsersUseCase(userRepo adapter.UserRepository) *ListPendingUsersUseCase {
	return &ListPendingUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute returns all unapproved registrations, oldest first. Role
// enforcement happens in middleware before this runs.
func (uc *ListPendingUsersUseCase) Execute(ctx context.Context) (*ListPendingUsersOutput, error) {
	pending, err := uc.userRepo.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}

	return &ListPendingUsersOutput{
		PendingUsers: pending,
	}, nil
}
