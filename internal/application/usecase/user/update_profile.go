// Package user contains user profile use cases.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
)

// UpdateProfileInput represents the input for updating a user profile.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID     uuid.UUID
	Name       *string
	Currency   *string
	DateFormat *entity.DateFormat
	Language   *string
	Theme      *entity.ThemePreference
	AvatarURL  *string
}

// UpdateProfileOutput represents the updated profile.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute applies the requested profile changes.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewValidationError("name", "must not be empty", nil)
		}
		user.Name = name
	}

	if input.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*input.Currency))
		if len(currency) != 3 {
			return nil, domainerror.NewValidationError("currency", "must be a three-letter code", nil)
		}
		user.Currency = currency
	}

	if input.DateFormat != nil {
		if !isValidDateFormat(*input.DateFormat) {
			return nil, domainerror.NewValidationError("dateFormat", "unsupported date format", nil)
		}
		user.DateFormat = *input.DateFormat
	}

	if input.Language != nil {
		user.Language = *input.Language
	}

	if input.Theme != nil {
		if !isValidTheme(*input.Theme) {
			return nil, domainerror.NewValidationError("theme", "must be light, dark, or system", nil)
		}
		user.Theme = *input.Theme
	}

	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &UpdateProfileOutput{
		User: user,
	}, nil
}

func isValidDateFormat(f entity.DateFormat) bool {
	switch f {
	case entity.DateFormatDMY, entity.DateFormatMDY, entity.DateFormatYMD:
		return true
	}
	return false
}

func isValidTheme(t entity.ThemePreference) bool {
	switch t {
	case entity.ThemeLight, entity.ThemeDark, entity.ThemeSystem:
		return true
	}
	return false
}
