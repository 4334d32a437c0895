// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"regexp"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
)

// SignupUserInput represents the input for user signup.
type SignupUserInput struct {
	Email    string
	Name     string
	Password string
}

// SignupUserOutput represents the output of user signup. No tokens are
// issued: the account stays unusable until an administrator approves it.
type SignupUserOutput struct {
	Message string
	User    *entity.User
}

// SignupUserUseCase handles user signup logic.
type SignupUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewSignupUserUseCase creates a new SignupUserUseCase instance.
func NewSignupUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *SignupUserUseCase {
	return &SignupUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user signup. The created account is unapproved.
func (uc *SignupUserUseCase) Execute(ctx context.Context, input SignupUserInput) (*SignupUserOutput, error) {
	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Validate password strength
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	// Check if email already exists
	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	// Hash password
	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user entity (unapproved until an admin acts)
	user := entity.NewUser(input.Email, input.Name, passwordHash)

	// Save user to database
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &SignupUserOutput{
		Message: "Account created. An administrator will review your registration shortly.",
		User:    user,
	}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
