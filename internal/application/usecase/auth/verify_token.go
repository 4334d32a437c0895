// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
)

// VerifyTokenInput represents the input for token verification.
type VerifyTokenInput struct {
	Token string
}

// VerifyTokenOutput represents the identity carried by a valid token.
type VerifyTokenOutput struct {
	UserID uuid.UUID
	Email  string
	Role   entity.UserRole
}

// VerifyTokenUseCase resolves an access token into the caller's identity.
type VerifyTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewVerifyTokenUseCase creates a new VerifyTokenUseCase instance.
func NewVerifyTokenUseCase(tokenService adapter.TokenService) *VerifyTokenUseCase {
	return &VerifyTokenUseCase{
		tokenService: tokenService,
	}
}

// Execute validates the access token and returns its claims.
func (uc *VerifyTokenUseCase) Execute(ctx context.Context, input VerifyTokenInput) (*VerifyTokenOutput, error) {
	claims, err := uc.tokenService.ValidateAccessToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired token",
			domainerror.ErrInvalidToken,
		)
	}

	return &VerifyTokenOutput{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
