package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/auth"
	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/user"
	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/entrypoint/dto"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/entrypoint/middleware"
)

// UserController handles user profile endpoints.
type UserController struct {
	getProfileUseCase    *user.GetProfileUseCase
	updateProfileUseCase *user.UpdateProfileUseCase
	deleteAccountUseCase *auth.DeleteAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *user.GetProfileUseCase,
	updateProfileUseCase *user.UpdateProfileUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
) *UserController {
	return &UserController{
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
		deleteAccountUseCase: deleteAccountUseCase,
	}
}

// GetProfile handles GET /users/me requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), user.GetProfileInput{UserID: userID})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// UpdateProfile handles PATCH /users/me requests. Absent fields are
// left unchanged.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := user.UpdateProfileInput{
		UserID:    userID,
		Name:      req.Name,
		Currency:  req.Currency,
		Language:  req.Language,
		AvatarURL: req.AvatarURL,
	}
	if req.DateFormat != nil {
		format := entity.DateFormat(*req.DateFormat)
		input.DateFormat = &format
	}
	if req.Theme != nil {
		theme := entity.ThemePreference(*req.Theme)
		input.Theme = &theme
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// DeleteAccount handles DELETE /users/me requests.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.DeleteAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.DeleteAccountInput{
		UserID:       userID,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	}

	if _, err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleUserError handles profile errors and returns appropriate HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := c.getStatusCodeForUserError(authErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var validationErr *domainerror.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: validationErr.Error(),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForUserError maps auth error codes to HTTP status codes for profile endpoints.
func (c *UserController) getStatusCodeForUserError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case domainerror.ErrCodeInvalidConfirmation,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
