package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/admin"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/entrypoint/dto"
)

// AdminController handles the registration approval endpoints. Routes
// are guarded by the admin role middleware.
type AdminController struct {
	listPendingUseCase *admin.ListPendingUsersUseCase
	approveUseCase     *admin.ApproveUserUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	listPendingUseCase *admin.ListPendingUsersUseCase,
	approveUseCase *admin.ApproveUserUseCase,
) *AdminController {
	return &AdminController{
		listPendingUseCase: listPendingUseCase,
		approveUseCase:     approveUseCase,
	}
}

// ListPendingUsers handles GET /admin/pending-users requests.
func (c *AdminController) ListPendingUsers(ctx *gin.Context) {
	output, err := c.listPendingUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve pending users",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.PendingUsersResponse{
		Users: dto.ToPendingUserResponses(output.PendingUsers),
	})
}

// ApproveUser handles POST /admin/approve-user requests. Approve false
// rejects and removes the registration.
func (c *AdminController) ApproveUser(ctx *gin.Context) {
	var req dto.ApproveUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	input := admin.ApproveUserInput{
		UserID:  userID,
		Approve: *req.Approve,
	}

	output, err := c.approveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// handleAdminError handles admin errors and returns appropriate HTTP responses.
func (c *AdminController) handleAdminError(ctx *gin.Context, err error) {
	var adminErr *domainerror.AdminError
	if errors.As(err, &adminErr) {
		statusCode := http.StatusInternalServerError
		switch adminErr.Code {
		case domainerror.ErrCodePendingUserNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeAdminRequired:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: adminErr.Message,
			Code:  string(adminErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
