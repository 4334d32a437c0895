package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/report"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/entrypoint/dto"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/entrypoint/middleware"
)

// ReportController handles summary and calendar report endpoints.
type ReportController struct {
	summaryUseCase  *report.GetSummaryUseCase
	calendarUseCase *report.GetCalendarUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	summaryUseCase *report.GetSummaryUseCase,
	calendarUseCase *report.GetCalendarUseCase,
) *ReportController {
	return &ReportController{
		summaryUseCase:  summaryUseCase,
		calendarUseCase: calendarUseCase,
	}
}

// Summary handles GET /reports/summary requests. It accepts the same
// filter vocabulary as the transaction list.
func (c *ReportController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	params, err := filterParamsFromQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	input := report.GetSummaryInput{
		UserID: userID,
		Params: params,
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.View.Summary))
}

// Calendar handles GET /reports/calendar requests.
func (c *ReportController) Calendar(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var query dto.CalendarQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing or invalid year/month parameters",
		})
		return
	}

	input := report.GetCalendarInput{
		UserID: userID,
		Year:   query.Year,
		Month:  time.Month(query.Month),
	}

	output, err := c.calendarUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var validationErr *domainerror.ValidationError
		if errors.As(err, &validationErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: validationErr.Error(),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute calendar",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(output.Grid))
}
