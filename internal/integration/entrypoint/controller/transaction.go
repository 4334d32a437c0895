package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/report"
	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/transaction"
	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/entrypoint/dto"
	"github.com/YenChengLai/expense-tracker-v2/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase       *transaction.ListTransactionsUseCase
	createUseCase     *transaction.CreateTransactionUseCase
	updateUseCase     *transaction.UpdateTransactionUseCase
	deleteUseCase     *transaction.DeleteTransactionUseCase
	bulkDeleteUseCase *transaction.BulkDeleteTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	bulkDeleteUseCase *transaction.BulkDeleteTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:       listUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		bulkDeleteUseCase: bulkDeleteUseCase,
	}
}

// filterParamsFromQuery builds filter parameters from the shared query
// vocabulary used by the list and report endpoints.
func filterParamsFromQuery(ctx *gin.Context) (report.FilterParams, error) {
	params := report.FilterParams{
		DateRange: report.RangeAllTime,
		Category:  ctx.Query("category"),
		Type:      entity.TransactionType(ctx.Query("type")),
		Search:    ctx.Query("search"),
		SortField: report.SortByDate,
		SortDir:   report.SortDescending,
	}

	if rangeStr := ctx.Query("date_range"); rangeStr != "" {
		switch report.DateRange(rangeStr) {
		case report.RangeAllTime, report.RangeLast30Days, report.RangeThisMonth, report.RangeThisYear, report.RangeCustom:
			params.DateRange = report.DateRange(rangeStr)
		default:
			return params, fmt.Errorf("unknown date_range %q", rangeStr)
		}
	}

	if params.DateRange == report.RangeCustom {
		startStr := ctx.Query("start_date")
		endStr := ctx.Query("end_date")
		if startStr == "" && endStr == "" {
			return params, fmt.Errorf("custom date_range requires start_date or end_date")
		}
		if startStr != "" {
			start, err := time.Parse("2006-01-02", startStr)
			if err != nil {
				return params, fmt.Errorf("invalid start_date %q", startStr)
			}
			params.CustomStart = start
		}
		if endStr != "" {
			end, err := time.Parse("2006-01-02", endStr)
			if err != nil {
				return params, fmt.Errorf("invalid end_date %q", endStr)
			}
			params.CustomEnd = end
		}
	}

	if sortStr := ctx.Query("sort_field"); sortStr != "" {
		switch report.SortField(sortStr) {
		case report.SortByAmount, report.SortByDate, report.SortByCategory:
			params.SortField = report.SortField(sortStr)
		default:
			return params, fmt.Errorf("unknown sort_field %q", sortStr)
		}
	}
	if dirStr := ctx.Query("sort_dir"); dirStr != "" {
		switch report.SortDirection(dirStr) {
		case report.SortAscending, report.SortDescending:
			params.SortDir = report.SortDirection(dirStr)
		default:
			return params, fmt.Errorf("unknown sort_dir %q", dirStr)
		}
	}

	return params, nil
}

// List handles GET /transactions requests. The response carries the
// filtered records plus the summary computed over the same set.
func (c *TransactionController) List(ctx *gin.Context) {
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

	input := transaction.ListTransactionsInput{
		UserID: userID,
		Params: params,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(output.View.Filtered),
		Summary:      dto.ToSummaryResponse(output.View.Summary),
	})
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:      userID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Category:    req.Category,
		Type:        entity.TransactionType(req.Type),
		Date:        date,
		Description: req.Description,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests. All fields are
// replaced by the request body.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Category:      req.Category,
		Type:          entity.TransactionType(req.Type),
		Date:          date,
		Description:   req.Description,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	input := transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// BulkDelete handles POST /transactions/bulk-delete requests.
func (c *TransactionController) BulkDelete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.BulkDeleteTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	transactionIDs := make([]uuid.UUID, 0, len(req.TransactionIDs))
	for _, idStr := range req.TransactionIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid transaction ID format: " + idStr,
			})
			return
		}
		transactionIDs = append(transactionIDs, id)
	}

	input := transaction.BulkDeleteTransactionsInput{
		UserID:         userID,
		TransactionIDs: transactionIDs,
	}

	output, err := c.bulkDeleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	skipped := make([]string, 0, len(output.SkippedIDs))
	for _, id := range output.SkippedIDs {
		skipped = append(skipped, id.String())
	}

	ctx.JSON(http.StatusOK, dto.BulkDeleteTransactionsResponse{
		DeletedCount: output.DeletedCount,
		SkippedIDs:   skipped,
	})
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
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

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionDate,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeEmptyCategory,
		domainerror.ErrCodeInvalidCurrency,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
