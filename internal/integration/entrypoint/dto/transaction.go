package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for creating a transaction.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category" binding:"required,max=50"`
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Description string          `json:"description" binding:"max=255"`
}

// UpdateTransactionRequest represents the request body for updating a transaction.
type UpdateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category" binding:"required,max=50"`
	Type        string          `json:"type" binding:"required,oneof=expense income"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Description string          `json:"description" binding:"max=255"`
}

// BulkDeleteTransactionsRequest represents the request body for bulk deletion.
type BulkDeleteTransactionsRequest struct {
	TransactionIDs []string `json:"transaction_ids" binding:"required,min=1"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BulkDeleteTransactionsResponse represents the result of a bulk deletion.
type BulkDeleteTransactionsResponse struct {
	DeletedCount int      `json:"deleted_count"`
	SkippedIDs   []string `json:"skipped_ids,omitempty"`
}

// ListTransactionsResponse represents the response for listing transactions:
// the filtered records plus the summary computed over that same set.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      SummaryResponse       `json:"summary"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID.String(),
		Amount:      transaction.Amount,
		Currency:    transaction.Currency,
		Category:    transaction.Category,
		Type:        string(transaction.Type),
		Date:        transaction.Date.Format("2006-01-02"),
		Description: transaction.Description,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of Transaction entities.
func ToTransactionResponses(transactions []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, transaction := range transactions {
		responses[i] = ToTransactionResponse(transaction)
	}
	return responses
}
