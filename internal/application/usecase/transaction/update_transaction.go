// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// All payload fields are full replacements, not patches.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Currency      string
	Category      string
	Type          entity.TransactionType
	Date          time.Time
	Description   string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	recentCache     adapter.RecentCategoryCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	recentCache adapter.RecentCategoryCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		recentCache:     recentCache,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateFields(input.Amount, input.Currency, input.Category, input.Type, input.Date, input.Description); err != nil {
		return nil, err
	}

	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	transaction.Amount = input.Amount
	if input.Currency != "" {
		transaction.Currency = input.Currency
	}
	transaction.Category = input.Category
	transaction.Type = input.Type
	transaction.Date = input.Date
	transaction.Description = input.Description
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if uc.recentCache != nil {
		if err := uc.recentCache.Touch(ctx, input.UserID, input.Category); err != nil {
			slog.Debug("Failed to update recent categories", "userID", input.UserID, "error", err)
		}
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
