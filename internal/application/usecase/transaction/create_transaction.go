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
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Category    string
	Type        entity.TransactionType
	Date        time.Time
	Description string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	recentCache     adapter.RecentCategoryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	recentCache adapter.RecentCategoryCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		recentCache:     recentCache,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateFields(input.Amount, input.Currency, input.Category, input.Type, input.Date, input.Description); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Amount,
		input.Currency,
		input.Category,
		input.Type,
		input.Date,
		input.Description,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Recent-category tracking is advisory; a cache failure never fails
	// the write.
	if uc.recentCache != nil {
		if err := uc.recentCache.Touch(ctx, input.UserID, input.Category); err != nil {
			slog.Debug("Failed to update recent categories", "userID", input.UserID, "error", err)
		}
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
