// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
)

// BulkDeleteTransactionsInput represents the input for bulk deletion.
type BulkDeleteTransactionsInput struct {
	UserID         uuid.UUID
	TransactionIDs []uuid.UUID
}

// BulkDeleteTransactionsOutput reports how many records were removed and
// which IDs were skipped (missing or owned by another user).
type BulkDeleteTransactionsOutput struct {
	DeletedCount int
	SkippedIDs   []uuid.UUID
}

// BulkDeleteTransactionsUseCase handles bulk transaction deletion logic.
type BulkDeleteTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewBulkDeleteTransactionsUseCase creates a new BulkDeleteTransactionsUseCase instance.
func NewBulkDeleteTransactionsUseCase(transactionRepo adapter.TransactionRepository) *BulkDeleteTransactionsUseCase {
	return &BulkDeleteTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute deletes each listed transaction that belongs to the caller.
// IDs that cannot be deleted are reported rather than failing the batch.
func (uc *BulkDeleteTransactionsUseCase) Execute(ctx context.Context, input BulkDeleteTransactionsInput) (*BulkDeleteTransactionsOutput, error) {
	output := &BulkDeleteTransactionsOutput{}

	for _, id := range input.TransactionIDs {
		transaction, err := uc.transactionRepo.FindByID(ctx, id)
		if err != nil || transaction.UserID != input.UserID {
			output.SkippedIDs = append(output.SkippedIDs, id)
			continue
		}

		if err := uc.transactionRepo.Delete(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to delete transaction %s: %w", id, err)
		}
		output.DeletedCount++
	}

	return output, nil
}
