// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/report"
)

// ListTransactionsInput represents the input for listing transactions.
// Params carries the full filter/sort selection; the category, type,
// and search predicates are pushed down to the repository, while date
// bounds and sorting run in the report pipeline over the fetched set.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Params report.FilterParams
}

// ListTransactionsOutput represents the output of listing transactions:
// the filtered, sorted records together with the summary computed over
// that same set.
type ListTransactionsOutput struct {
	View report.View
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the reference time source. Intended for tests.
func (uc *ListTransactionsUseCase) WithClock(now func() time.Time) *ListTransactionsUseCase {
	uc.now = now
	return uc
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	filter := adapter.TransactionFilter{
		UserID:   input.UserID,
		Category: input.Params.Category,
		Search:   input.Params.Search,
	}
	if input.Params.Type != report.TypeAll {
		t := input.Params.Type
		filter.Type = &t
	}

	records, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return &ListTransactionsOutput{
		View: report.ComputeView(records, input.Params, uc.now()),
	}, nil
}
