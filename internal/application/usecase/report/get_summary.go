// Package report contains the transaction aggregation and filtering
// pipeline that backs the dashboard, list, and calendar views.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
)

// GetSummaryInput represents the input for computing a summary view.
type GetSummaryInput struct {
	UserID uuid.UUID
	Params FilterParams
}

// GetSummaryOutput represents the computed summary view.
type GetSummaryOutput struct {
	View View
}

// GetSummaryUseCase fetches a user's transactions and runs the
// aggregation pipeline over them. Date, category, and type filters are
// pushed down to the repository; search and sorting stay in the
// pipeline so a locally cached set can be re-filtered without another
// fetch.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	now             func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the reference clock. Used by tests.
func (uc *GetSummaryUseCase) WithClock(now func() time.Time) *GetSummaryUseCase {
	uc.now = now
	return uc
}

// Execute computes the summary view for the user's transactions.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	now := uc.now()

	filter := adapter.TransactionFilter{
		UserID: input.UserID,
		Search: input.Params.Search,
	}
	if start, end := input.Params.bounds(now); start != nil || end != nil {
		filter.StartDate = start
		filter.EndDate = end
	}
	if input.Params.Category != CategoryAll {
		filter.Category = input.Params.Category
	}
	if input.Params.Type != TypeAll {
		t := input.Params.Type
		filter.Type = &t
	}

	records, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return &GetSummaryOutput{
		View: ComputeView(records, input.Params, now),
	}, nil
}
