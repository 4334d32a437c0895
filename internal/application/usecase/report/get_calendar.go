package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	domainerror "github.com/YenChengLai/expense-tracker-v2/internal/domain/error"
)

// GetCalendarInput represents the input for building a month grid.
type GetCalendarInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// GetCalendarOutput represents the computed month grid.
type GetCalendarOutput struct {
	Grid MonthGrid
}

// GetCalendarUseCase fetches one month of transactions and buckets them
// onto the Sunday-first week grid.
type GetCalendarUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(transactionRepo adapter.TransactionRepository) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute builds the month grid for the given year and month.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) (*GetCalendarOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return nil, domainerror.NewValidationError("month", "must be between 1 and 12", nil)
	}
	if input.Year < 1 {
		return nil, domainerror.NewValidationError("year", "must be a positive year", nil)
	}

	monthStart := time.Date(input.Year, input.Month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	records, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &monthStart,
		EndDate:   &monthEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return &GetCalendarOutput{
		Grid: BuildMonthGrid(input.Year, input.Month, records),
	}, nil
}
