package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/adapter"
	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/report"
	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// stubTransactionRepository records the filter it was queried with and
// returns a fixed record set.
type stubTransactionRepository struct {
	adapter.TransactionRepository

	lastFilter adapter.TransactionFilter
	records    []*entity.Transaction
}

func (s *stubTransactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	s.lastFilter = filter
	return s.records, nil
}

func TestListTransactions_PushesPredicatesDown(t *testing.T) {
	userID := uuid.New()
	repo := &stubTransactionRepository{}
	uc := NewListTransactionsUseCase(repo)

	params := report.FilterParams{
		DateRange: report.RangeAllTime,
		Category:  "Food",
		Type:      entity.TransactionTypeExpense,
		Search:    "coffee",
		SortField: report.SortByDate,
		SortDir:   report.SortDescending,
	}

	if _, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID, Params: params}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastFilter.UserID != userID {
		t.Errorf("expected user %s in filter, got %s", userID, repo.lastFilter.UserID)
	}
	if repo.lastFilter.Category != "Food" {
		t.Errorf("expected category pushdown, got %q", repo.lastFilter.Category)
	}
	if repo.lastFilter.Search != "coffee" {
		t.Errorf("expected search pushdown, got %q", repo.lastFilter.Search)
	}
	if repo.lastFilter.Type == nil || *repo.lastFilter.Type != entity.TransactionTypeExpense {
		t.Errorf("expected expense type pushdown, got %v", repo.lastFilter.Type)
	}
}

func TestListTransactions_TypeAllIsNotPushedDown(t *testing.T) {
	repo := &stubTransactionRepository{}
	uc := NewListTransactionsUseCase(repo)

	input := ListTransactionsInput{
		UserID: uuid.New(),
		Params: report.FilterParams{DateRange: report.RangeAllTime, SortField: report.SortByDate, SortDir: report.SortDescending},
	}
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastFilter.Type != nil {
		t.Errorf("expected no type pushdown for the all selection, got %v", repo.lastFilter.Type)
	}
	if repo.lastFilter.Search != "" {
		t.Errorf("expected no search pushdown, got %q", repo.lastFilter.Search)
	}
}

func TestListTransactions_ViewSummarizesFetchedRecords(t *testing.T) {
	userID := uuid.New()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubTransactionRepository{
		records: []*entity.Transaction{
			{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(40), Category: "Food", Type: entity.TransactionTypeExpense, Date: date},
			{ID: uuid.New(), UserID: userID, Amount: decimal.NewFromInt(60), Category: "Food", Type: entity.TransactionTypeExpense, Date: date},
		},
	}
	uc := NewListTransactionsUseCase(repo).WithClock(func() time.Time { return date })

	output, err := uc.Execute(context.Background(), ListTransactionsInput{
		UserID: userID,
		Params: report.FilterParams{DateRange: report.RangeAllTime, SortField: report.SortByDate, SortDir: report.SortDescending},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.View.Filtered) != 2 {
		t.Fatalf("expected 2 records in the view, got %d", len(output.View.Filtered))
	}
	if !output.View.Summary.ExpenseTotal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected expense total 100, got %s", output.View.Summary.ExpenseTotal)
	}
}
