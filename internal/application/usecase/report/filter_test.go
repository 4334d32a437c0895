// Package report contains the transaction aggregation and filtering
// pipeline that backs the dashboard, list, and calendar views.
package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newRecord(amount float64, txType entity.TransactionType, category, description string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Amount:      decimal.NewFromFloat(amount),
		Currency:    entity.DefaultCurrency,
		Category:    category,
		Type:        txType,
		Date:        date,
		Description: description,
	}
}

func scenarioRecords() []*entity.Transaction {
	return []*entity.Transaction{
		newRecord(50, entity.TransactionTypeExpense, "Food", "groceries", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
		newRecord(20, entity.TransactionTypeIncome, "Salary", "paycheck", time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)),
	}
}

func TestComputeView_AllTimeNoFilters(t *testing.T) {
	records := scenarioRecords()

	view := ComputeView(records, FilterParams{DateRange: RangeAllTime}, testNow)

	if len(view.Filtered) != 2 {
		t.Fatalf("expected 2 filtered records, got %d", len(view.Filtered))
	}

	if !view.Summary.ExpenseTotal.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected expense total 50, got %s", view.Summary.ExpenseTotal)
	}

	if !view.Summary.IncomeTotal.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected income total 20, got %s", view.Summary.IncomeTotal)
	}

	if !view.Summary.NetTotal.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("expected net total -30, got %s", view.Summary.NetTotal)
	}

	food, ok := view.Summary.ByCategory["Food"]
	if !ok {
		t.Fatal("expected Food in category breakdown")
	}
	if food.Count != 1 || !food.Total.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected Food {count:1, total:50}, got {count:%d, total:%s}", food.Count, food.Total)
	}

	salary, ok := view.Summary.ByCategory["Salary"]
	if !ok {
		t.Fatal("expected Salary in category breakdown")
	}
	if salary.Count != 1 || !salary.Total.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected Salary {count:1, total:20}, got {count:%d, total:%s}", salary.Count, salary.Total)
	}

	if view.Summary.HighestCategory != "Food" {
		t.Errorf("expected highest category Food, got %q", view.Summary.HighestCategory)
	}
}

func TestComputeView_TypeFilter(t *testing.T) {
	records := scenarioRecords()

	view := ComputeView(records, FilterParams{
		DateRange: RangeAllTime,
		Type:      entity.TransactionTypeIncome,
	}, testNow)

	if len(view.Filtered) != 1 {
		t.Fatalf("expected 1 filtered record, got %d", len(view.Filtered))
	}
	if view.Filtered[0].Category != "Salary" {
		t.Errorf("expected the Salary record, got %q", view.Filtered[0].Category)
	}
	if !view.Summary.ExpenseTotal.IsZero() {
		t.Errorf("expected expense total 0 with no expenses present, got %s", view.Summary.ExpenseTotal)
	}
}

func TestComputeView_CategoryMatchIsCaseSensitive(t *testing.T) {
	records := scenarioRecords()

	view := ComputeView(records, FilterParams{
		DateRange: RangeAllTime,
		Category:  "food",
	}, testNow)

	if len(view.Filtered) != 0 {
		t.Errorf("expected lowercase filter not to match %q, got %d records", "Food", len(view.Filtered))
	}
}

func TestComputeView_SortByAmount(t *testing.T) {
	records := []*entity.Transaction{
		newRecord(30, entity.TransactionTypeExpense, "A", "", testNow),
		newRecord(10, entity.TransactionTypeExpense, "B", "", testNow),
		newRecord(20, entity.TransactionTypeExpense, "C", "", testNow),
	}

	t.Run("ascending", func(t *testing.T) {
		view := ComputeView(records, FilterParams{
			DateRange: RangeAllTime,
			SortField: SortByAmount,
			SortDir:   SortAscending,
		}, testNow)

		want := []string{"B", "C", "A"}
		for i, cat := range want {
			if view.Filtered[i].Category != cat {
				t.Errorf("position %d: expected %q, got %q", i, cat, view.Filtered[i].Category)
			}
		}
	})

	t.Run("descending reverses exactly", func(t *testing.T) {
		view := ComputeView(records, FilterParams{
			DateRange: RangeAllTime,
			SortField: SortByAmount,
			SortDir:   SortDescending,
		}, testNow)

		want := []string{"A", "C", "B"}
		for i, cat := range want {
			if view.Filtered[i].Category != cat {
				t.Errorf("position %d: expected %q, got %q", i, cat, view.Filtered[i].Category)
			}
		}
	})
}

func TestComputeView_SortStability(t *testing.T) {
	// Four records with equal amounts must keep their input order.
	records := []*entity.Transaction{
		newRecord(10, entity.TransactionTypeExpense, "A", "first", testNow),
		newRecord(10, entity.TransactionTypeExpense, "B", "second", testNow),
		newRecord(10, entity.TransactionTypeExpense, "C", "third", testNow),
		newRecord(10, entity.TransactionTypeExpense, "D", "fourth", testNow),
	}

	view := ComputeView(records, FilterParams{
		DateRange: RangeAllTime,
		SortField: SortByAmount,
		SortDir:   SortAscending,
	}, testNow)

	want := []string{"A", "B", "C", "D"}
	for i, cat := range want {
		if view.Filtered[i].Category != cat {
			t.Errorf("position %d: expected %q, got %q", i, cat, view.Filtered[i].Category)
		}
	}
}

func TestComputeView_Idempotence(t *testing.T) {
	records := scenarioRecords()
	params := FilterParams{
		DateRange: RangeAllTime,
		Search:    "pay",
		SortField: SortByDate,
		SortDir:   SortDescending,
	}

	first := ComputeView(records, params, testNow)
	second := ComputeView(records, params, testNow)

	if len(first.Filtered) != len(second.Filtered) {
		t.Fatalf("expected identical result sizes, got %d and %d", len(first.Filtered), len(second.Filtered))
	}
	for i := range first.Filtered {
		if first.Filtered[i] != second.Filtered[i] {
			t.Errorf("position %d: results differ between runs", i)
		}
	}
	if !first.Summary.ExpenseTotal.Equal(second.Summary.ExpenseTotal) {
		t.Errorf("expense totals differ between runs: %s vs %s", first.Summary.ExpenseTotal, second.Summary.ExpenseTotal)
	}
}

func TestComputeView_DoesNotMutateInput(t *testing.T) {
	records := []*entity.Transaction{
		newRecord(30, entity.TransactionTypeExpense, "A", "", testNow),
		newRecord(10, entity.TransactionTypeExpense, "B", "", testNow),
	}
	originalOrder := []string{records[0].Category, records[1].Category}

	ComputeView(records, FilterParams{
		DateRange: RangeAllTime,
		SortField: SortByAmount,
		SortDir:   SortAscending,
	}, testNow)

	for i, cat := range originalOrder {
		if records[i].Category != cat {
			t.Errorf("input slice was reordered at position %d: expected %q, got %q", i, cat, records[i].Category)
		}
	}
}

func TestComputeView_PredicateOrderIndependence(t *testing.T) {
	// Category, type, and search act on disjoint fields, so the result
	// must be the same regardless of which predicates are present: a
	// record survives iff it passes all of them.
	records := []*entity.Transaction{
		newRecord(50, entity.TransactionTypeExpense, "Food", "lunch downtown", testNow),
		newRecord(30, entity.TransactionTypeExpense, "Food", "movie night", testNow),
		newRecord(20, entity.TransactionTypeIncome, "Food", "lunch refund", testNow),
		newRecord(40, entity.TransactionTypeExpense, "Travel", "lunch on the road", testNow),
	}

	combined := ComputeView(records, FilterParams{
		DateRange: RangeAllTime,
		Category:  "Food",
		Type:      entity.TransactionTypeExpense,
		Search:    "lunch",
	}, testNow)

	if len(combined.Filtered) != 1 {
		t.Fatalf("expected exactly 1 record passing all predicates, got %d", len(combined.Filtered))
	}
	if combined.Filtered[0].Description != "lunch downtown" {
		t.Errorf("expected %q, got %q", "lunch downtown", combined.Filtered[0].Description)
	}

	// Applying the predicates one at a time over successive views must
	// converge on the same record.
	byCategory := ComputeView(records, FilterParams{DateRange: RangeAllTime, Category: "Food"}, testNow)
	byCategoryThenType := ComputeView(byCategory.Filtered, FilterParams{DateRange: RangeAllTime, Type: entity.TransactionTypeExpense}, testNow)
	stepwise := ComputeView(byCategoryThenType.Filtered, FilterParams{DateRange: RangeAllTime, Search: "lunch"}, testNow)

	if len(stepwise.Filtered) != 1 || stepwise.Filtered[0] != combined.Filtered[0] {
		t.Error("stepwise predicate application diverged from combined application")
	}
}

func TestComputeView_EmptyInput(t *testing.T) {
	view := ComputeView(nil, FilterParams{
		DateRange: RangeThisMonth,
		Category:  "Food",
		Search:    "anything",
		SortField: SortByDate,
	}, testNow)

	if len(view.Filtered) != 0 {
		t.Errorf("expected no filtered records, got %d", len(view.Filtered))
	}
	if !view.Summary.ExpenseTotal.IsZero() {
		t.Errorf("expected expense total 0, got %s", view.Summary.ExpenseTotal)
	}
	if len(view.Summary.ByCategory) != 0 {
		t.Errorf("expected empty category breakdown, got %d entries", len(view.Summary.ByCategory))
	}
	if view.Summary.HighestCategory != "" {
		t.Errorf("expected no highest category, got %q", view.Summary.HighestCategory)
	}
}

func TestComputeView_DateRanges(t *testing.T) {
	records := []*entity.Transaction{
		newRecord(10, entity.TransactionTypeExpense, "Old", "", time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)),
		newRecord(20, entity.TransactionTypeExpense, "ThisYear", "", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)),
		newRecord(30, entity.TransactionTypeExpense, "ThisMonth", "", time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)),
		newRecord(40, entity.TransactionTypeExpense, "Recent", "", time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC)),
	}

	tests := []struct {
		name   string
		params FilterParams
		want   int
	}{
		{"all time keeps everything", FilterParams{DateRange: RangeAllTime}, 4},
		{"this year drops prior years", FilterParams{DateRange: RangeThisYear}, 3},
		{"this month drops prior months", FilterParams{DateRange: RangeThisMonth}, 2},
		{"last 30 days", FilterParams{DateRange: RangeLast30Days}, 2},
		{
			"custom range is inclusive on both bounds",
			FilterParams{
				DateRange:   RangeCustom,
				CustomStart: time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC),
				CustomEnd:   time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC),
			},
			2,
		},
		{
			"custom range with open end",
			FilterParams{
				DateRange:   RangeCustom,
				CustomStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			},
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ComputeView(records, tt.params, testNow)
			if len(view.Filtered) != tt.want {
				t.Errorf("expected %d records, got %d", tt.want, len(view.Filtered))
			}
		})
	}
}

func TestComputeView_SearchCoversDescriptionAndCategory(t *testing.T) {
	records := []*entity.Transaction{
		newRecord(10, entity.TransactionTypeExpense, "Groceries", "weekly shop", testNow),
		newRecord(20, entity.TransactionTypeExpense, "Rent", "monthly groceries budget note", testNow),
		newRecord(30, entity.TransactionTypeExpense, "Travel", "flight", testNow),
	}

	view := ComputeView(records, FilterParams{
		DateRange: RangeAllTime,
		Search:    "GROCERIES",
	}, testNow)

	if len(view.Filtered) != 2 {
		t.Fatalf("expected 2 records matching case-insensitively, got %d", len(view.Filtered))
	}
}

func TestComputeView_SummaryConsistency(t *testing.T) {
	records := []*entity.Transaction{
		newRecord(50, entity.TransactionTypeExpense, "Food", "", testNow),
		newRecord(25, entity.TransactionTypeExpense, "Food", "", testNow),
		newRecord(40, entity.TransactionTypeExpense, "Travel", "", testNow),
	}

	view := ComputeView(records, FilterParams{
		DateRange: RangeAllTime,
		Type:      entity.TransactionTypeExpense,
	}, testNow)

	sum := decimal.Zero
	for _, stats := range view.Summary.ByCategory {
		sum = sum.Add(stats.Total)
	}

	if !sum.Equal(view.Summary.ExpenseTotal) {
		t.Errorf("category totals sum to %s but expense total is %s", sum, view.Summary.ExpenseTotal)
	}
}

func TestComputeView_MonthlyTotals(t *testing.T) {
	records := []*entity.Transaction{
		newRecord(10, entity.TransactionTypeExpense, "A", "", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
		newRecord(15, entity.TransactionTypeIncome, "B", "", time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)),
		newRecord(30, entity.TransactionTypeExpense, "C", "", time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}

	view := ComputeView(records, FilterParams{DateRange: RangeAllTime}, testNow)

	jan, ok := view.Summary.MonthlyTotals["2024-01"]
	if !ok {
		t.Fatal("expected a 2024-01 bucket")
	}
	if !jan.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected January total 25 across both types, got %s", jan)
	}

	mar, ok := view.Summary.MonthlyTotals["2024-03"]
	if !ok {
		t.Fatal("expected a 2024-03 bucket")
	}
	if !mar.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected March total 30, got %s", mar)
	}

	if len(view.Summary.MonthlyTotals) != 2 {
		t.Errorf("expected 2 month buckets, got %d", len(view.Summary.MonthlyTotals))
	}
}

func TestComputeView_HighestCategoryTieBreak(t *testing.T) {
	// Equal totals: the category seen first in the filtered set wins.
	records := []*entity.Transaction{
		newRecord(40, entity.TransactionTypeExpense, "Rent", "", testNow),
		newRecord(40, entity.TransactionTypeExpense, "Food", "", testNow),
	}

	view := ComputeView(records, FilterParams{DateRange: RangeAllTime}, testNow)

	if view.Summary.HighestCategory != "Rent" {
		t.Errorf("expected tie to resolve to first-seen category Rent, got %q", view.Summary.HighestCategory)
	}
}

func TestComputeView_DailyAverage(t *testing.T) {
	records := []*entity.Transaction{
		newRecord(60, entity.TransactionTypeExpense, "Food", "", time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)),
		newRecord(90, entity.TransactionTypeExpense, "Rent", "", time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)),
	}

	tests := []struct {
		name   string
		params FilterParams
		want   decimal.Decimal
	}{
		{
			"last 30 days divides by 30",
			FilterParams{DateRange: RangeLast30Days},
			decimal.NewFromInt(5),
		},
		{
			"this month divides by the day of month",
			FilterParams{DateRange: RangeThisMonth},
			decimal.NewFromInt(10),
		},
		{
			"this year divides by elapsed year days",
			FilterParams{DateRange: RangeThisYear},
			decimal.NewFromInt(150).Div(decimal.NewFromInt(167)),
		},
		{
			"all time divides by the fixed 365 day denominator",
			FilterParams{DateRange: RangeAllTime},
			decimal.NewFromInt(150).Div(decimal.NewFromInt(365)),
		},
		{
			"custom range divides by inclusive day count",
			FilterParams{
				DateRange:   RangeCustom,
				CustomStart: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
				CustomEnd:   time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			},
			decimal.NewFromInt(15),
		},
		{
			"open ended custom range runs up to now",
			FilterParams{
				DateRange:   RangeCustom,
				CustomStart: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			},
			decimal.NewFromInt(10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := ComputeView(records, tt.params, testNow)
			if !view.Summary.DailyAverage.Equal(tt.want) {
				t.Errorf("expected daily average %s, got %s", tt.want, view.Summary.DailyAverage)
			}
		})
	}
}
