// Package report contains the transaction aggregation and filtering
// pipeline that backs the dashboard, list, and calendar views.
package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

func TestBuildMonthGrid_January2024(t *testing.T) {
	// January 2024 starts on a Monday: one leading empty Sunday cell,
	// 31 days, then padding to a 5-week, 35-cell grid.
	grid := BuildMonthGrid(2024, time.January, nil)

	if len(grid.Weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(grid.Weeks))
	}

	cellCount := 0
	for i, week := range grid.Weeks {
		if len(week) != 7 {
			t.Errorf("week %d: expected 7 cells, got %d", i, len(week))
		}
		cellCount += len(week)
	}
	if cellCount != 35 {
		t.Errorf("expected 35 cells, got %d", cellCount)
	}

	firstWeek := grid.Weeks[0]
	if !firstWeek[0].IsEmpty() {
		t.Error("expected the leading Sunday cell to be empty")
	}
	if firstWeek[1].Day != 1 {
		t.Errorf("expected day 1 in the Monday slot, got %d", firstWeek[1].Day)
	}

	lastWeek := grid.Weeks[4]
	if lastWeek[3].Day != 31 {
		t.Errorf("expected day 31 in the Wednesday slot of the last week, got %d", lastWeek[3].Day)
	}
	for i := 4; i < 7; i++ {
		if !lastWeek[i].IsEmpty() {
			t.Errorf("expected trailing cell %d of the last week to be empty", i)
		}
	}
}

func TestBuildMonthGrid_BucketsTransactionsByDay(t *testing.T) {
	records := []*entity.Transaction{
		newRecord(10, entity.TransactionTypeExpense, "Food", "", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
		newRecord(15, entity.TransactionTypeExpense, "Food", "", time.Date(2024, time.January, 5, 12, 30, 0, 0, time.UTC)),
		newRecord(99, entity.TransactionTypeExpense, "Travel", "", time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)),
	}

	grid := BuildMonthGrid(2024, time.January, records)

	var day5 *CalendarCell
	for _, week := range grid.Weeks {
		for i := range week {
			if week[i].Day == 5 {
				day5 = &week[i]
			}
		}
	}
	if day5 == nil {
		t.Fatal("expected a cell for day 5")
	}

	if len(day5.Transactions) != 2 {
		t.Fatalf("expected 2 transactions on day 5, got %d", len(day5.Transactions))
	}
	if !day5.DailyTotal.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected daily total 25, got %s", day5.DailyTotal)
	}

	// The February record must not leak into January's grid.
	for _, week := range grid.Weeks {
		for _, cell := range week {
			for _, tx := range cell.Transactions {
				if tx.Category == "Travel" {
					t.Error("transaction from another month appeared in the grid")
				}
			}
		}
	}
}

func TestBuildMonthGrid_EmptyDaysHaveZeroTotal(t *testing.T) {
	grid := BuildMonthGrid(2024, time.June, nil)

	if grid.Year != 2024 || grid.Month != time.June {
		t.Errorf("expected grid for 2024-06, got %d-%02d", grid.Year, int(grid.Month))
	}

	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.IsEmpty() {
				continue
			}
			if len(cell.Transactions) != 0 {
				t.Errorf("day %d: expected no transactions", cell.Day)
			}
			if !cell.DailyTotal.IsZero() {
				t.Errorf("day %d: expected zero total, got %s", cell.Day, cell.DailyTotal)
			}
		}
	}
}
