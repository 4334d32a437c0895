package dto

import (
	"github.com/shopspring/decimal"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/report"
)

// CalendarQuery represents the query parameters for the calendar report.
type CalendarQuery struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required"`
}

// CategoryStatsResponse represents per-category aggregates.
type CategoryStatsResponse struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// SummaryResponse represents the aggregate statistics over a filtered set.
type SummaryResponse struct {
	ExpenseTotal    decimal.Decimal                  `json:"expense_total"`
	IncomeTotal     decimal.Decimal                  `json:"income_total"`
	NetTotal        decimal.Decimal                  `json:"net_total"`
	DailyAverage    decimal.Decimal                  `json:"daily_average"`
	HighestCategory string                           `json:"highest_category,omitempty"`
	ByCategory      map[string]CategoryStatsResponse `json:"by_category"`
	MonthlyTotals   map[string]decimal.Decimal       `json:"monthly_totals"`
}

// CalendarCellResponse represents one grid cell. Empty cells pad the
// grid outside the month and carry day 0.
type CalendarCellResponse struct {
	Day          int                   `json:"day"`
	Transactions []TransactionResponse `json:"transactions,omitempty"`
	DailyTotal   decimal.Decimal       `json:"daily_total"`
}

// CalendarResponse represents the Sunday-first month grid.
type CalendarResponse struct {
	Year  int                      `json:"year"`
	Month int                      `json:"month"`
	Weeks [][]CalendarCellResponse `json:"weeks"`
}

// ToSummaryResponse converts report summary statistics to a SummaryResponse DTO.
func ToSummaryResponse(summary report.Summary) SummaryResponse {
	byCategory := make(map[string]CategoryStatsResponse, len(summary.ByCategory))
	for name, stats := range summary.ByCategory {
		byCategory[name] = CategoryStatsResponse{Count: stats.Count, Total: stats.Total}
	}

	return SummaryResponse{
		ExpenseTotal:    summary.ExpenseTotal,
		IncomeTotal:     summary.IncomeTotal,
		NetTotal:        summary.NetTotal,
		DailyAverage:    summary.DailyAverage,
		HighestCategory: summary.HighestCategory,
		ByCategory:      byCategory,
		MonthlyTotals:   summary.MonthlyTotals,
	}
}

// ToCalendarResponse converts a month grid to a CalendarResponse DTO.
func ToCalendarResponse(grid report.MonthGrid) CalendarResponse {
	weeks := make([][]CalendarCellResponse, len(grid.Weeks))
	for i, week := range grid.Weeks {
		cells := make([]CalendarCellResponse, len(week))
		for j, cell := range week {
			cells[j] = CalendarCellResponse{
				Day:          cell.Day,
				Transactions: ToTransactionResponses(cell.Transactions),
				DailyTotal:   cell.DailyTotal,
			}
		}
		weeks[i] = cells
	}

	return CalendarResponse{
		Year:  grid.Year,
		Month: int(grid.Month),
		Weeks: weeks,
	}
}
