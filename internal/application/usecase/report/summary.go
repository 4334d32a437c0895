// Package report contains the transaction aggregation and filtering
// pipeline that backs the dashboard, list, and calendar views.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// allTimeDenominatorDays is the fixed day count used for the daily
// average when no bounded range is selected.
const allTimeDenominatorDays = 365

// CategoryStats accumulates the per-category breakdown over a filtered
// record set.
type CategoryStats struct {
	Count int
	Total decimal.Decimal
}

// Summary holds the aggregate statistics derived from a filtered set.
// ExpenseTotal sums expense-typed amounts only; NetTotal is income
// minus expenses. ByCategory and MonthlyTotals accumulate amounts of
// both types.
type Summary struct {
	ExpenseTotal decimal.Decimal
	IncomeTotal  decimal.Decimal
	NetTotal     decimal.Decimal

	// ByCategory maps category name to its count and summed amount.
	ByCategory map[string]CategoryStats

	// DailyAverage is ExpenseTotal divided by the day count implied by
	// the selected date range.
	DailyAverage decimal.Decimal

	// HighestCategory is the category with the greatest ByCategory
	// total; ties go to the category seen first in the filtered set.
	// Empty when the filtered set is empty.
	HighestCategory string

	// MonthlyTotals maps a zero-padded "YYYY-MM" key to the summed
	// amount for that month. Keys sort lexicographically in
	// chronological order.
	MonthlyTotals map[string]decimal.Decimal
}

// buildSummary derives the summary statistics from an already-filtered
// record set.
func buildSummary(filtered []*entity.Transaction, params FilterParams, now time.Time) Summary {
	summary := Summary{
		ExpenseTotal:  decimal.Zero,
		IncomeTotal:   decimal.Zero,
		NetTotal:      decimal.Zero,
		DailyAverage:  decimal.Zero,
		ByCategory:    make(map[string]CategoryStats),
		MonthlyTotals: make(map[string]decimal.Decimal),
	}

	// First-appearance order makes the highest-category tie-break
	// deterministic; map iteration order is not.
	categoryOrder := make([]string, 0, len(filtered))

	for _, rec := range filtered {
		switch rec.Type {
		case entity.TransactionTypeExpense:
			summary.ExpenseTotal = summary.ExpenseTotal.Add(rec.Amount)
		case entity.TransactionTypeIncome:
			summary.IncomeTotal = summary.IncomeTotal.Add(rec.Amount)
		}

		stats, seen := summary.ByCategory[rec.Category]
		if !seen {
			stats.Total = decimal.Zero
			categoryOrder = append(categoryOrder, rec.Category)
		}
		stats.Count++
		stats.Total = stats.Total.Add(rec.Amount)
		summary.ByCategory[rec.Category] = stats

		monthKey := rec.Date.Format("2006-01")
		summary.MonthlyTotals[monthKey] = summary.MonthlyTotals[monthKey].Add(rec.Amount)
	}

	summary.NetTotal = summary.IncomeTotal.Sub(summary.ExpenseTotal)

	if days := rangeDays(params, now); days > 0 {
		summary.DailyAverage = summary.ExpenseTotal.Div(decimal.NewFromInt(int64(days)))
	}

	highest := decimal.Zero
	for _, name := range categoryOrder {
		if total := summary.ByCategory[name].Total; total.Cmp(highest) > 0 {
			highest = total
			summary.HighestCategory = name
		} else if summary.HighestCategory == "" {
			summary.HighestCategory = name
		}
	}

	return summary
}

// rangeDays returns the inclusive day count implied by the date range.
// The denominators are fixed per range for compatibility with the
// dashboards this pipeline replaces.
func rangeDays(params FilterParams, now time.Time) int {
	switch params.DateRange {
	case RangeLast30Days:
		return 30
	case RangeThisMonth:
		return now.Day()
	case RangeThisYear:
		return now.YearDay()
	case RangeCustom:
		return customRangeDays(params, now)
	default: // RangeAllTime
		return allTimeDenominatorDays
	}
}

// customRangeDays returns the inclusive day count between the custom
// bounds, using now as the upper bound when the range is open-ended.
func customRangeDays(params FilterParams, now time.Time) int {
	start := params.CustomStart
	if start.IsZero() {
		return allTimeDenominatorDays
	}
	end := params.CustomEnd
	if end.IsZero() {
		end = now
	}

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	days := int(endDay.Sub(startDay).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
