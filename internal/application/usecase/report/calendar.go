// Package report contains the transaction aggregation and filtering
// pipeline that backs the dashboard, list, and calendar views.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

const daysPerWeek = 7

// CalendarCell is a single cell in the month grid. Day is zero for the
// leading/trailing padding cells outside the month.
type CalendarCell struct {
	Day          int
	Transactions []*entity.Transaction
	DailyTotal   decimal.Decimal
}

// IsEmpty reports whether the cell is grid padding outside the month.
func (c CalendarCell) IsEmpty() bool {
	return c.Day == 0
}

// MonthGrid is the calendar view of one month: week rows of exactly
// seven cells starting on Sunday.
type MonthGrid struct {
	Year  int
	Month time.Month
	Weeks [][]CalendarCell
}

// BuildMonthGrid partitions the given transactions by calendar
// day-of-month for the target month and lays them out on a Sunday-first
// week grid. Records dated outside the month are ignored. Cells before
// day 1 and after the last day are padding; the final week is padded to
// exactly seven cells.
func BuildMonthGrid(year int, month time.Month, records []*entity.Transaction) MonthGrid {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstOfMonth.AddDate(0, 1, -1).Day()

	byDay := make(map[int][]*entity.Transaction)
	totals := make(map[int]decimal.Decimal)
	for _, rec := range records {
		if rec.Date.Year() != year || rec.Date.Month() != month {
			continue
		}
		day := rec.Date.Day()
		byDay[day] = append(byDay[day], rec)
		totals[day] = totals[day].Add(rec.Amount)
	}

	// time.Weekday is Sunday-based, matching the grid's first column.
	leading := int(firstOfMonth.Weekday())

	cells := make([]CalendarCell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, CalendarCell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, CalendarCell{
			Day:          day,
			Transactions: byDay[day],
			DailyTotal:   totals[day],
		})
	}
	for len(cells)%daysPerWeek != 0 {
		cells = append(cells, CalendarCell{})
	}

	weeks := make([][]CalendarCell, 0, len(cells)/daysPerWeek)
	for i := 0; i < len(cells); i += daysPerWeek {
		weeks = append(weeks, cells[i:i+daysPerWeek])
	}

	return MonthGrid{
		Year:  year,
		Month: month,
		Weeks: weeks,
	}
}
