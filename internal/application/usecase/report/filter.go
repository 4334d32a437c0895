// Package report contains the transaction aggregation and filtering
// pipeline that backs the dashboard, list, and calendar views.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/YenChengLai/expense-tracker-v2/internal/domain/entity"
)

// DateRange selects how the date filter bound is derived.
type DateRange string

const (
	RangeAllTime    DateRange = "all_time"
	RangeLast30Days DateRange = "last_30_days"
	RangeThisMonth  DateRange = "this_month"
	RangeThisYear   DateRange = "this_year"
	RangeCustom     DateRange = "custom"
)

// SortField selects the comparison key for sorting.
type SortField string

const (
	SortByAmount   SortField = "amount"
	SortByDate     SortField = "date"
	SortByCategory SortField = "category"
)

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// CategoryAll matches every category when used as the category filter.
const CategoryAll = ""

// TypeAll matches both transaction types when used as the type filter.
const TypeAll = ""

// FilterParams holds the user-selected criteria governing which
// transactions are retained and how they are ordered.
//
// Category matching is exact and case-sensitive: "food" does not match
// "Food". This mirrors the behavior the views were built against.
type FilterParams struct {
	DateRange   DateRange
	CustomStart time.Time // Custom range lower bound (inclusive)
	CustomEnd   time.Time // Custom range upper bound (inclusive); zero means open-ended
	Category    string    // CategoryAll retains every category
	Type        entity.TransactionType
	Search      string // case-insensitive substring over description and category
	SortField   SortField
	SortDir     SortDirection
}

// View is the result of running the pipeline: the filtered, sorted
// records plus summary statistics derived from that same set.
type View struct {
	Filtered []*entity.Transaction
	Summary  Summary
}

// ComputeView runs the full pipeline over the given records. It is a
// pure function: the input slice and its records are never mutated, and
// identical inputs yield identical output. The reference time anchors
// the relative date ranges.
func ComputeView(records []*entity.Transaction, params FilterParams, now time.Time) View {
	filtered := make([]*entity.Transaction, 0, len(records))

	start, end := params.bounds(now)
	search := strings.ToLower(params.Search)

	for _, rec := range records {
		if start != nil && rec.Date.Before(*start) {
			continue
		}
		if end != nil && rec.Date.After(*end) {
			continue
		}
		if params.Category != CategoryAll && rec.Category != params.Category {
			continue
		}
		if params.Type != TypeAll && rec.Type != params.Type {
			continue
		}
		if search != "" && !matchesSearch(rec, search) {
			continue
		}
		filtered = append(filtered, rec)
	}

	sortRecords(filtered, params.SortField, params.SortDir)

	return View{
		Filtered: filtered,
		Summary:  buildSummary(filtered, params, now),
	}
}

// bounds resolves the date range into inclusive filter bounds. A nil
// bound is unbounded on that side.
func (p FilterParams) bounds(now time.Time) (start, end *time.Time) {
	switch p.DateRange {
	case RangeLast30Days:
		s := now.AddDate(0, 0, -30)
		return &s, nil
	case RangeThisMonth:
		s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return &s, nil
	case RangeThisYear:
		s := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return &s, nil
	case RangeCustom:
		if !p.CustomStart.IsZero() {
			s := p.CustomStart
			start = &s
		}
		if !p.CustomEnd.IsZero() {
			e := p.CustomEnd
			end = &e
		}
		return start, end
	default: // RangeAllTime
		return nil, nil
	}
}

// matchesSearch reports whether the lower-cased search term occurs in
// the record's description or category.
func matchesSearch(rec *entity.Transaction, search string) bool {
	return strings.Contains(strings.ToLower(rec.Description), search) ||
		strings.Contains(strings.ToLower(rec.Category), search)
}

// sortRecords stably sorts the records in place by the given field and
// direction. Records with equal keys keep their relative input order.
func sortRecords(records []*entity.Transaction, field SortField, dir SortDirection) {
	less := lessFunc(field)
	if less == nil {
		return
	}
	if dir == SortDescending {
		inner := less
		less = func(a, b *entity.Transaction) bool { return inner(b, a) }
	}
	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j])
	})
}

func lessFunc(field SortField) func(a, b *entity.Transaction) bool {
	switch field {
	case SortByAmount:
		return func(a, b *entity.Transaction) bool {
			return a.Amount.Cmp(b.Amount) < 0
		}
	case SortByDate:
		return func(a, b *entity.Transaction) bool {
			return a.Date.Before(b.Date)
		}
	case SortByCategory:
		return func(a, b *entity.Transaction) bool {
			return a.Category < b.Category
		}
	default:
		return nil
	}
}
