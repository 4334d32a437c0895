package controller

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YenChengLai/expense-tracker-v2/internal/application/usecase/report"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/api/v1/transactions?"+rawQuery, nil)
	return ctx
}

func TestFilterParamsFromQuery_Defaults(t *testing.T) {
	params, err := filterParamsFromQuery(queryContext(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.DateRange != report.RangeAllTime {
		t.Errorf("expected all_time default, got %q", params.DateRange)
	}
	if params.SortField != report.SortByDate {
		t.Errorf("expected date sort default, got %q", params.SortField)
	}
	if params.SortDir != report.SortDescending {
		t.Errorf("expected descending default, got %q", params.SortDir)
	}
}

func TestFilterParamsFromQuery_CustomRange(t *testing.T) {
	t.Run("without any bound is rejected", func(t *testing.T) {
		_, err := filterParamsFromQuery(queryContext(t, "date_range=custom"))
		if err == nil {
			t.Fatal("expected an error for a custom range with no bounds")
		}
	})

	t.Run("with both bounds", func(t *testing.T) {
		params, err := filterParamsFromQuery(queryContext(t, "date_range=custom&start_date=2026-03-01&end_date=2026-03-31"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC); !params.CustomStart.Equal(want) {
			t.Errorf("expected start %v, got %v", want, params.CustomStart)
		}
		if want := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC); !params.CustomEnd.Equal(want) {
			t.Errorf("expected end %v, got %v", want, params.CustomEnd)
		}
	})

	t.Run("open ended with only a start", func(t *testing.T) {
		params, err := filterParamsFromQuery(queryContext(t, "date_range=custom&start_date=2026-03-01"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if params.CustomStart.IsZero() {
			t.Error("expected the start bound to be set")
		}
		if !params.CustomEnd.IsZero() {
			t.Errorf("expected no end bound, got %v", params.CustomEnd)
		}
	})

	t.Run("with a malformed bound is rejected", func(t *testing.T) {
		_, err := filterParamsFromQuery(queryContext(t, "date_range=custom&start_date=03/01/2026"))
		if err == nil {
			t.Fatal("expected an error for a malformed start_date")
		}
	})
}

func TestFilterParamsFromQuery_RejectsUnknownEnums(t *testing.T) {
	for _, rawQuery := range []string{
		"date_range=last_century",
		"sort_field=description",
		"sort_dir=sideways",
	} {
		if _, err := filterParamsFromQuery(queryContext(t, rawQuery)); err == nil {
			t.Errorf("expected an error for %q", rawQuery)
		}
	}
}
