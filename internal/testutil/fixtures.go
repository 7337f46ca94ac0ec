package testutil

import (
	"sync/atomic"
	"testing"
	"time"

	"penny/internal/forecast"
	"penny/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NextUserID returns a fresh user id so tests do not collide on the
// unique forecast index.
func NextUserID() uint {
	return uint(nextID())
}

// Period returns a canonical period start for tests, offset by n months.
func Period(n int) time.Time {
	return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
}

// CreateTestForecast stores a monthly forecast row for the user.
func CreateTestForecast(t *testing.T, db *gorm.DB, userID uint, categoryID int, amount float64) *models.Forecast {
	t.Helper()
	return CreateTestForecastAt(t, db, userID, categoryID, amount, Period(0))
}

// CreateTestForecastAt stores a monthly forecast row at a given period.
func CreateTestForecastAt(t *testing.T, db *gorm.DB, userID uint, categoryID int, amount float64, periodStart time.Time) *models.Forecast {
	t.Helper()

	fc := &models.Forecast{
		UserID:           userID,
		CategoryID:       categoryID,
		Granularity:      models.ForecastGranularityMonthly,
		PeriodStart:      periodStart,
		ForecastedAmount: amount,
	}
	if err := db.Create(fc).Error; err != nil {
		t.Fatalf("failed to create test forecast: %v", err)
	}
	return fc
}

// Rows builds in-memory forecast rows for one user and period from a
// categoryID -> amount map.
func Rows(userID uint, periodStart time.Time, amounts map[int]float64) []forecast.Row {
	rows := make([]forecast.Row, 0, len(amounts))
	for categoryID, amount := range amounts {
		rows = append(rows, forecast.Row{
			UserID:      userID,
			CategoryID:  categoryID,
			PeriodStart: periodStart,
			Amount:      amount,
		})
	}
	return rows
}
