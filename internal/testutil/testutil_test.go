package testutil_test

import (
	"testing"

	"penny/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	var count int64
	if err := db.Table("forecasts").Count(&count).Error; err != nil {
		t.Errorf("forecasts table should exist after migration: %v", err)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	userID := testutil.NextUserID()
	if testutil.NextUserID() == userID {
		t.Fatal("NextUserID should not repeat")
	}

	fc := testutil.CreateTestForecast(t, db, userID, 4, 120)
	if fc.ID == "" {
		t.Fatal("forecast should have an ID assigned on create")
	}
	if fc.UserID != userID || fc.CategoryID != 4 || fc.ForecastedAmount != 120 {
		t.Errorf("unexpected fixture row: %+v", fc)
	}

	rows := testutil.Rows(userID, testutil.Period(0), map[int]float64{4: 120, 6: 80})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.UserID != userID || row.PeriodStart.IsZero() {
			t.Errorf("unexpected row: %+v", row)
		}
	}
}
