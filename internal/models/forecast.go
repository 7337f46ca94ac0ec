package models

import "time"

// ForecastGranularity represents the period length a forecast covers
type ForecastGranularity string

const (
	ForecastGranularityWeekly  ForecastGranularity = "weekly"
	ForecastGranularityMonthly ForecastGranularity = "monthly"
)

// Forecast represents a projected amount for one category and period.
// Amounts follow the stored sign convention: spending is positive, income
// is negative. Parent-category rows hold overlapping totals that include
// their children; the service layer decomposes them at read time.
type Forecast struct {
	Base
	UserID           uint                `gorm:"not null;uniqueIndex:idx_forecast_user_cat_gran_period" json:"user_id"`
	CategoryID       int                 `gorm:"not null;uniqueIndex:idx_forecast_user_cat_gran_period" json:"category_id"`
	Granularity      ForecastGranularity `gorm:"not null;uniqueIndex:idx_forecast_user_cat_gran_period" json:"granularity"`
	PeriodStart      time.Time           `gorm:"not null;uniqueIndex:idx_forecast_user_cat_gran_period" json:"period_start"`
	ForecastedAmount float64             `gorm:"not null" json:"forecasted_amount"`
}
