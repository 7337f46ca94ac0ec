package services

import (
	"time"

	"penny/internal/forecast"
	"penny/internal/models"
)

// ForecastKind filters retrieved forecasts by category kind.
type ForecastKind string

const (
	ForecastKindSpending ForecastKind = "spending"
	ForecastKindIncome   ForecastKind = "income"
	ForecastKindAll      ForecastKind = "all"
)

// ForecastServicer defines the contract for forecast-related business logic.
type ForecastServicer interface {
	UpsertForecast(userID uint, categoryID int, granularity models.ForecastGranularity, periodStart time.Time, amount float64) (*models.Forecast, error)
	RetrieveForecasts(userID uint, granularity models.ForecastGranularity, kind ForecastKind) ([]forecast.Row, error)
	ConsolidatedForecasts(userID uint, granularity models.ForecastGranularity, kind ForecastKind) ([]forecast.Row, []int, error)
}
