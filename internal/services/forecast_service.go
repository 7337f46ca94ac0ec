package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "penny/internal/errors"
	"penny/internal/forecast"
	"penny/internal/models"
	"penny/internal/taxonomy"
)

// forecastService handles forecast-related business logic.
type forecastService struct {
	db  *gorm.DB
	tax *taxonomy.Taxonomy
}

// NewForecastService creates a new ForecastServicer.
func NewForecastService(db *gorm.DB, tax *taxonomy.Taxonomy) ForecastServicer {
	return &forecastService{db: db, tax: tax}
}

// UpsertForecast creates or replaces the forecast for one
// (category, granularity, period). Amounts keep the stored sign
// convention: spending positive, income negative.
func (s *forecastService) UpsertForecast(
	userID uint,
	categoryID int,
	granularity models.ForecastGranularity,
	periodStart time.Time,
	amount float64,
) (*models.Forecast, error) {
	if _, ok := s.tax.Lookup(categoryID); !ok {
		return nil, apperrors.ErrUnknownCategory
	}
	if granularity != models.ForecastGranularityWeekly && granularity != models.ForecastGranularityMonthly {
		return nil, apperrors.ErrInvalidGranularity
	}
	if periodStart.IsZero() {
		return nil, apperrors.ErrMissingPeriod
	}

	fc := &models.Forecast{
		UserID:           userID,
		CategoryID:       categoryID,
		Granularity:      granularity,
		PeriodStart:      periodStart,
		ForecastedAmount: amount,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "category_id"},
			{Name: "granularity"}, {Name: "period_start"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"forecasted_amount", "updated_at"}),
	}).Create(fc).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return fc, nil
}

// RetrieveForecasts loads the user's forecasts at one granularity, filters
// them by category kind, resolves display names, and decomposes parent
// totals so rows never overlap. Rows come back decomposed exactly once.
func (s *forecastService) RetrieveForecasts(
	userID uint,
	granularity models.ForecastGranularity,
	kind ForecastKind,
) ([]forecast.Row, error) {
	stored, err := s.load(userID, granularity)
	if err != nil {
		return nil, err
	}

	rows := s.toRows(s.filterKind(stored, kind))
	decomposed, err := forecast.Decompose(s.tax, rows)
	if err != nil {
		return nil, err
	}
	return decomposed, nil
}

// ConsolidatedForecasts retrieves decomposed forecasts and folds complete
// child sets back into parent rollups for compact display. The second
// return value lists the synthesized parent category ids.
func (s *forecastService) ConsolidatedForecasts(
	userID uint,
	granularity models.ForecastGranularity,
	kind ForecastKind,
) ([]forecast.Row, []int, error) {
	rows, err := s.RetrieveForecasts(userID, granularity, kind)
	if err != nil {
		return nil, nil, err
	}
	return forecast.Consolidate(s.tax, rows)
}

func (s *forecastService) load(userID uint, granularity models.ForecastGranularity) ([]models.Forecast, error) {
	if granularity != models.ForecastGranularityWeekly && granularity != models.ForecastGranularityMonthly {
		return nil, apperrors.ErrInvalidGranularity
	}

	var stored []models.Forecast
	err := s.db.
		Where("user_id = ? AND granularity = ?", userID, granularity).
		Order("period_start, category_id").
		Find(&stored).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stored, nil
}

// filterKind keeps income or spending categories. Income membership comes
// from the taxonomy's income leaves plus their ancestors, so parent income
// rows survive the income filter.
func (s *forecastService) filterKind(stored []models.Forecast, kind ForecastKind) []models.Forecast {
	if kind == ForecastKindAll || kind == "" {
		return stored
	}

	wantIncome := kind == ForecastKindIncome
	out := make([]models.Forecast, 0, len(stored))
	for _, fc := range stored {
		if s.tax.IsIncome(fc.CategoryID) == wantIncome {
			out = append(out, fc)
		}
	}
	return out
}

func (s *forecastService) toRows(stored []models.Forecast) []forecast.Row {
	rows := make([]forecast.Row, 0, len(stored))
	for _, fc := range stored {
		rows = append(rows, forecast.Row{
			UserID:      fc.UserID,
			CategoryID:  fc.CategoryID,
			PeriodStart: fc.PeriodStart,
			Amount:      fc.ForecastedAmount,
			Category:    s.tax.DisplayName(fc.CategoryID),
		})
	}
	return rows
}
