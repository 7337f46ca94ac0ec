package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "penny/internal/errors"
	"penny/internal/models"
	"penny/internal/services"
)

// ForecastHandler handles forecast-related requests.
type ForecastHandler struct {
	forecastService services.ForecastServicer
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(forecastService services.ForecastServicer) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// UpsertForecastRequest represents the request payload for storing a forecast.
// Amount keeps the stored sign convention: spending positive, income negative.
type UpsertForecastRequest struct {
	CategoryID  int                        `json:"category_id" binding:"required"`
	Granularity models.ForecastGranularity `json:"granularity" binding:"required,granularity"`
	PeriodStart time.Time                  `json:"period_start" binding:"required"`
	Amount      float64                    `json:"forecasted_amount"`
}

// PipelineForecastRow is a single row in a pipeline bulk write.
type PipelineForecastRow struct {
	CategoryID  int       `json:"category_id" binding:"required"`
	PeriodStart time.Time `json:"period_start" binding:"required"`
	Amount      float64   `json:"forecasted_amount"`
}

// PipelineUpsertRequest represents a bulk forecast write from the
// forecasting pipeline, which refreshes all of a user's forecasts at once.
type PipelineUpsertRequest struct {
	UserID      uint                       `json:"user_id" binding:"required"`
	Granularity models.ForecastGranularity `json:"granularity" binding:"required,granularity"`
	Rows        []PipelineForecastRow      `json:"rows" binding:"required,min=1,dive"`
}

// listForecastQuery holds the shared query parameters for forecast reads.
type listForecastQuery struct {
	Granularity models.ForecastGranularity `form:"granularity" binding:"required,granularity"`
	Kind        services.ForecastKind      `form:"kind" binding:"omitempty,forecast_kind"`
}

// UpsertForecast handles creating or replacing a forecast row.
func (h *ForecastHandler) UpsertForecast(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpsertForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fc, err := h.forecastService.UpsertForecast(
		userID, req.CategoryID, req.Granularity, req.PeriodStart, req.Amount,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"forecast": fc})
}

// PipelineUpsertForecasts handles bulk writes from the forecasting pipeline.
// The route is protected by the pipeline API key rather than a user token, so
// the target user comes from the request body.
func (h *ForecastHandler) PipelineUpsertForecasts(c *gin.Context) {
	var req PipelineUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	for _, row := range req.Rows {
		if _, err := h.forecastService.UpsertForecast(
			req.UserID, row.CategoryID, req.Granularity, row.PeriodStart, row.Amount,
		); err != nil {
			respondWithError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"stored": len(req.Rows)})
}

// GetForecasts handles listing the user's decomposed forecasts.
func (h *ForecastHandler) GetForecasts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query listForecastQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if query.Kind == "" {
		query.Kind = services.ForecastKindAll
	}

	rows, err := h.forecastService.RetrieveForecasts(userID, query.Granularity, query.Kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"forecasts": rows})
}

// GetConsolidatedForecasts handles listing forecasts with complete child
// sets rolled up into their parent categories.
func (h *ForecastHandler) GetConsolidatedForecasts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query listForecastQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if query.Kind == "" {
		query.Kind = services.ForecastKindAll
	}

	rows, consolidated, err := h.forecastService.ConsolidatedForecasts(userID, query.Granularity, query.Kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"forecasts":        rows,
		"consolidated_ids": consolidated,
	})
}
