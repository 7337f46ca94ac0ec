package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"penny/internal/diffscore"
	apperrors "penny/internal/errors"
)

// DiffHandler scores the distance between two category classifications.
type DiffHandler struct{}

// NewDiffHandler creates a new DiffHandler.
func NewDiffHandler() *DiffHandler {
	return &DiffHandler{}
}

// DiffRequest represents two classifications to compare. Threshold is
// optional and defaults to the standard high-confidence cutoff.
type DiffRequest struct {
	A         []diffscore.CategoryScore `json:"a" binding:"dive,category_score"`
	B         []diffscore.CategoryScore `json:"b" binding:"dive,category_score"`
	Threshold *float64                  `json:"threshold" binding:"omitempty,gt=0,lte=1"`
}

// ScoreDiff handles comparing two classification score lists. The response
// distance runs from 0.0 (identical) to 5.0 (disjoint).
func (h *DiffHandler) ScoreDiff(c *gin.Context) {
	var req DiffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	threshold := diffscore.DefaultHighConfidenceThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	c.JSON(http.StatusOK, gin.H{
		"distance":  diffscore.ScoreWithThreshold(req.A, req.B, threshold),
		"threshold": threshold,
	})
}
