package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupDiffRouter() *gin.Engine {
	r := gin.New()
	r.POST("/categorization/diff", NewDiffHandler().ScoreDiff)
	return r
}

func TestDiffHandler_ScoreDiff(t *testing.T) {
	t.Run("identical lists score zero", func(t *testing.T) {
		r := setupDiffRouter()

		rec := doRequest(r, "POST", "/categorization/diff",
			`{"a":[{"id":4,"score":0.3}],"b":[{"id":4,"score":0.3}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["distance"].(float64) != 0 {
			t.Errorf("expected distance 0, got %v", result["distance"])
		}
	})

	t.Run("confident mismatch scores five", func(t *testing.T) {
		r := setupDiffRouter()

		rec := doRequest(r, "POST", "/categorization/diff",
			`{"a":[{"id":4,"score":0.5}],"b":[]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["distance"].(float64) != 5 {
			t.Errorf("expected distance 5, got %v", result["distance"])
		}
	})

	t.Run("custom threshold echoed back", func(t *testing.T) {
		r := setupDiffRouter()

		rec := doRequest(r, "POST", "/categorization/diff",
			`{"a":[],"b":[],"threshold":0.6}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["threshold"].(float64) != 0.6 {
			t.Errorf("expected threshold 0.6, got %v", result["threshold"])
		}
	})

	t.Run("returns 400 on out-of-range score", func(t *testing.T) {
		r := setupDiffRouter()

		rec := doRequest(r, "POST", "/categorization/diff",
			`{"a":[{"id":4,"score":1.5}],"b":[]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		r := setupDiffRouter()

		rec := doRequest(r, "POST", "/categorization/diff", `{"a":`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
