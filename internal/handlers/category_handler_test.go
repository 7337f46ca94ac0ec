package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "penny/internal/errors"
	"penny/internal/taxonomy"
)

func setupCategoryRouter() *gin.Engine {
	handler := NewCategoryHandler(taxonomy.New())
	r := gin.New()
	r.GET("/categories", handler.GetCategories)
	r.GET("/categories/:id", handler.GetCategory)
	r.GET("/categories/:id/expansions", handler.GetExpansions)
	return r
}

func TestCategoryHandler_GetCategories(t *testing.T) {
	r := setupCategoryRouter()

	rec := doRequest(r, "GET", "/categories", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	cats := result["categories"].([]interface{})
	if len(cats) == 0 {
		t.Fatal("expected non-empty catalog")
	}
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	t.Run("returns category with hierarchy", func(t *testing.T) {
		r := setupCategoryRouter()

		rec := doRequest(r, "GET", "/categories/4", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["parent_id"].(float64) != 1 {
			t.Errorf("expected parent 1, got %v", result["parent_id"])
		}
		if result["top_level_id"].(float64) != 41 {
			t.Errorf("expected top-level 41, got %v", result["top_level_id"])
		}
	})

	t.Run("parent lists children", func(t *testing.T) {
		r := setupCategoryRouter()

		rec := doRequest(r, "GET", "/categories/9", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		children := result["children"].([]interface{})
		if len(children) != 4 {
			t.Errorf("expected 4 children for Bills, got %v", children)
		}
	})

	t.Run("transfer has no top level", func(t *testing.T) {
		r := setupCategoryRouter()

		rec := doRequest(r, "GET", "/categories/45", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if _, ok := result["top_level_id"]; ok {
			t.Error("expected no top_level_id for Transfer")
		}
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		r := setupCategoryRouter()

		rec := doRequest(r, "GET", "/categories/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNKNOWN_CATEGORY")
	})

	t.Run("returns 400 for non-numeric id", func(t *testing.T) {
		r := setupCategoryRouter()

		rec := doRequest(r, "GET", "/categories/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_GetExpansions(t *testing.T) {
	t.Run("primary by default", func(t *testing.T) {
		r := setupCategoryRouter()

		rec := doRequest(r, "GET", "/categories/4/expansions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		phrases := result["expansions"].([]interface{})
		if len(phrases) == 0 {
			t.Fatal("expected primary expansions")
		}
	})

	t.Run("secondary tier is a superset", func(t *testing.T) {
		r := setupCategoryRouter()

		primary := parseJSON(t, doRequest(r, "GET", "/categories/4/expansions", ""))
		secondary := parseJSON(t, doRequest(r, "GET", "/categories/4/expansions?tier=secondary", ""))

		p := primary["expansions"].([]interface{})
		s := secondary["expansions"].([]interface{})
		if len(s) <= len(p) {
			t.Errorf("expected secondary to extend primary: %d <= %d", len(s), len(p))
		}
	})

	t.Run("returns 400 for unknown tier", func(t *testing.T) {
		r := setupCategoryRouter()

		rec := doRequest(r, "GET", "/categories/4/expansions?tier=tertiary", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), apperrors.ErrInvalidInput.Code)
	})

	t.Run("returns 404 for unknown id", func(t *testing.T) {
		r := setupCategoryRouter()

		rec := doRequest(r, "GET", "/categories/999/expansions", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
