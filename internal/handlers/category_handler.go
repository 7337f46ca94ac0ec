package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "penny/internal/errors"
	"penny/internal/taxonomy"
)

// CategoryHandler serves the static category catalog.
type CategoryHandler struct {
	tax *taxonomy.Taxonomy
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(tax *taxonomy.Taxonomy) *CategoryHandler {
	return &CategoryHandler{tax: tax}
}

// GetCategories handles listing the full category catalog in display order.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.tax.Categories()})
}

// GetCategory handles fetching a single category with its taxonomy context.
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := parseCategoryID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, ok := h.tax.Lookup(id)
	if !ok {
		respondWithError(c, apperrors.ErrUnknownCategory)
		return
	}

	resp := gin.H{"category": category}
	if parentID, ok := h.tax.ParentOf(id); ok {
		resp["parent_id"] = parentID
	}
	if topID, ok := h.tax.TopLevelOf(id); ok {
		resp["top_level_id"] = topID
	}
	if children := h.tax.ChildrenOf(id); len(children) > 0 {
		resp["children"] = children
	}
	c.JSON(http.StatusOK, resp)
}

// expansionQuery holds the query parameters for expansion lookups.
type expansionQuery struct {
	Tier taxonomy.ExpansionTier `form:"tier" binding:"omitempty,expansion_tier"`
}

// GetExpansions handles fetching search-expansion phrases for a category.
// The tier query parameter selects primary (default) or secondary phrases.
func (h *CategoryHandler) GetExpansions(c *gin.Context) {
	id, err := parseCategoryID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if _, ok := h.tax.Lookup(id); !ok {
		respondWithError(c, apperrors.ErrUnknownCategory)
		return
	}

	var query expansionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	tier := taxonomy.TierPrimary
	if query.Tier == taxonomy.TierSecondary {
		tier = taxonomy.TierSecondary
	}

	c.JSON(http.StatusOK, gin.H{
		"category_id": id,
		"expansions":  h.tax.Expansions(id, tier),
	})
}
