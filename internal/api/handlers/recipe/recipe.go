// Package recipe 提供食譜資料集查詢的 HTTP 處理器。
package recipe

import (
	"net/http"
	"strconv"

	"recipe-analyzer/internal/infrastructure/store"
	"recipe-analyzer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 食譜查詢處理器
type Handler struct {
	store *store.RecipeStore
}

// NewHandler 創建食譜查詢處理器
func NewHandler(st *store.RecipeStore) *Handler {
	return &Handler{store: st}
}

// respondError 將錯誤轉成統一的錯誤響應
func respondError(c *gin.Context, err error) {
	if ce, ok := err.(*common.CustomError); ok {
		c.JSON(ce.Status, gin.H{
			"status": "error",
			"error":  ce.Message,
			"code":   ce.Code,
		})
		return
	}

	common.LogError("食譜查詢失敗",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status": "error",
		"error":  common.ErrInternalError.Message,
		"code":   common.ErrInternalError.Code,
	})
}

// intQuery 讀取整數查詢參數
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// List 分頁列出食譜
func (h *Handler) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)
	if limit > 100 {
		limit = 100
	}
	sortBy := c.DefaultQuery("sort_by", "created_at")
	order := c.DefaultQuery("order", "desc")

	result, err := h.store.List(c.Request.Context(), page, limit, sortBy, order)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"recipes": result.Recipes,
		"total":   result.Total,
		"page":    result.Page,
		"pages":   result.Pages,
		"limit":   result.Limit,
	})
}

// Random 隨機取一份食譜
func (h *Handler) Random(c *gin.Context) {
	recipe, err := h.store.Random(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"recipe": recipe,
	})
}

// Filter 多條件過濾
func (h *Handler) Filter(c *gin.Context) {
	filter := common.RecipeFilter{
		Difficulty:  c.Query("difficulty"),
		Cuisine:     c.Query("cuisine"),
		MaxTime:     intQuery(c, "max_time", 0),
		MinCalories: intQuery(c, "min_calories", 0),
		MaxCalories: intQuery(c, "max_calories", 0),
	}
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	result, err := h.store.Filter(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"recipes": result.Recipes,
		"total":   result.Total,
		"page":    result.Page,
		"pages":   result.Pages,
		"limit":   result.Limit,
	})
}

// ByTitle 以標題查詢
func (h *Handler) ByTitle(c *gin.Context) {
	recipe, err := h.store.ByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"recipe": recipe,
	})
}

// ByID 以 recipe_id 查詢
func (h *Handler) ByID(c *gin.Context) {
	recipe, err := h.store.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"recipe": recipe,
	})
}

// Search 關鍵字搜尋標題與食材
func (h *Handler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  "Query parameter 'q' is required",
			"code":   common.ErrCodeInvalidRequest,
		})
		return
	}

	limit := intQuery(c, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	recipes, err := h.store.Search(c.Request.Context(), q, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"query":   q,
		"count":   len(recipes),
		"recipes": recipes,
	})
}

// SearchByIngredient 搜尋含特定食材的食譜
func (h *Handler) SearchByIngredient(c *gin.Context) {
	ingredient := c.Param("ingredient")
	limit := intQuery(c, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	recipes, err := h.store.SearchByIngredient(c.Request.Context(), ingredient, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"ingredient": ingredient,
		"count":      len(recipes),
		"recipes":    recipes,
	})
}

// Statistics 資料庫統計
func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.store.Statistics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"statistics": stats,
	})
}

// Cuisines 列出所有菜系
func (h *Handler) Cuisines(c *gin.Context) {
	cuisines, err := h.store.Cuisines(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"cuisines": cuisines,
	})
}

// Difficulties 列出所有難度等級
func (h *Handler) Difficulties(c *gin.Context) {
	difficulties, err := h.store.Difficulties(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"difficulties": difficulties,
	})
}
