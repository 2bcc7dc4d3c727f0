// Package analysis 提供文字分析相關的 HTTP 處理器。
package analysis

import (
	"encoding/json"
	"net/http"
	"time"

	"recipe-analyzer/internal/core/analysis"
	"recipe-analyzer/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// Handler 分析處理器
type Handler struct {
	svc *analysis.Service
}

// NewHandler 創建分析處理器
func NewHandler(svc *analysis.Service) *Handler {
	return &Handler{svc: svc}
}

// stepsField 步驟欄位，接受字串或字串陣列
type stepsField string

// UnmarshalJSON 兼容兩種步驟格式
func (s *stepsField) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = stepsField(str)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = stepsField(common.JoinSteps(list))
	return nil
}

// analyzeRequest 分析請求
type analyzeRequest struct {
	Ingredients []string   `json:"ingredients"`
	Steps       stepsField `json:"steps"`
}

// bind 解析請求體
func bind(c *gin.Context, req *analyzeRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  "Invalid request body",
			"code":   common.ErrCodeInvalidRequest,
		})
		return false
	}
	return true
}

// requireIngredients 驗證食材列表
func requireIngredients(c *gin.Context, ingredients []string) bool {
	if common.CountNonBlank(ingredients) == 0 {
		c.JSON(common.ErrEmptyIngredients.Status, gin.H{
			"status": "error",
			"error":  common.ErrEmptyIngredients.Message,
			"code":   common.ErrEmptyIngredients.Code,
		})
		return false
	}
	return true
}

// requireSteps 驗證步驟文字
func requireSteps(c *gin.Context, steps string) bool {
	if steps == "" {
		c.JSON(common.ErrEmptySteps.Status, gin.H{
			"status": "error",
			"error":  common.ErrEmptySteps.Message,
			"code":   common.ErrEmptySteps.Code,
		})
		return false
	}
	return true
}

// Calories 熱量分析
func (h *Handler) Calories(c *gin.Context) {
	var req analyzeRequest
	if !bind(c, &req) || !requireIngredients(c, req.Ingredients) {
		return
	}

	start := time.Now()
	result := h.svc.AnalyzeCalories(c.Request.Context(), req.Ingredients)
	common.LogAnalysis("calories", time.Since(start), nil, requestid.Get(c))

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"analysis": result,
	})
}

// Difficulty 難度分析
func (h *Handler) Difficulty(c *gin.Context) {
	var req analyzeRequest
	if !bind(c, &req) || !requireIngredients(c, req.Ingredients) {
		return
	}

	start := time.Now()
	result := h.svc.AnalyzeDifficulty(c.Request.Context(), req.Ingredients, string(req.Steps))
	common.LogAnalysis("difficulty", time.Since(start), nil, requestid.Get(c))

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"analysis": result,
	})
}

// Time 時間預測
func (h *Handler) Time(c *gin.Context) {
	var req analyzeRequest
	if !bind(c, &req) || !requireSteps(c, string(req.Steps)) {
		return
	}

	start := time.Now()
	result := h.svc.AnalyzeTime(c.Request.Context(), string(req.Steps))
	common.LogAnalysis("time", time.Since(start), nil, requestid.Get(c))

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"analysis": result,
	})
}

// Suggestions 烹飪建議
func (h *Handler) Suggestions(c *gin.Context) {
	var req analyzeRequest
	if !bind(c, &req) || !requireIngredients(c, req.Ingredients) {
		return
	}

	start := time.Now()
	result := h.svc.Suggest(c.Request.Context(), req.Ingredients, string(req.Steps))
	common.LogAnalysis("suggestions", time.Since(start), nil, requestid.Get(c))

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"suggestions": result,
	})
}

// Full 完整分析
func (h *Handler) Full(c *gin.Context) {
	var req analyzeRequest
	if !bind(c, &req) || !requireIngredients(c, req.Ingredients) {
		return
	}

	start := time.Now()
	result := h.svc.AnalyzeFull(c.Request.Context(), req.Ingredients, string(req.Steps))
	common.LogAnalysis("full", time.Since(start), nil, requestid.Get(c))

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"analysis": result,
	})
}

// CacheStats 快取統計
func (h *Handler) CacheStats(c *gin.Context) {
	stats := h.svc.CacheStats()
	if stats == nil {
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"cache":  gin.H{"enabled": false},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"cache":  stats,
	})
}
