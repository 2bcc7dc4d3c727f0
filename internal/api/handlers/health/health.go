package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-analyzer/internal/infrastructure/store"
	"recipe-analyzer/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 健康檢查處理器
type Handler struct {
	version string
	store   *store.RecipeStore
}

// NewHandler 創建健康檢查處理器
func NewHandler(version string, st *store.RecipeStore) *Handler {
	return &Handler{version: version, store: st}
}

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Store     *StoreStatus           `json:"store,omitempty"`
}

// StoreStatus 資料庫狀態
type StoreStatus struct {
	Connected   bool `json:"connected"`
	RecipeCount int  `json:"recipe_count"`
}

// HealthCheck 健康檢查處理器
func (h *Handler) HealthCheck(c *gin.Context) {
	// 獲取運行時信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	// 檢查資料庫連線與食譜數量
	if h.store != nil {
		status := &StoreStatus{}
		if err := h.store.Ping(c.Request.Context()); err == nil {
			status.Connected = true
			if count, err := h.store.Count(c.Request.Context()); err == nil {
				status.RecipeCount = count
			}
		} else {
			response.Status = "degraded"
		}
		response.Store = status
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查處理器，資料庫不可用時回報未就緒
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"error":  "store unreachable",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
