package api

import (
	"context"
	"net/http"
	"time"

	analysisHandler "recipe-analyzer/internal/api/handlers/analysis"
	"recipe-analyzer/internal/api/handlers/health"
	recipeHandler "recipe-analyzer/internal/api/handlers/recipe"
	"recipe-analyzer/internal/api/middleware"
	"recipe-analyzer/internal/core/analysis"
	"recipe-analyzer/internal/infrastructure/cache"
	"recipe-analyzer/internal/infrastructure/config"
	"recipe-analyzer/internal/infrastructure/store"
	"recipe-analyzer/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 請求超時設置
const timeoutDuration = 30 * time.Second

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheBackend cache.Cache, recipeStore *store.RecipeStore) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(cfg.BodyLimit))

	// 重複請求去重
	router.Use(middleware.Deduplication(cfg))

	// 限流
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 初始化分析服務
	analysisSvc := analysis.NewService(cacheBackend)

	// 全局中間件：設置請求超時
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"status": "error",
				"error":  common.ErrRequestTimeout.Message,
				"code":   common.ErrRequestTimeout.Code,
			})
		}
	})

	// 健康檢查路由
	healthHandler := health.NewHandler(cfg.App.Version, recipeStore)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		analysisH := analysisHandler.NewHandler(analysisSvc)
		recipeH := recipeHandler.NewHandler(recipeStore)

		// 文字分析路由
		analysisGroup := api.Group("/analysis")
		{
			analysisGroup.POST("/calories", analysisH.Calories)
			analysisGroup.POST("/difficulty", analysisH.Difficulty)
			analysisGroup.POST("/time", analysisH.Time)
			analysisGroup.POST("/full", analysisH.Full)
			analysisGroup.GET("/cache/stats", analysisH.CacheStats)
		}
		api.POST("/suggestions", analysisH.Suggestions)

		// 食譜資料集路由
		api.GET("/recipes", recipeH.List)
		api.GET("/recipes/random", recipeH.Random)
		api.GET("/recipes/filter", recipeH.Filter)
		api.GET("/recipe/id/:id", recipeH.ByID)
		api.GET("/recipe/:title", recipeH.ByTitle)
		api.GET("/search", recipeH.Search)
		api.GET("/search/ingredient/:ingredient", recipeH.SearchByIngredient)
		api.GET("/statistics", recipeH.Statistics)
		api.GET("/cuisines", recipeH.Cuisines)
		api.GET("/difficulties", recipeH.Difficulties)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", cfg.BodyLimit),
	)

	return router, nil
}
