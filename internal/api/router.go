package api

import (
	"context"
	"net/http"
	"time"

	"fridge-api/internal/api/handlers/detect"
	"fridge-api/internal/api/handlers/health"
	"fridge-api/internal/api/handlers/preference"
	recipeHandler "fridge-api/internal/api/handlers/recipe"
	"fridge-api/internal/api/handlers/recommend"
	"fridge-api/internal/api/middleware"
	"fridge-api/internal/core/catalog"
	"fridge-api/internal/core/engine"
	"fridge-api/internal/core/prefs"
	"fridge-api/internal/core/store"
	"fridge-api/internal/infrastructure/config"
	"fridge-api/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (10MB，detect 會帶 base64 圖片)
	maxBodySize = 10 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, prefsStore prefs.Store) (*gin.Engine, error) {
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
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流與去重
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	router.Use(middleware.Deduplication(cfg))

	common.LogInfo("Initializing services",
		zap.Bool("store_enabled", cfg.Store.Enabled),
		zap.Bool("redis_enabled", cfg.Prefs.RedisEnabled),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化服務
	rng := common.NewRand()

	var storeClient *store.Client
	var catalogSource catalog.DynamicSource
	if cfg.Store.Enabled {
		storeClient = store.NewClient(cfg)
		catalogSource = storeClient
	}
	catalogService := catalog.NewService(catalogSource)
	prefsService := prefs.NewService(prefsStore, cfg.Prefs.SearchCap)
	recommender := engine.NewRecommender(rng)
	detector := engine.NewCannedDetector(rng)

	// 全局中間件：設置超時和配置
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		// 設置配置
		c.Set("config", cfg)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	{
		recipes := recipeHandler.NewHandler(catalogService, storeClient, cfg, rng)
		recommendations := recommend.NewHandler(catalogService, prefsService, recommender, cfg)
		detection := detect.NewHandler(detector)
		preferences := preference.NewHandler(prefsService)

		// 食譜目錄與 CRUD
		recipeGroup := api.Group("/recipes")
		{
			recipeGroup.GET("", recipes.HandleList)
			recipeGroup.GET("/random", recipes.HandleRandom)
			recipeGroup.GET("/:id", recipes.HandleGet)
			recipeGroup.POST("", recipes.HandleCreate)
			recipeGroup.PUT("/:id", recipes.HandleUpdate)
			recipeGroup.DELETE("/:id", recipes.HandleDelete)
			recipeGroup.POST("/suggest", recipes.HandleSuggest)
		}

		// 個人化推薦
		recGroup := api.Group("/recommendations")
		{
			recGroup.GET("", recommendations.HandleRecommendations)
			recGroup.GET("/plan", recommendations.HandlePlan)
			recGroup.GET("/trends", recommendations.HandleTrends)
		}

		// 食材辨識
		api.POST("/detect", detection.HandleDetect)

		// 使用者偏好
		prefsGroup := api.Group("/prefs")
		{
			prefsGroup.GET("/ingredients", preferences.HandleGetIngredients)
			prefsGroup.PUT("/ingredients", preferences.HandlePutIngredients)
			prefsGroup.GET("/favorites", preferences.HandleGetFavorites)
			prefsGroup.POST("/favorites/:id", preferences.HandleAddFavorite)
			prefsGroup.DELETE("/favorites/:id", preferences.HandleRemoveFavorite)
			prefsGroup.GET("/searches", preferences.HandleGetSearches)
			prefsGroup.POST("/searches", preferences.HandleAppendSearch)
			prefsGroup.DELETE("/searches", preferences.HandleClearSearches)
			prefsGroup.GET("/mealplan", preferences.HandleGetMealPlan)
			prefsGroup.PUT("/mealplan", preferences.HandlePutMealPlan)
			prefsGroup.GET("/shopping", preferences.HandleGetShoppingList)
			prefsGroup.PUT("/shopping", preferences.HandlePutShoppingList)
			prefsGroup.POST("/shopping/optimize", preferences.HandleOptimizeShoppingList)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("store_enabled", cfg.Store.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
