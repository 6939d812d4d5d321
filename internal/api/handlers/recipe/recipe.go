package recipe

import (
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"fridge-api/internal/core/catalog"
	"fridge-api/internal/core/engine"
	"fridge-api/internal/core/store"
	"fridge-api/internal/infrastructure/config"
	"fridge-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 食譜處理程序
type Handler struct {
	catalogService *catalog.Service
	storeClient    *store.Client
	config         *config.Config
	rng            *rand.Rand
}

// NewHandler 創建新的食譜處理程序（storeClient 可為 nil，CRUD 會回 503）
func NewHandler(catalogService *catalog.Service, storeClient *store.Client, cfg *config.Config, rng *rand.Rand) *Handler {
	return &Handler{
		catalogService: catalogService,
		storeClient:    storeClient,
		config:         cfg,
		rng:            rng,
	}
}

// SuggestRequest 推薦建議請求
type SuggestRequest struct {
	Ingredients []string `json:"ingredients"`
	ExcludeID   string   `json:"exclude_id,omitempty"` // 正在看的食譜，不要再推
	Count       int      `json:"count,omitempty"`
}

func requestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = common.GenerateUUID()
		c.Header("X-Request-ID", id)
	}
	return id
}

// parseCriteria 從查詢參數組出過濾條件，沒給的用預設值
func parseCriteria(c *gin.Context) common.FilterCriteria {
	criteria := common.DefaultFilterCriteria()

	if v := c.Query("categories"); v != "" {
		for _, s := range strings.Split(v, ",") {
			criteria.Categories = append(criteria.Categories, common.Category(strings.TrimSpace(s)))
		}
	}
	if v := c.Query("difficulties"); v != "" {
		for _, s := range strings.Split(v, ",") {
			criteria.Difficulties = append(criteria.Difficulties, common.Difficulty(strings.TrimSpace(s)))
		}
	}
	if v := c.Query("max_cook_time"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.MaxCookTime = n
		}
	}
	if v := c.Query("max_cost"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MaxCost = f
		}
	}
	if v := c.Query("min_servings"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.MinServings = n
		}
	}
	if v := c.Query("max_servings"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.MaxServings = n
		}
	}
	criteria.HasAlternatives = c.Query("has_alternatives") == "true"
	criteria.QuickOnly = c.Query("quick_only") == "true"

	return criteria
}

func parseIngredients(c *gin.Context) []string {
	v := c.Query("ingredients")
	if v == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// HandleList 目錄查詢：自由文字搜尋 → 結構化過濾 → 食材排序
func (h *Handler) HandleList(c *gin.Context) {
	reqID := requestID(c)

	criteria := parseCriteria(c)

	all := h.catalogService.All(c.Request.Context())
	filtered := engine.SearchFilter(all, c.Query("q"))
	filtered = engine.ApplyFilters(filtered, criteria)

	ingredients := parseIngredients(c)
	ranked := engine.Rank(filtered, ingredients)
	annotated := engine.Annotate(ranked, ingredients)

	common.LogInfo("目錄查詢完成",
		zap.String("request_id", reqID),
		zap.Int("total", len(all)),
		zap.Int("result", len(annotated)),
		zap.Int("active_filters", criteria.ActiveCount()),
	)

	c.JSON(http.StatusOK, gin.H{
		"count":         len(annotated),
		"activeFilters": criteria.ActiveCount(),
		"recipes":       annotated,
	})
}

// HandleRandom 從聯集目錄隨機挑一道
func (h *Handler) HandleRandom(c *gin.Context) {
	recipe, ok := h.catalogService.Random(c.Request.Context(), h.rng)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catalog is empty", "code": common.ErrRecipeNotFound.Code})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// HandleGet 依 id 查單筆
func (h *Handler) HandleGet(c *gin.Context) {
	id := c.Param("id")
	recipe, ok := h.catalogService.ByID(c.Request.Context(), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found", "code": common.ErrRecipeNotFound.Code})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// HandleCreate 建立食譜（寫進遠端食譜庫）
func (h *Handler) HandleCreate(c *gin.Context) {
	reqID := requestID(c)

	if h.storeClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recipe store is disabled", "code": common.ErrStoreUnavailable.Code})
		return
	}

	var recipe common.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if recipe.Name == "" || len(recipe.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe name and ingredients are required", "code": common.ErrInvalidRecipeData.Code})
		return
	}

	created, err := h.storeClient.Create(c.Request.Context(), catalog.ToRaw(recipe))
	if err != nil {
		common.LogError("食譜建立失敗",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recipe store unavailable", "code": common.ErrStoreUnavailable.Code})
		return
	}

	c.JSON(http.StatusCreated, catalog.FromRaw(*created))
}

// HandleUpdate 更新遠端食譜（內建食譜不可改）
func (h *Handler) HandleUpdate(c *gin.Context) {
	reqID := requestID(c)
	id := c.Param("id")

	if !catalog.IsDynamicID(id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Built-in recipes are read-only", "code": common.ErrBuiltinReadOnly.Code})
		return
	}
	if h.storeClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recipe store is disabled", "code": common.ErrStoreUnavailable.Code})
		return
	}

	var recipe common.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	updated, err := h.storeClient.Update(c.Request.Context(), catalog.StripDynamicID(id), catalog.ToRaw(recipe))
	if err != nil {
		common.LogError("食譜更新失敗",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recipe store unavailable", "code": common.ErrStoreUnavailable.Code})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found", "code": common.ErrRecipeNotFound.Code})
		return
	}

	c.JSON(http.StatusOK, catalog.FromRaw(*updated))
}

// HandleDelete 刪除遠端食譜（內建食譜不可刪）
func (h *Handler) HandleDelete(c *gin.Context) {
	reqID := requestID(c)
	id := c.Param("id")

	if !catalog.IsDynamicID(id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Built-in recipes are read-only", "code": common.ErrBuiltinReadOnly.Code})
		return
	}
	if h.storeClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recipe store is disabled", "code": common.ErrStoreUnavailable.Code})
		return
	}

	if err := h.storeClient.Delete(c.Request.Context(), catalog.StripDynamicID(id)); err != nil {
		common.LogError("食譜刪除失敗",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recipe store unavailable", "code": common.ErrStoreUnavailable.Code})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// HandleSuggest 依手上食材推薦建議清單
func (h *Handler) HandleSuggest(c *gin.Context) {
	reqID := requestID(c)

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	count := req.Count
	if count <= 0 {
		count = h.config.Engine.SuggestionCount
	}

	all := h.catalogService.All(c.Request.Context())
	suggestions := engine.Suggest(all, req.Ingredients, req.ExcludeID, count, h.rng)

	common.LogInfo("推薦建議完成",
		zap.String("request_id", reqID),
		zap.Int("ingredients", len(req.Ingredients)),
		zap.Int("result", len(suggestions)),
	)

	c.JSON(http.StatusOK, gin.H{
		"count":       len(suggestions),
		"suggestions": suggestions,
	})
}
