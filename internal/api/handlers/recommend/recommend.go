package recommend

import (
	"net/http"

	"fridge-api/internal/core/catalog"
	"fridge-api/internal/core/engine"
	"fridge-api/internal/core/prefs"
	"fridge-api/internal/infrastructure/config"
	"fridge-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultUserID 沒帶使用者標頭時的單機使用者
const DefaultUserID = "local"

// Handler 個人化推薦處理程序
type Handler struct {
	catalogService *catalog.Service
	prefsService   *prefs.Service
	recommender    *engine.Recommender
	config         *config.Config
}

// NewHandler 創建推薦處理程序
func NewHandler(catalogService *catalog.Service, prefsService *prefs.Service, recommender *engine.Recommender, cfg *config.Config) *Handler {
	return &Handler{
		catalogService: catalogService,
		prefsService:   prefsService,
		recommender:    recommender,
		config:         cfg,
	}
}

func userID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return DefaultUserID
}

// profile 從偏好資料推導使用者輪廓
// 讀不到偏好就當空輪廓處理，推薦照樣出得來
func (h *Handler) profile(c *gin.Context, catalogRecipes []common.Recipe) common.UserProfile {
	uid := userID(c)
	ctx := c.Request.Context()

	favorites, err := h.prefsService.Favorites(ctx, uid)
	if err != nil {
		common.LogWarn("收藏讀取失敗", zap.Error(err), zap.String("user", uid))
	}
	searches, err := h.prefsService.RecentSearches(ctx, uid)
	if err != nil {
		common.LogWarn("搜尋紀錄讀取失敗", zap.Error(err), zap.String("user", uid))
	}

	return engine.DeriveProfile(favorites, searches, catalogRecipes)
}

// HandleRecommendations 個人化推薦前 N 名
func (h *Handler) HandleRecommendations(c *gin.Context) {
	all := h.catalogService.All(c.Request.Context())
	profile := h.profile(c, all)

	recommendations := h.recommender.Recommend(all, profile, h.config.Engine.RecommendationCount)

	common.LogInfo("推薦計算完成",
		zap.String("user", userID(c)),
		zap.Int("favorites", len(profile.Favorites)),
		zap.Int("result", len(recommendations)),
	)

	c.JSON(http.StatusOK, gin.H{
		"profile":         profile,
		"recommendations": recommendations,
	})
}

// HandlePlan 產生一週餐點安排
func (h *Handler) HandlePlan(c *gin.Context) {
	all := h.catalogService.All(c.Request.Context())
	profile := h.profile(c, all)

	plan := h.recommender.WeeklyPlan(all, profile)

	c.JSON(http.StatusOK, gin.H{
		"plan": plan,
	})
}

// HandleTrends 分類趨勢洞察
func (h *Handler) HandleTrends(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"trends": engine.Trends(),
	})
}
