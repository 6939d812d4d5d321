package preference

import (
	"net/http"

	"fridge-api/internal/core/engine"
	"fridge-api/internal/core/prefs"
	"fridge-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultUserID 沒帶使用者標頭時的單機使用者
const DefaultUserID = "local"

// Handler 使用者偏好處理程序
type Handler struct {
	prefsService *prefs.Service
}

// NewHandler 創建偏好處理程序
func NewHandler(prefsService *prefs.Service) *Handler {
	return &Handler{prefsService: prefsService}
}

func userID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return DefaultUserID
}

func prefsError(c *gin.Context, msg string, err error) {
	common.LogError(msg, zap.Error(err))
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Preference store unavailable", "code": common.ErrPrefsUnavailable.Code})
}

// IngredientsRequest 已選食材
type IngredientsRequest struct {
	Ingredients []string `json:"ingredients"`
}

// SearchRequest 搜尋詞
type SearchRequest struct {
	Term string `json:"term" binding:"required"`
}

// ShoppingListRequest 購物清單
type ShoppingListRequest struct {
	Items []common.ShoppingItem `json:"items"`
}

// HandleGetIngredients 讀取已選食材
func (h *Handler) HandleGetIngredients(c *gin.Context) {
	ingredients, err := h.prefsService.SelectedIngredients(c.Request.Context(), userID(c))
	if err != nil {
		prefsError(c, "已選食材讀取失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

// HandlePutIngredients 覆寫已選食材（精確字串去重）
func (h *Handler) HandlePutIngredients(c *gin.Context) {
	var req IngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	ingredients, err := h.prefsService.SetSelectedIngredients(c.Request.Context(), userID(c), req.Ingredients)
	if err != nil {
		prefsError(c, "已選食材寫入失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}

// HandleGetFavorites 讀取收藏
func (h *Handler) HandleGetFavorites(c *gin.Context) {
	favorites, err := h.prefsService.Favorites(c.Request.Context(), userID(c))
	if err != nil {
		prefsError(c, "收藏讀取失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// HandleAddFavorite 加入收藏
func (h *Handler) HandleAddFavorite(c *gin.Context) {
	favorites, err := h.prefsService.AddFavorite(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		prefsError(c, "收藏寫入失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// HandleRemoveFavorite 移除收藏
func (h *Handler) HandleRemoveFavorite(c *gin.Context) {
	favorites, err := h.prefsService.RemoveFavorite(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		prefsError(c, "收藏移除失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// HandleGetSearches 讀取最近搜尋
func (h *Handler) HandleGetSearches(c *gin.Context) {
	searches, err := h.prefsService.RecentSearches(c.Request.Context(), userID(c))
	if err != nil {
		prefsError(c, "搜尋紀錄讀取失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": searches})
}

// HandleAppendSearch 記錄一次搜尋（最新在前、去重、截上限）
func (h *Handler) HandleAppendSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	searches, err := h.prefsService.AppendSearch(c.Request.Context(), userID(c), req.Term)
	if err != nil {
		prefsError(c, "搜尋紀錄寫入失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": searches})
}

// HandleClearSearches 清空搜尋紀錄
func (h *Handler) HandleClearSearches(c *gin.Context) {
	if err := h.prefsService.ClearSearches(c.Request.Context(), userID(c)); err != nil {
		prefsError(c, "搜尋紀錄清空失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"searches": []string{}})
}

// HandleGetMealPlan 讀取餐點安排
func (h *Handler) HandleGetMealPlan(c *gin.Context) {
	plan, err := h.prefsService.MealPlan(c.Request.Context(), userID(c))
	if err != nil {
		prefsError(c, "餐點安排讀取失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// HandlePutMealPlan 覆寫餐點安排
func (h *Handler) HandlePutMealPlan(c *gin.Context) {
	var plan common.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.prefsService.SetMealPlan(c.Request.Context(), userID(c), plan); err != nil {
		prefsError(c, "餐點安排寫入失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// HandleGetShoppingList 讀取購物清單
func (h *Handler) HandleGetShoppingList(c *gin.Context) {
	items, err := h.prefsService.ShoppingList(c.Request.Context(), userID(c))
	if err != nil {
		prefsError(c, "購物清單讀取失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// HandlePutShoppingList 覆寫購物清單
func (h *Handler) HandlePutShoppingList(c *gin.Context) {
	var req ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.prefsService.SetShoppingList(c.Request.Context(), userID(c), req.Items); err != nil {
		prefsError(c, "購物清單寫入失敗", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": req.Items})
}

// HandleOptimizeShoppingList 去重＋依賣場動線排序
func (h *Handler) HandleOptimizeShoppingList(c *gin.Context) {
	var req IngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	optimized := engine.OptimizeShoppingList(req.Ingredients)
	c.JSON(http.StatusOK, gin.H{"ingredients": optimized})
}
