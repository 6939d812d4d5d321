package detect

import (
	"net/http"

	"fridge-api/internal/core/engine"
	"fridge-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 食材辨識處理程序
type Handler struct {
	detector engine.IngredientDetector
}

// NewHandler 創建辨識處理程序
func NewHandler(detector engine.IngredientDetector) *Handler {
	return &Handler{detector: detector}
}

// DetectRequest 辨識請求（base64 圖片）
type DetectRequest struct {
	Image string `json:"image" binding:"required"`
}

// HandleDetect 從圖片辨識食材
func (h *Handler) HandleDetect(c *gin.Context) {
	var req DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ingredients, err := h.detector.Detect(c.Request.Context(), req.Image)
	if err != nil {
		common.LogError("食材辨識失敗", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ingredient detection failed"})
		return
	}

	common.LogInfo("食材辨識完成", zap.Int("count", len(ingredients)))

	c.JSON(http.StatusOK, gin.H{
		"count":       len(ingredients),
		"ingredients": ingredients,
	})
}
