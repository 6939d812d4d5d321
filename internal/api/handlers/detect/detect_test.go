package detect

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fridge-api/internal/core/engine"
	"fridge-api/internal/pkg/common"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(engine.NewCannedDetector(common.NewRand()))

	router := gin.New()
	router.POST("/api/v1/detect", handler.HandleDetect)
	return router
}

func TestDetectReturnsIngredients(t *testing.T) {
	router := testRouter()

	body, err := json.Marshal(DetectRequest{Image: "data:image/jpeg;base64,xxxx"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/detect", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count       int      `json:"count"`
		Ingredients []string `json:"ingredients"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(resp.Ingredients), resp.Count)
	assert.GreaterOrEqual(t, resp.Count, 3)
	assert.LessOrEqual(t, resp.Count, 7)
}

func TestDetectRequiresImage(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/detect", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
