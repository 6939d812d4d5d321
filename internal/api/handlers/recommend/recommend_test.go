package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fridge-api/internal/core/catalog"
	"fridge-api/internal/core/engine"
	"fridge-api/internal/core/prefs"
	"fridge-api/internal/infrastructure/config"
	"fridge-api/internal/pkg/common"
)

func testRouter(prefsService *prefs.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Engine: config.EngineConfig{SuggestionCount: 3, RecommendationCount: 3},
	}
	handler := NewHandler(
		catalog.NewService(nil),
		prefsService,
		engine.NewRecommenderWithJitter(common.NewRand(), 0),
		cfg,
	)

	router := gin.New()
	group := router.Group("/api/v1/recommendations")
	{
		group.GET("", handler.HandleRecommendations)
		group.GET("/plan", handler.HandlePlan)
		group.GET("/trends", handler.HandleTrends)
	}
	return router
}

func doGet(t *testing.T, router *gin.Engine, path, user string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, bytes.NewReader(nil))
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecommendationsWithEmptyPrefs(t *testing.T) {
	router := testRouter(prefs.NewService(prefs.NewMemoryStore(), 5))

	w := doGet(t, router, "/api/v1/recommendations", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Profile         common.UserProfile      `json:"profile"`
		Recommendations []common.Recommendation `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 空輪廓照樣推得出 N 筆
	assert.Len(t, resp.Recommendations, 3)
	assert.Equal(t, common.BudgetMedium, resp.Profile.BudgetTier)
	for _, rec := range resp.Recommendations {
		assert.NotEmpty(t, rec.Recipe.ID)
		assert.NotEmpty(t, rec.Reason)
	}
}

func TestRecommendationsExcludeFavorites(t *testing.T) {
	prefsService := prefs.NewService(prefs.NewMemoryStore(), 5)
	_, err := prefsService.AddFavorite(context.Background(), "u1", "molokhia")
	require.NoError(t, err)

	router := testRouter(prefsService)
	w := doGet(t, router, "/api/v1/recommendations", "u1")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Profile         common.UserProfile      `json:"profile"`
		Recommendations []common.Recommendation `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"molokhia"}, resp.Profile.Favorites)
	for _, rec := range resp.Recommendations {
		assert.NotEqual(t, "molokhia", rec.Recipe.ID)
	}
}

func TestPlanCoversWeek(t *testing.T) {
	router := testRouter(prefs.NewService(prefs.NewMemoryStore(), 5))

	w := doGet(t, router, "/api/v1/recommendations/plan", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Plan common.MealPlan `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Plan, len(common.PlanDays))
	for _, day := range common.PlanDays {
		assert.Contains(t, resp.Plan, day)
	}
}

func TestTrends(t *testing.T) {
	router := testRouter(prefs.NewService(prefs.NewMemoryStore(), 5))

	w := doGet(t, router, "/api/v1/recommendations/trends", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Trends []common.TrendInsight `json:"trends"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Trends, 3)
}
