package recipe

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fridge-api/internal/core/catalog"
	"fridge-api/internal/infrastructure/config"
	"fridge-api/internal/pkg/common"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Engine: config.EngineConfig{SuggestionCount: 3, RecommendationCount: 3},
	}
	// storeClient 留 nil：只用內建目錄，CRUD 應回 503
	handler := NewHandler(catalog.NewService(nil), nil, cfg, common.NewRand())

	router := gin.New()
	group := router.Group("/api/v1/recipes")
	{
		group.GET("", handler.HandleList)
		group.GET("/random", handler.HandleRandom)
		group.GET("/:id", handler.HandleGet)
		group.POST("", handler.HandleCreate)
		group.PUT("/:id", handler.HandleUpdate)
		group.DELETE("/:id", handler.HandleDelete)
		group.POST("/suggest", handler.HandleSuggest)
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListReturnsBuiltinCatalog(t *testing.T) {
	router := testRouter()
	w := doRequest(t, router, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count         int                   `json:"count"`
		ActiveFilters int                   `json:"activeFilters"`
		Recipes       []common.RankedRecipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(catalog.BuiltinRecipes()), resp.Count)
	assert.Len(t, resp.Recipes, resp.Count)
	assert.Equal(t, 0, resp.ActiveFilters)
}

func TestListReportsActiveFilterCount(t *testing.T) {
	router := testRouter()
	w := doRequest(t, router, http.MethodGet, "/api/v1/recipes?max_cook_time=60&quick_only=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ActiveFilters int `json:"activeFilters"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ActiveFilters)
}

func TestListSearchQuery(t *testing.T) {
	router := testRouter()
	w := doRequest(t, router, http.MethodGet, "/api/v1/recipes?q=%D9%85%D9%84%D9%88%D8%AE%D9%8A%D8%A9", nil) // q=ملوخية
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count   int                   `json:"count"`
		Recipes []common.RankedRecipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "molokhia", resp.Recipes[0].Recipe.ID)
}

func TestListFilterMaxCookTime(t *testing.T) {
	router := testRouter()
	w := doRequest(t, router, http.MethodGet, "/api/v1/recipes?max_cook_time=30", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []common.RankedRecipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, r := range resp.Recipes {
		assert.LessOrEqual(t, r.Recipe.TotalTime(), 30)
	}
}

func TestListRanksByIngredients(t *testing.T) {
	router := testRouter()
	// ingredients=ملوخية مفرومة (مكوّن الملوخية)
	w := doRequest(t, router, http.MethodGet,
		"/api/v1/recipes?ingredients=%D9%85%D9%84%D9%88%D8%AE%D9%8A%D8%A9", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recipes []common.RankedRecipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Recipes)
	// 命中的排最前面，百分比有標註
	assert.Equal(t, "molokhia", resp.Recipes[0].Recipe.ID)
	assert.Positive(t, resp.Recipes[0].MatchPercent)
}

func TestGetByID(t *testing.T) {
	router := testRouter()
	w := doRequest(t, router, http.MethodGet, "/api/v1/recipes/koshari", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recipe common.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, "كشري", recipe.Name)
}

func TestGetNotFound(t *testing.T) {
	router := testRouter()
	w := doRequest(t, router, http.MethodGet, "/api/v1/recipes/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRandomReturnsRecipe(t *testing.T) {
	router := testRouter()
	w := doRequest(t, router, http.MethodGet, "/api/v1/recipes/random", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recipe common.Recipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.NotEmpty(t, recipe.ID)
}

func TestCreateWithoutStoreReturns503(t *testing.T) {
	router := testRouter()
	body := common.Recipe{Name: "تجربة", Ingredients: []string{"ملح"}}
	w := doRequest(t, router, http.MethodPost, "/api/v1/recipes", body)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUpdateBuiltinForbidden(t *testing.T) {
	// 內建食譜唯讀，連 store 開不開都不用看
	router := testRouter()
	body := common.Recipe{Name: "تجربة"}
	w := doRequest(t, router, http.MethodPut, "/api/v1/recipes/molokhia", body)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteBuiltinForbidden(t *testing.T) {
	router := testRouter()
	w := doRequest(t, router, http.MethodDelete, "/api/v1/recipes/molokhia", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteDynamicWithoutStoreReturns503(t *testing.T) {
	router := testRouter()
	w := doRequest(t, router, http.MethodDelete, "/api/v1/recipes/db:abc", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSuggestWithIngredients(t *testing.T) {
	router := testRouter()
	body := SuggestRequest{Ingredients: []string{"أرز"}, Count: 5}
	w := doRequest(t, router, http.MethodPost, "/api/v1/recipes/suggest", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count       int                   `json:"count"`
		Suggestions []common.RankedRecipe `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Positive(t, resp.Count)
	for _, s := range resp.Suggestions {
		assert.Positive(t, s.MatchPercent)
		assert.NotEmpty(t, s.MatchedIngredients)
	}
}

func TestSuggestDefaultCount(t *testing.T) {
	router := testRouter()
	// 沒給 count → 用設定檔的預設 3
	w := doRequest(t, router, http.MethodPost, "/api/v1/recipes/suggest", SuggestRequest{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
}

func TestSuggestInvalidBody(t *testing.T) {
	router := testRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recipes/suggest", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
