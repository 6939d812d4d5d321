package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fridge-api/internal/pkg/common"
)

func newTestService() *Service {
	return NewService(NewMemoryStore(), 5)
}

func TestFavoritesEmptyByDefault(t *testing.T) {
	svc := newTestService()
	favorites, err := svc.Favorites(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, favorites)
	assert.NotNil(t, favorites)
}

func TestAddFavoriteIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	favorites, err := svc.AddFavorite(ctx, "u1", "molokhia")
	require.NoError(t, err)
	assert.Equal(t, []string{"molokhia"}, favorites)

	// 再加一次不會重複
	favorites, err = svc.AddFavorite(ctx, "u1", "molokhia")
	require.NoError(t, err)
	assert.Equal(t, []string{"molokhia"}, favorites)

	favorites, err = svc.AddFavorite(ctx, "u1", "db:abc")
	require.NoError(t, err)
	assert.Equal(t, []string{"molokhia", "db:abc"}, favorites)
}

func TestRemoveFavorite(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddFavorite(ctx, "u1", "molokhia")
	require.NoError(t, err)
	_, err = svc.AddFavorite(ctx, "u1", "bamya")
	require.NoError(t, err)

	favorites, err := svc.RemoveFavorite(ctx, "u1", "molokhia")
	require.NoError(t, err)
	assert.Equal(t, []string{"bamya"}, favorites)

	// 移除不存在的 id 不報錯
	favorites, err = svc.RemoveFavorite(ctx, "u1", "nope")
	require.NoError(t, err)
	assert.Equal(t, []string{"bamya"}, favorites)
}

func TestFavoritesIsolatedPerUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddFavorite(ctx, "u1", "molokhia")
	require.NoError(t, err)

	favorites, err := svc.Favorites(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestAppendSearchMostRecentFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AppendSearch(ctx, "u1", "ملوخية")
	require.NoError(t, err)
	searches, err := svc.AppendSearch(ctx, "u1", "بامية")
	require.NoError(t, err)

	assert.Equal(t, []string{"بامية", "ملوخية"}, searches)
}

func TestAppendSearchDedupsRepeat(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AppendSearch(ctx, "u1", "ملوخية")
	require.NoError(t, err)
	_, err = svc.AppendSearch(ctx, "u1", "بامية")
	require.NoError(t, err)

	// 重搜舊詞：移到最前面，不留重複
	searches, err := svc.AppendSearch(ctx, "u1", "ملوخية")
	require.NoError(t, err)
	assert.Equal(t, []string{"ملوخية", "بامية"}, searches)
}

func TestAppendSearchCapped(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	terms := []string{"a", "b", "c", "d", "e", "f", "g"}
	var searches []string
	var err error
	for _, term := range terms {
		searches, err = svc.AppendSearch(ctx, "u1", term)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(searches), 5)
	}

	// 最新的五筆，倒序
	assert.Equal(t, []string{"g", "f", "e", "d", "c"}, searches)
}

func TestAppendSearchIgnoresEmptyTerm(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AppendSearch(ctx, "u1", "ملوخية")
	require.NoError(t, err)

	searches, err := svc.AppendSearch(ctx, "u1", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ملوخية"}, searches)
}

func TestClearSearches(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AppendSearch(ctx, "u1", "ملوخية")
	require.NoError(t, err)

	require.NoError(t, svc.ClearSearches(ctx, "u1"))

	searches, err := svc.RecentSearches(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, searches)
}

func TestSetSelectedIngredientsExactDedup(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// 只做精確字串去重，「طماطم مفرومة」跟「طماطم」是不同的兩筆
	ingredients, err := svc.SetSelectedIngredients(ctx, "u1",
		[]string{"طماطم", "بصل", "طماطم", "طماطم مفرومة"})
	require.NoError(t, err)
	assert.Equal(t, []string{"طماطم", "بصل", "طماطم مفرومة"}, ingredients)

	stored, err := svc.SelectedIngredients(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, ingredients, stored)
}

func TestSetSelectedIngredientsOverwrites(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SetSelectedIngredients(ctx, "u1", []string{"طماطم"})
	require.NoError(t, err)
	_, err = svc.SetSelectedIngredients(ctx, "u1", []string{"بصل"})
	require.NoError(t, err)

	stored, err := svc.SelectedIngredients(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"بصل"}, stored)
}

func TestMealPlanRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	empty, err := svc.MealPlan(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, empty)

	plan := common.MealPlan{
		"saturday": {"breakfast": "koshari", "lunch": "molokhia"},
		"sunday":   {"dinner": "db:abc"},
	}
	require.NoError(t, svc.SetMealPlan(ctx, "u1", plan))

	stored, err := svc.MealPlan(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, plan, stored)
}

func TestShoppingListRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	empty, err := svc.ShoppingList(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, empty)

	items := []common.ShoppingItem{
		{Name: "طماطم", Checked: false},
		{Name: "لحمة", Checked: true},
	}
	require.NoError(t, svc.SetShoppingList(ctx, "u1", items))

	stored, err := svc.ShoppingList(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, items, stored)
}

func TestMemoryStoreMissReturnsNilNil(t *testing.T) {
	store := NewMemoryStore()
	data, err := store.Get(context.Background(), "u1", "nope")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	value := []byte(`["a"]`)
	require.NoError(t, store.Set(ctx, "u1", "k", value))
	value[0] = 'X' // 改呼叫端的 slice 不影響儲存的內容

	data, err := store.Get(ctx, "u1", "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["a"]`), data)
}
