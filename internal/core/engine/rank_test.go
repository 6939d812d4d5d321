package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fridge-api/internal/pkg/common"
)

func TestRankByMatchCount(t *testing.T) {
	catalog := []common.Recipe{
		{ID: "a", Ingredients: []string{"طماطم", "بصل"}},
		{ID: "b", Ingredients: []string{"أرز", "عدس"}},
	}

	ranked := Rank(catalog, []string{"طماطم"})
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].ID)
	assert.Equal(t, "b", ranked[1].ID)

	annotated := Annotate(ranked, []string{"طماطم"})
	assert.Equal(t, 50, annotated[0].MatchPercent)
	assert.Equal(t, 0, annotated[1].MatchPercent)
}

func TestRankStable(t *testing.T) {
	// 命中數相同的維持目錄順序，連跑兩次結果一樣
	catalog := []common.Recipe{
		{ID: "a", Ingredients: []string{"طماطم"}},
		{ID: "b", Ingredients: []string{"طماطم"}},
		{ID: "c", Ingredients: []string{"بصل"}},
	}

	first := Rank(catalog, []string{"طماطم"})
	second := Rank(catalog, []string{"طماطم"})

	require.Len(t, first, 3)
	assert.Equal(t, "a", first[0].ID)
	assert.Equal(t, "b", first[1].ID)
	assert.Equal(t, "c", first[2].ID)
	assert.Equal(t, first, second)
}

func TestRankEmptyIngredientsKeepsOrder(t *testing.T) {
	catalog := []common.Recipe{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}
	ranked := Rank(catalog, nil)
	require.Len(t, ranked, 3)
	assert.Equal(t, "a", ranked[0].ID)
	assert.Equal(t, "b", ranked[1].ID)
	assert.Equal(t, "c", ranked[2].ID)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	catalog := []common.Recipe{
		{ID: "a", Ingredients: []string{"بصل"}},
		{ID: "b", Ingredients: []string{"طماطم"}},
	}
	_ = Rank(catalog, []string{"طماطم"})
	assert.Equal(t, "a", catalog[0].ID)
	assert.Equal(t, "b", catalog[1].ID)
}

func TestShufflePermutation(t *testing.T) {
	catalog := []common.Recipe{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	}
	rng := rand.New(rand.NewSource(42))

	shuffled := Shuffle(catalog, rng)
	require.Len(t, shuffled, len(catalog))

	seen := make(map[string]bool)
	for _, r := range shuffled {
		seen[r.ID] = true
	}
	assert.Len(t, seen, len(catalog))
}

func TestSuggestRanksAndTruncates(t *testing.T) {
	catalog := []common.Recipe{
		{ID: "a", Ingredients: []string{"طماطم", "بصل"}},
		{ID: "b", Ingredients: []string{"طماطم", "بصل", "ثوم", "فلفل"}},
		{ID: "c", Ingredients: []string{"أرز"}},
	}
	rng := rand.New(rand.NewSource(1))

	suggestions := Suggest(catalog, []string{"طماطم", "بصل"}, "", 2, rng)
	require.Len(t, suggestions, 2)
	// a 命中 2/2，b 命中 2/4，c 沒命中排最後所以被截掉
	assert.Equal(t, "a", suggestions[0].Recipe.ID)
	assert.Equal(t, 100, suggestions[0].MatchPercent)
	assert.Equal(t, "b", suggestions[1].Recipe.ID)
	assert.Equal(t, 50, suggestions[1].MatchPercent)
}

func TestSuggestZeroMatchRecipesPadTheList(t *testing.T) {
	// 沒命中的不剔除：排在後面把清單補滿
	catalog := []common.Recipe{
		{ID: "a", Ingredients: []string{"طماطم", "بصل"}},
		{ID: "b", Ingredients: []string{"طماطم", "بصل", "ثوم", "فلفل"}},
		{ID: "c", Ingredients: []string{"أرز"}},
	}
	rng := rand.New(rand.NewSource(1))

	suggestions := Suggest(catalog, []string{"طماطم", "بصل"}, "", 3, rng)
	require.Len(t, suggestions, 3)
	assert.Equal(t, "a", suggestions[0].Recipe.ID)
	assert.Equal(t, "b", suggestions[1].Recipe.ID)
	assert.Equal(t, "c", suggestions[2].Recipe.ID)
	assert.Equal(t, 0, suggestions[2].MatchPercent)
	assert.Empty(t, suggestions[2].MatchedIngredients)
}

func TestSuggestExcludesCurrentRecipe(t *testing.T) {
	catalog := []common.Recipe{
		{ID: "a", Ingredients: []string{"طماطم"}},
		{ID: "b", Ingredients: []string{"طماطم"}},
	}
	rng := rand.New(rand.NewSource(1))

	suggestions := Suggest(catalog, []string{"طماطم"}, "a", 5, rng)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "b", suggestions[0].Recipe.ID)
}

func TestSuggestShufflesWhenNoIngredients(t *testing.T) {
	catalog := []common.Recipe{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	}
	rng := rand.New(rand.NewSource(7))

	suggestions := Suggest(catalog, nil, "", 3, rng)
	assert.Len(t, suggestions, 3)
	for _, s := range suggestions {
		assert.Empty(t, s.MatchedIngredients)
		assert.Equal(t, 0, s.MatchPercent)
	}
}
