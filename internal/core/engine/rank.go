package engine

import (
	"math/rand"
	"sort"

	"fridge-api/internal/pkg/common"
)

// Rank 依食材命中數由高到低穩定排序
// 使用者食材為空時不排序，維持目錄順序
func Rank(filtered []common.Recipe, userIngredients []string) []common.Recipe {
	out := make([]common.Recipe, len(filtered))
	copy(out, filtered)
	if len(userIngredients) == 0 {
		return out
	}
	counts := make(map[string]int, len(out))
	for _, r := range out {
		counts[r.ID] = len(MatchIngredients(r.Ingredients, userIngredients))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return counts[out[i].ID] > counts[out[j].ID]
	})
	return out
}

// Annotate 附上每道食譜的命中子集合與命中百分比
func Annotate(recipes []common.Recipe, userIngredients []string) []common.RankedRecipe {
	out := make([]common.RankedRecipe, 0, len(recipes))
	for _, r := range recipes {
		matched := MatchIngredients(r.Ingredients, userIngredients)
		out = append(out, common.RankedRecipe{
			Recipe:             r,
			MatchedIngredients: matched,
			MatchPercent:       MatchPercent(len(matched), len(r.Ingredients)),
		})
	}
	return out
}

// Shuffle 均勻洗牌（Fisher–Yates），回傳新切片
func Shuffle(recipes []common.Recipe, rng *rand.Rand) []common.Recipe {
	out := make([]common.Recipe, len(recipes))
	copy(out, recipes)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Suggest 推薦建議清單
// 有使用者食材：整個候選池照命中數排序；沒有：洗牌求變化。兩者都截到 count
func Suggest(catalog []common.Recipe, userIngredients []string, excludeID string, count int, rng *rand.Rand) []common.RankedRecipe {
	pool := make([]common.Recipe, 0, len(catalog))
	for _, r := range catalog {
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		pool = append(pool, r)
	}

	if len(userIngredients) == 0 {
		shuffled := Shuffle(pool, rng)
		if len(shuffled) > count {
			shuffled = shuffled[:count]
		}
		return Annotate(shuffled, nil)
	}

	// 沒命中的不剔除，排序後自然墊在後面補滿 count
	ranked := Rank(pool, userIngredients)
	if len(ranked) > count {
		ranked = ranked[:count]
	}
	return Annotate(ranked, userIngredients)
}
