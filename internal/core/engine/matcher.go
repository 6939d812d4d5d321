package engine

import (
	"math"
	"strings"
)

// ingredientOverlaps 雙向不分大小寫的子字串比對
// 故意放寬：抓得到部分名稱、複數、修飾詞（例如「مفرومة」），代價是偶爾誤判
func ingredientOverlaps(a, b string) bool {
	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// MatchIngredients 回傳食譜食材中被使用者食材命中的子集合
// 使用者食材為空時一律回空集合（視為「沒在過濾」，不是「全部命中」）
func MatchIngredients(recipeIngredients, userIngredients []string) []string {
	if len(userIngredients) == 0 {
		return nil
	}
	var matched []string
	for _, r := range recipeIngredients {
		for _, u := range userIngredients {
			if ingredientOverlaps(r, u) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

// MatchPercent 命中比例（四捨五入的百分比）
// 食譜食材為空時回 0，避免除以零
func MatchPercent(matchedCount, totalCount int) int {
	if totalCount == 0 {
		return 0
	}
	return int(math.Round(float64(matchedCount) / float64(totalCount) * 100))
}
