package engine

import (
	"strings"

	"fridge-api/internal/pkg/common"
)

// SearchFilter 自由文字搜尋：查詢字串是欄位的子字串（單向，不分大小寫）
// 掃 name / description / category / ingredients 四個欄位
func SearchFilter(catalog []common.Recipe, query string) []common.Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return catalog
	}
	var out []common.Recipe
	for _, r := range catalog {
		if matchesQuery(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func matchesQuery(r common.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	if strings.Contains(strings.ToLower(string(r.Category)), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), q) {
			return true
		}
	}
	return false
}

// ApplyFilters 套用結構化過濾條件
// 所有啟用中的條件做 AND，輸出保留輸入順序（穩定過濾，這裡不排序）
func ApplyFilters(catalog []common.Recipe, criteria common.FilterCriteria) []common.Recipe {
	var out []common.Recipe
	for _, r := range catalog {
		if passesFilters(r, criteria) {
			out = append(out, r)
		}
	}
	return out
}

func passesFilters(r common.Recipe, c common.FilterCriteria) bool {
	// 分類：空集合代表不過濾，否則 OR 語意
	if len(c.Categories) > 0 && !containsCategory(c.Categories, r.Category) {
		return false
	}
	// 難度：同上
	if len(c.Difficulties) > 0 && !containsDifficulty(c.Difficulties, r.Difficulty) {
		return false
	}
	// 總時間上限（含）：停在預設值代表沒啟用，不過濾
	if c.MaxCookTime != common.DefaultMaxCookTime && r.TotalTime() > c.MaxCookTime {
		return false
	}
	// 花費上限（含），沒標價視為 0：同上
	if c.MaxCost != common.DefaultMaxCost && r.EstimatedCost > c.MaxCost {
		return false
	}
	// 人份範圍（含）：同上
	if c.MinServings != common.DefaultMinServings || c.MaxServings != common.DefaultMaxServings {
		if r.Servings < c.MinServings || r.Servings > c.MaxServings {
			return false
		}
	}
	// 替代食材閘門
	if c.HasAlternatives && !r.HasAlternatives() {
		return false
	}
	// 快速料理閘門
	if c.QuickOnly && r.TotalTime() > common.QuickTimeLimit {
		return false
	}
	return true
}

func containsCategory(set []common.Category, c common.Category) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func containsDifficulty(set []common.Difficulty, d common.Difficulty) bool {
	for _, v := range set {
		if v == d {
			return true
		}
	}
	return false
}
