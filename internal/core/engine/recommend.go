package engine

import (
	"math/rand"
	"sort"
	"strings"

	"fridge-api/internal/pkg/common"
)

// 評分權重（設計常數，不是物理單位）
const (
	scorePreferredCategory = 30
	scoreTimeProximity     = 20
	scoreBudgetFit         = 15
	scoreSearchOverlap     = 25

	// 時間貼近度的容許差距（分鐘）
	timeProximityWindow = 15

	// 沒標價的食譜在預算計算中視為中間值
	defaultCostAssumption = 50.0

	// 沒有收藏時的預設平均烹煮時間
	defaultAverageCookTime = 30.0
)

// DeriveProfile 從收藏與搜尋紀錄推導使用者輪廓
// 純推導，不落地：偏好分類取收藏食譜的分類去重、平均時間、預算級距
func DeriveProfile(favoriteIDs, recentSearches []string, catalog []common.Recipe) common.UserProfile {
	byID := make(map[string]common.Recipe, len(catalog))
	for _, r := range catalog {
		byID[r.ID] = r
	}

	var favoriteRecipes []common.Recipe
	for _, id := range favoriteIDs {
		if r, ok := byID[id]; ok {
			favoriteRecipes = append(favoriteRecipes, r)
		}
	}

	var preferred []common.Category
	seen := make(map[common.Category]bool)
	for _, r := range favoriteRecipes {
		if !seen[r.Category] {
			seen[r.Category] = true
			preferred = append(preferred, r.Category)
		}
	}

	avgCookTime := defaultAverageCookTime
	avgCost := defaultCostAssumption
	if len(favoriteRecipes) > 0 {
		var timeSum, costSum float64
		for _, r := range favoriteRecipes {
			timeSum += float64(r.TotalTime())
			cost := r.EstimatedCost
			if cost == 0 {
				cost = defaultCostAssumption
			}
			costSum += cost
		}
		avgCookTime = timeSum / float64(len(favoriteRecipes))
		avgCost = costSum / float64(len(favoriteRecipes))
	}

	tier := common.BudgetMedium
	if avgCost < 40 {
		tier = common.BudgetLow
	} else if avgCost > 80 {
		tier = common.BudgetHigh
	}

	return common.UserProfile{
		Favorites:           favoriteIDs,
		RecentSearches:      recentSearches,
		PreferredCategories: preferred,
		AverageCookTime:     avgCookTime,
		BudgetTier:          tier,
	}
}

// Recommender 個人化推薦評分器
// jitterMax 是隨機擾動的上限，測試時設 0 就能拿到純函數行為
type Recommender struct {
	rng       *rand.Rand
	jitterMax float64
}

// NewRecommender 創建推薦評分器（預設擾動 0–10）
func NewRecommender(rng *rand.Rand) *Recommender {
	return &Recommender{rng: rng, jitterMax: 10}
}

// NewRecommenderWithJitter 創建指定擾動上限的推薦評分器
func NewRecommenderWithJitter(rng *rand.Rand, jitterMax float64) *Recommender {
	return &Recommender{rng: rng, jitterMax: jitterMax}
}

// Score 對單一食譜評分，回傳分數與理由
func (rc *Recommender) Score(r common.Recipe, profile common.UserProfile) (float64, string) {
	var score float64
	var reasons []string

	// 偏好分類
	for _, c := range profile.PreferredCategories {
		if c == r.Category {
			score += scorePreferredCategory
			reasons = append(reasons, "يناسب تفضيلك لـ"+string(r.Category))
			break
		}
	}

	// 時間貼近度
	timeDiff := float64(r.TotalTime()) - profile.AverageCookTime
	if timeDiff < 0 {
		timeDiff = -timeDiff
	}
	if timeDiff <= timeProximityWindow {
		score += scoreTimeProximity
		reasons = append(reasons, "وقت طبخ مناسب لك")
	}

	// 預算級距
	cost := r.EstimatedCost
	if cost == 0 {
		cost = defaultCostAssumption
	}
	switch profile.BudgetTier {
	case common.BudgetLow:
		if cost <= 40 {
			score += scoreBudgetFit
			reasons = append(reasons, "يناسب ميزانيتك")
		}
	case common.BudgetMedium:
		if cost <= 80 {
			score += scoreBudgetFit
			reasons = append(reasons, "يناسب ميزانيتك")
		}
	case common.BudgetHigh:
		score += scoreBudgetFit
		reasons = append(reasons, "يناسب ميزانيتك")
	}

	// 最近搜尋的食材重疊（跟比對器同一套雙向子字串規則）
	if len(MatchIngredients(r.Ingredients, profile.RecentSearches)) > 0 {
		score += scoreSearchOverlap
		reasons = append(reasons, "يحتوي على مكونات بحثت عنها")
	}

	// 隨機擾動求多樣性
	if rc.jitterMax > 0 {
		score += rc.rng.Float64() * rc.jitterMax
	}

	reason := strings.Join(reasons, " • ")
	if reason == "" {
		reason = "وصفة مميزة"
	}
	return score, reason
}

// Recommend 取前 n 名推薦，排除已收藏的食譜
// 分數相同時維持目錄順序（穩定排序）
func (rc *Recommender) Recommend(catalog []common.Recipe, profile common.UserProfile, n int) []common.Recommendation {
	favorites := make(map[string]bool, len(profile.Favorites))
	for _, id := range profile.Favorites {
		favorites[id] = true
	}

	var recs []common.Recommendation
	for _, r := range catalog {
		if favorites[r.ID] {
			continue
		}
		score, reason := rc.Score(r, profile)
		recs = append(recs, common.Recommendation{Recipe: r, Score: score, Reason: reason})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > n {
		recs = recs[:n]
	}
	return recs
}

// WeeklyPlan 產生一週餐點安排
// 早餐挑快速又短時間的、午餐照偏好分類、晚餐挑輕食且當天沒重複的
func (rc *Recommender) WeeklyPlan(catalog []common.Recipe, profile common.UserProfile) common.MealPlan {
	plan := make(common.MealPlan, len(common.PlanDays))

	for _, day := range common.PlanDays {
		slots := make(map[string]string, len(common.MealSlots))
		used := make(map[string]bool)

		var breakfastOptions []common.Recipe
		for _, r := range catalog {
			if r.Category == common.CategoryQuick && r.CookTime <= 20 {
				breakfastOptions = append(breakfastOptions, r)
			}
		}
		if breakfast, ok := rc.pickFrom(breakfastOptions, 3); ok {
			slots["breakfast"] = breakfast.ID
			used[breakfast.ID] = true
		}

		var lunchOptions []common.Recipe
		for _, r := range catalog {
			if len(profile.PreferredCategories) == 0 || containsCategory(profile.PreferredCategories, r.Category) {
				lunchOptions = append(lunchOptions, r)
			}
		}
		if lunch, ok := rc.pickFrom(lunchOptions, 5); ok {
			slots["lunch"] = lunch.ID
			used[lunch.ID] = true
		}

		var dinnerOptions []common.Recipe
		for _, r := range catalog {
			if r.CookTime <= 30 && !used[r.ID] {
				dinnerOptions = append(dinnerOptions, r)
			}
		}
		if dinner, ok := rc.pickFrom(dinnerOptions, 3); ok {
			slots["dinner"] = dinner.ID
		}

		plan[day] = slots
	}

	return plan
}

// pickFrom 從選項的前 limit 個裡隨機挑一個
func (rc *Recommender) pickFrom(options []common.Recipe, limit int) (common.Recipe, bool) {
	if len(options) == 0 {
		return common.Recipe{}, false
	}
	if limit > len(options) {
		limit = len(options)
	}
	return options[rc.rng.Intn(limit)], true
}

// 購物清單的分類順序：照賣場動線走
var shoppingCategories = []struct {
	name  string
	items []string
}{
	{"vegetables", []string{"طماطم", "بصل", "ثوم", "جزر", "كوسة", "باذنجان"}},
	{"meat", []string{"لحمة", "فراخ", "سمك"}},
	{"dairy", []string{"لبن", "جبنة", "زبدة", "بيض"}},
	{"grains", []string{"أرز", "مكرونة", "عدس", "حمص"}},
	{"spices", []string{"ملح", "فلفل", "كمون", "كسبرة"}},
}

func shoppingCategoryIndex(ingredient string) int {
	for i, cat := range shoppingCategories {
		for _, item := range cat.items {
			if strings.Contains(ingredient, item) {
				return i
			}
		}
	}
	return len(shoppingCategories) + 1
}

// OptimizeShoppingList 去重後依分類順序穩定排序
// 輸出是去重後輸入的一個排列，不會多也不會少
func OptimizeShoppingList(ingredients []string) []string {
	seen := make(map[string]bool, len(ingredients))
	var optimized []string
	for _, ing := range ingredients {
		if !seen[ing] {
			seen[ing] = true
			optimized = append(optimized, ing)
		}
	}
	sort.SliceStable(optimized, func(i, j int) bool {
		return shoppingCategoryIndex(optimized[i]) < shoppingCategoryIndex(optimized[j])
	})
	return optimized
}

// Trends 分類趨勢洞察（目前是固定資料的能力接縫，之後可換成真分析）
func Trends() []common.TrendInsight {
	return []common.TrendInsight{
		{Category: common.CategoryQuick, Growth: 25, Reason: "زيادة الطلب على الوصفات السريعة"},
		{Category: common.CategoryStew, Growth: 15, Reason: "شعبية الطبخ التقليدي"},
		{Category: common.CategorySoup, Growth: 20, Reason: "موسم الشتاء"},
	}
}
