package common

// Category 食譜分類（正規化後的封閉集合）
type Category string

const (
	CategoryStuffed  Category = "محشي"       // 釀菜類
	CategorySoup     Category = "شوربة"      // 湯類
	CategoryStew     Category = "طواجن"      // 燉鍋類
	CategoryQuick    Category = "سهل وسريع"  // 快速簡易
	CategoryLongPrep Category = "تحضير طويل" // 長時間備料
	CategoryOther    Category = "كلاسيكي"    // 無法歸類的標籤一律落在這裡
)

// Categories 正規分類的固定順序（回應與趨勢用）
var Categories = []Category{
	CategoryStuffed,
	CategorySoup,
	CategoryStew,
	CategoryQuick,
	CategoryLongPrep,
	CategoryOther,
}

// Difficulty 難度（固定三級）
type Difficulty string

const (
	DifficultyEasy   Difficulty = "سهل"
	DifficultyMedium Difficulty = "متوسط"
	DifficultyHard   Difficulty = "صعب"
)

// Recipe 食譜
// 內建與遠端來源統一後的形狀，整個引擎都吃這個
type Recipe struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Image         string            `json:"image"` // emoji 或 http(s) 圖片連結
	PrepTime      int               `json:"prepTime"`
	CookTime      int               `json:"cookTime"`
	Difficulty    Difficulty        `json:"difficulty"`
	Category      Category          `json:"category"`
	Ingredients   []string          `json:"ingredients"`
	Instructions  []string          `json:"instructions"`
	Description   string            `json:"description"`
	Servings      int               `json:"servings"`
	EstimatedCost float64           `json:"estimatedCost,omitempty"`
	Alternatives  map[string]string `json:"alternatives,omitempty"` // 食材 -> 替代品
}

// TotalTime 備料 + 烹煮總時間（分鐘）
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// HasAlternatives 是否提供至少一組替代食材
func (r Recipe) HasAlternatives() bool {
	return len(r.Alternatives) > 0
}

// RawDynamicRecipe 遠端食譜庫的原生形狀
// 注意：欄位名稱、可空欄位都要跟遠端 schema 一模一樣
type RawDynamicRecipe struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   *string           `json:"description"`
	ImageURL      *string           `json:"image_url"`
	PrepTime      int               `json:"prep_time"`
	CookTime      int               `json:"cook_time"`
	Difficulty    string            `json:"difficulty"`
	Category      string            `json:"category"`
	Servings      int               `json:"servings"`
	EstimatedCost *float64          `json:"estimated_cost"`
	Ingredients   []string          `json:"ingredients"`
	Instructions  []string          `json:"instructions"`
	Alternatives  map[string]string `json:"alternatives"`
	CreatedBy     *string           `json:"created_by,omitempty"`
	IsPublic      bool              `json:"is_public"`
	IsFeatured    bool              `json:"is_featured"`
	CreatedAt     string            `json:"created_at,omitempty"`
	UpdatedAt     string            `json:"updated_at,omitempty"`
}

// 過濾條件的預設值，條件值等於預設就視為未啟用
const (
	DefaultMaxCookTime = 120
	DefaultMaxCost     = 200.0
	DefaultMinServings = 1
	DefaultMaxServings = 10

	// QuickTimeLimit 快速料理的總時間門檻（分鐘）
	QuickTimeLimit = 30
)

// FilterCriteria 結構化過濾條件
type FilterCriteria struct {
	Categories      []Category   `json:"categories"`
	Difficulties    []Difficulty `json:"difficulties"`
	MaxCookTime     int          `json:"maxCookTime"` // 總時間上限（含）
	MaxCost         float64      `json:"maxCost"`
	MinServings     int          `json:"minServings"`
	MaxServings     int          `json:"maxServings"`
	HasAlternatives bool         `json:"hasAlternatives"`
	QuickOnly       bool         `json:"quickOnly"`
}

// DefaultFilterCriteria 回傳全部未啟用的過濾條件
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		MaxCookTime: DefaultMaxCookTime,
		MaxCost:     DefaultMaxCost,
		MinServings: DefaultMinServings,
		MaxServings: DefaultMaxServings,
	}
}

// ActiveCount 啟用中的條件數量（跟前端 badge 的算法一致）
func (c FilterCriteria) ActiveCount() int {
	count := len(c.Categories) + len(c.Difficulties)
	if c.MaxCookTime != DefaultMaxCookTime {
		count++
	}
	if c.MaxCost != DefaultMaxCost {
		count++
	}
	if c.MinServings != DefaultMinServings || c.MaxServings != DefaultMaxServings {
		count++
	}
	if c.HasAlternatives {
		count++
	}
	if c.QuickOnly {
		count++
	}
	return count
}

// RankedRecipe 附帶食材比對結果的食譜
type RankedRecipe struct {
	Recipe             Recipe   `json:"recipe"`
	MatchedIngredients []string `json:"matchedIngredients,omitempty"`
	MatchPercent       int      `json:"matchPercent"`
}

// Recommendation 個人化推薦結果
type Recommendation struct {
	Recipe Recipe  `json:"recipe"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}

// BudgetTier 由收藏推導出的預算級距
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

// UserProfile 由本地偏好資料推導出的使用者輪廓（推導值，不落地）
type UserProfile struct {
	Favorites           []string   `json:"favorites"`
	RecentSearches      []string   `json:"recentSearches"`
	PreferredCategories []Category `json:"preferredCategories"`
	AverageCookTime     float64    `json:"averageCookTime"`
	BudgetTier          BudgetTier `json:"budgetTier"`
}

// MealPlan 每週餐點安排：day -> slot -> recipe id
type MealPlan map[string]map[string]string

// 星期與餐別的固定順序（週六開始）
var (
	PlanDays  = []string{"saturday", "sunday", "monday", "tuesday", "wednesday", "thursday", "friday"}
	MealSlots = []string{"breakfast", "lunch", "dinner"}
)

// ShoppingItem 購物清單項目
type ShoppingItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity string  `json:"quantity"`
	Category string  `json:"category"`
	Price    float64 `json:"price,omitempty"`
	Checked  bool    `json:"checked"`
	Urgent   bool    `json:"urgent"`
}

// TrendInsight 分類趨勢洞察
type TrendInsight struct {
	Category Category `json:"category"`
	Growth   int      `json:"growth"`
	Reason   string   `json:"reason"`
}
