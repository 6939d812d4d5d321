package catalog

import (
	"context"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"fridge-api/internal/pkg/common"
)

// DynamicIDPrefix 遠端食譜的 id 命名空間前綴
// 內建食譜用裸 slug，遠端食譜一律掛上前綴避免撞名
const DynamicIDPrefix = "db:"

// DefaultImage 遠端食譜沒有圖片時的佔位符
const DefaultImage = "🍽️"

// DynamicSource 遠端食譜來源
type DynamicSource interface {
	FetchAll(ctx context.Context) ([]common.RawDynamicRecipe, error)
}

// Service 食譜目錄服務：內建食譜 + 遠端食譜的聯集
type Service struct {
	source DynamicSource
}

// NewService 創建目錄服務（source 可為 nil，只用內建食譜）
func NewService(source DynamicSource) *Service {
	return &Service{source: source}
}

// NormalizeCategory 把任意分類標籤正規化到封閉集合
// 認不得的標籤（含舊資料的 مقلية/مشوية）一律落到 other
func NormalizeCategory(raw string) common.Category {
	c := common.Category(strings.TrimSpace(raw))
	for _, known := range common.Categories {
		if c == known {
			return known
		}
	}
	return common.CategoryOther
}

// IsDynamicID 判斷 id 是否屬於遠端食譜
func IsDynamicID(id string) bool {
	return strings.HasPrefix(id, DynamicIDPrefix)
}

// StripDynamicID 去掉遠端食譜 id 的前綴（呼叫遠端 CRUD 前用）
func StripDynamicID(id string) string {
	return strings.TrimPrefix(id, DynamicIDPrefix)
}

// FromRaw 把遠端原生形狀轉成統一的 Recipe 形狀
// 轉換是全函數：任何輸入都會產出合法的 Recipe
func FromRaw(raw common.RawDynamicRecipe) common.Recipe {
	image := DefaultImage
	if raw.ImageURL != nil && *raw.ImageURL != "" {
		image = *raw.ImageURL
	}
	description := ""
	if raw.Description != nil {
		description = *raw.Description
	}
	cost := 0.0
	if raw.EstimatedCost != nil {
		cost = *raw.EstimatedCost
	}
	return common.Recipe{
		ID:            DynamicIDPrefix + raw.ID,
		Name:          raw.Name,
		Image:         image,
		PrepTime:      raw.PrepTime,
		CookTime:      raw.CookTime,
		Difficulty:    common.Difficulty(raw.Difficulty),
		Category:      NormalizeCategory(raw.Category),
		Ingredients:   raw.Ingredients,
		Instructions:  raw.Instructions,
		Description:   description,
		Servings:      raw.Servings,
		EstimatedCost: cost,
		Alternatives:  raw.Alternatives,
	}
}

// ToRaw 把統一形狀轉回遠端原生形狀（建立/更新用）
// 伺服器管理的欄位（created_by、created_at、updated_at）不帶
func ToRaw(r common.Recipe) common.RawDynamicRecipe {
	var imageURL *string
	if strings.HasPrefix(r.Image, "http") {
		url := r.Image
		imageURL = &url
	}
	var description *string
	if r.Description != "" {
		d := r.Description
		description = &d
	}
	var cost *float64
	if r.EstimatedCost > 0 {
		c := r.EstimatedCost
		cost = &c
	}
	alternatives := r.Alternatives
	if alternatives == nil {
		alternatives = map[string]string{}
	}
	return common.RawDynamicRecipe{
		ID:            StripDynamicID(r.ID),
		Name:          r.Name,
		Description:   description,
		ImageURL:      imageURL,
		PrepTime:      r.PrepTime,
		CookTime:      r.CookTime,
		Difficulty:    string(r.Difficulty),
		Category:      string(r.Category),
		Servings:      r.Servings,
		EstimatedCost: cost,
		Ingredients:   r.Ingredients,
		Instructions:  r.Instructions,
		Alternatives:  alternatives,
		IsPublic:      true,
		IsFeatured:    false,
	}
}

// Combine 合併內建與遠端食譜：內建在前，遠端照抓取順序附加，不去重
func Combine(builtIn []common.Recipe, dynamic []common.RawDynamicRecipe) []common.Recipe {
	out := make([]common.Recipe, 0, len(builtIn)+len(dynamic))
	out = append(out, builtIn...)
	for _, raw := range dynamic {
		out = append(out, FromRaw(raw))
	}
	return out
}

// All 回傳完整目錄
// 遠端抓取失敗時退回內建食譜，不讓整個目錄掛掉
func (s *Service) All(ctx context.Context) []common.Recipe {
	builtIn := BuiltinRecipes()
	if s.source == nil {
		return builtIn
	}
	dynamic, err := s.source.FetchAll(ctx)
	if err != nil {
		common.LogWarn("遠端食譜抓取失敗，退回內建食譜", zap.Error(err))
		return builtIn
	}
	return Combine(builtIn, dynamic)
}

// ByID 在聯集裡找食譜
func (s *Service) ByID(ctx context.Context, id string) (common.Recipe, bool) {
	for _, r := range s.All(ctx) {
		if r.ID == id {
			return r, true
		}
	}
	return common.Recipe{}, false
}

// Random 從聯集裡隨機挑一道
func (s *Service) Random(ctx context.Context, rng *rand.Rand) (common.Recipe, bool) {
	all := s.All(ctx)
	if len(all) == 0 {
		return common.Recipe{}, false
	}
	return all[rng.Intn(len(all))], true
}
