package prefs

import (
	"context"
	"fmt"

	"fridge-api/internal/pkg/common"
)

// 偏好資料的固定鍵集合
const (
	KeyFavorites           = "favorites"
	KeyRecentSearches      = "recentSearches"
	KeySelectedIngredients = "selectedIngredients"
	KeyMealPlan            = "mealPlan"
	KeyShoppingList        = "shoppingList"
)

// Store 使用者偏好資料的底層儲存
// 以 user + key 定位一筆 JSON 值，miss 回 (nil, nil)
type Store interface {
	Get(ctx context.Context, userID, key string) ([]byte, error)
	Set(ctx context.Context, userID, key string, value []byte) error
	Delete(ctx context.Context, userID, key string) error
}

// Service 偏好資料服務：在底層儲存上提供型別化的操作
type Service struct {
	store     Store
	searchCap int
}

// NewService 創建偏好資料服務
func NewService(store Store, searchCap int) *Service {
	return &Service{store: store, searchCap: searchCap}
}

func (s *Service) getStringList(ctx context.Context, userID, key string) ([]string, error) {
	data, err := s.store.Get(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []string{}, nil
	}
	var list []string
	if err := common.ParseJSONBytes(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return list, nil
}

func (s *Service) setJSON(ctx context.Context, userID, key string, v interface{}) error {
	data, err := common.ToJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return s.store.Set(ctx, userID, key, []byte(data))
}

// Favorites 讀取收藏的食譜 id
func (s *Service) Favorites(ctx context.Context, userID string) ([]string, error) {
	return s.getStringList(ctx, userID, KeyFavorites)
}

// AddFavorite 加入收藏（已存在就不動）
func (s *Service) AddFavorite(ctx context.Context, userID, recipeID string) ([]string, error) {
	favorites, err := s.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range favorites {
		if id == recipeID {
			return favorites, nil
		}
	}
	favorites = append(favorites, recipeID)
	if err := s.setJSON(ctx, userID, KeyFavorites, favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

// RemoveFavorite 移除收藏
func (s *Service) RemoveFavorite(ctx context.Context, userID, recipeID string) ([]string, error) {
	favorites, err := s.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(favorites))
	for _, id := range favorites {
		if id != recipeID {
			out = append(out, id)
		}
	}
	if err := s.setJSON(ctx, userID, KeyFavorites, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecentSearches 讀取最近搜尋（最新的在最前面）
func (s *Service) RecentSearches(ctx context.Context, userID string) ([]string, error) {
	return s.getStringList(ctx, userID, KeyRecentSearches)
}

// AppendSearch 記錄一次搜尋
// 新的放最前面、移掉重複的舊項、截到上限
func (s *Service) AppendSearch(ctx context.Context, userID, term string) ([]string, error) {
	if term == "" {
		return s.RecentSearches(ctx, userID)
	}
	searches, err := s.RecentSearches(ctx, userID)
	if err != nil {
		return nil, err
	}
	updated := make([]string, 0, len(searches)+1)
	updated = append(updated, term)
	for _, t := range searches {
		if t != term {
			updated = append(updated, t)
		}
	}
	if len(updated) > s.searchCap {
		updated = updated[:s.searchCap]
	}
	if err := s.setJSON(ctx, userID, KeyRecentSearches, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ClearSearches 清空搜尋紀錄
func (s *Service) ClearSearches(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, userID, KeyRecentSearches)
}

// SelectedIngredients 讀取已選食材
func (s *Service) SelectedIngredients(ctx context.Context, userID string) ([]string, error) {
	return s.getStringList(ctx, userID, KeySelectedIngredients)
}

// SetSelectedIngredients 覆寫已選食材
// 只做精確字串去重，不做正規化（比對器自己處理模糊比對）
func (s *Service) SetSelectedIngredients(ctx context.Context, userID string, ingredients []string) ([]string, error) {
	seen := make(map[string]bool, len(ingredients))
	deduped := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if !seen[ing] {
			seen[ing] = true
			deduped = append(deduped, ing)
		}
	}
	if err := s.setJSON(ctx, userID, KeySelectedIngredients, deduped); err != nil {
		return nil, err
	}
	return deduped, nil
}

// MealPlan 讀取餐點安排
func (s *Service) MealPlan(ctx context.Context, userID string) (common.MealPlan, error) {
	data, err := s.store.Get(ctx, userID, KeyMealPlan)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return common.MealPlan{}, nil
	}
	var plan common.MealPlan
	if err := common.ParseJSONBytes(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse meal plan: %w", err)
	}
	return plan, nil
}

// SetMealPlan 覆寫餐點安排
func (s *Service) SetMealPlan(ctx context.Context, userID string, plan common.MealPlan) error {
	return s.setJSON(ctx, userID, KeyMealPlan, plan)
}

// ShoppingList 讀取購物清單
func (s *Service) ShoppingList(ctx context.Context, userID string) ([]common.ShoppingItem, error) {
	data, err := s.store.Get(ctx, userID, KeyShoppingList)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []common.ShoppingItem{}, nil
	}
	var items []common.ShoppingItem
	if err := common.ParseJSONBytes(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse shopping list: %w", err)
	}
	return items, nil
}

// SetShoppingList 覆寫購物清單
func (s *Service) SetShoppingList(ctx context.Context, userID string, items []common.ShoppingItem) error {
	return s.setJSON(ctx, userID, KeyShoppingList, items)
}
