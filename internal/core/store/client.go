package store

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fridge-api/internal/infrastructure/config"
	"fridge-api/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// Client 遠端食譜庫客戶端（PostgREST 風格的 REST 介面）
// 每個呼叫獨立成功或失敗，沒有跨呼叫的交易語意
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient 創建遠端食譜庫客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Store.BaseURL).
		SetTimeout(cfg.Store.Timeout).
		SetHeader("apikey", cfg.Store.APIKey).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Store.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		config: cfg,
		client: client,
	}
}

// FetchAll 抓取全部公開食譜，照遠端回傳順序
func (c *Client) FetchAll(ctx context.Context) ([]common.RawDynamicRecipe, error) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("is_public", "eq.true").
		Get("/rest/v1/recipes")
	common.LogStoreCall("fetch_all", time.Since(start), err, "")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("recipe store returned error: %s", resp.String())
	}

	var recipes []common.RawDynamicRecipe
	if err := common.ParseJSONBytes(resp.Body(), &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse recipe list: %w", err)
	}
	return recipes, nil
}

// FetchByID 抓取單筆食譜，找不到回 (nil, nil)
func (c *Client) FetchByID(ctx context.Context, id string) (*common.RawDynamicRecipe, error) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("id", "eq."+id).
		Get("/rest/v1/recipes")
	common.LogStoreCall("fetch_by_id", time.Since(start), err, "")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe %s: %w", id, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("recipe store returned error: %s", resp.String())
	}

	var recipes []common.RawDynamicRecipe
	if err := common.ParseJSONBytes(resp.Body(), &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}
	if len(recipes) == 0 {
		return nil, nil
	}
	return &recipes[0], nil
}

// Create 建立食譜，回傳伺服器補完欄位後的記錄
func (c *Client) Create(ctx context.Context, raw common.RawDynamicRecipe) (*common.RawDynamicRecipe, error) {
	raw.ID = "" // id 由伺服器配發

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(raw).
		Post("/rest/v1/recipes")
	common.LogStoreCall("create", time.Since(start), err, "")

	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("recipe store returned error: %s", resp.String())
	}

	var created []common.RawDynamicRecipe
	if err := common.ParseJSONBytes(resp.Body(), &created); err != nil {
		return nil, fmt.Errorf("failed to parse created recipe: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("recipe store returned empty representation")
	}
	return &created[0], nil
}

// Update 更新食譜
func (c *Client) Update(ctx context.Context, id string, raw common.RawDynamicRecipe) (*common.RawDynamicRecipe, error) {
	raw.ID = ""

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+id).
		SetBody(raw).
		Patch("/rest/v1/recipes")
	common.LogStoreCall("update", time.Since(start), err, "")

	if err != nil {
		return nil, fmt.Errorf("failed to update recipe %s: %w", id, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("recipe store returned error: %s", resp.String())
	}

	var updated []common.RawDynamicRecipe
	if err := common.ParseJSONBytes(resp.Body(), &updated); err != nil {
		return nil, fmt.Errorf("failed to parse updated recipe: %w", err)
	}
	if len(updated) == 0 {
		return nil, nil
	}
	return &updated[0], nil
}

// Delete 刪除食譜
func (c *Client) Delete(ctx context.Context, id string) error {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+id).
		Delete("/rest/v1/recipes")
	common.LogStoreCall("delete", time.Since(start), err, "")

	if err != nil {
		return fmt.Errorf("failed to delete recipe %s: %w", id, err)
	}
	if resp.StatusCode() != http.StatusNoContent && resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("recipe store returned error: %s", resp.String())
	}
	return nil
}
