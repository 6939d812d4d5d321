package engine

import (
	"context"
	"math/rand"
)

// IngredientDetector 食材辨識能力接縫
// 之後接真模型時只要換實作，呼叫端不動
type IngredientDetector interface {
	Detect(ctx context.Context, imageData string) ([]string, error)
}

// 示範用的常備食材清單
var pantrySamples = []string{
	"طماطم", "بصل", "جزر", "بطاطس", "فلفل أخضر",
	"خيار", "خس", "بيض", "لبن", "جبنة",
}

// CannedDetector 預設的辨識實作：從常備清單隨機抽 3–7 個
// 圖片內容不參與結果，純粹是佔位的能力實作
type CannedDetector struct {
	rng *rand.Rand
}

// NewCannedDetector 創建預設辨識器
func NewCannedDetector(rng *rand.Rand) *CannedDetector {
	return &CannedDetector{rng: rng}
}

// Detect 回傳隨機抽樣的食材名稱
func (d *CannedDetector) Detect(ctx context.Context, imageData string) ([]string, error) {
	pool := make([]string, len(pantrySamples))
	copy(pool, pantrySamples)
	d.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	n := d.rng.Intn(5) + 3
	return pool[:n], nil
}
