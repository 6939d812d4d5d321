package engine

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCannedDetectorSampleSize(t *testing.T) {
	detector := NewCannedDetector(rand.New(rand.NewSource(9)))

	for i := 0; i < 20; i++ {
		ingredients, err := detector.Detect(context.Background(), "data:image/jpeg;base64,xxxx")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(ingredients), 3)
		assert.LessOrEqual(t, len(ingredients), 7)

		// 不會重複抽同一個
		seen := make(map[string]bool)
		for _, ing := range ingredients {
			assert.False(t, seen[ing])
			seen[ing] = true
		}
	}
}
