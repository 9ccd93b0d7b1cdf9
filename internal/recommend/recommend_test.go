package recommend

import (
	"testing"

	"asdscreen/internal/risk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForLevelAllCategoriesNonEmpty(t *testing.T) {
	for _, level := range []risk.Level{risk.Low, risk.Moderate, risk.High} {
		t.Run(string(level), func(t *testing.T) {
			set := ForLevel(level)
			assert.NotEmpty(t, set.Medical)
			assert.NotEmpty(t, set.Therapy)
			assert.NotEmpty(t, set.Relaxation)
			assert.NotEmpty(t, set.Lifestyle)
			assert.NotEmpty(t, set.Nutrition)
		})
	}
}

func TestForLevelDeterministic(t *testing.T) {
	for _, level := range []risk.Level{risk.Low, risk.Moderate, risk.High} {
		first := ForLevel(level)
		second := ForLevel(level)
		assert.Equal(t, first, second)
	}
}

func TestForLevelTiersDiffer(t *testing.T) {
	low := ForLevel(risk.Low)
	moderate := ForLevel(risk.Moderate)
	high := ForLevel(risk.High)

	require.NotEqual(t, low.Medical, moderate.Medical)
	require.NotEqual(t, moderate.Medical, high.Medical)
}

func TestForLevelUnknownFallsBackToLow(t *testing.T) {
	assert.Equal(t, ForLevel(risk.Low), ForLevel(risk.Level("Unknown")))
}
