package hydration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unclebandit/bizdev-backend/internal/model"
)

func TestComputeProgressPartial(t *testing.T) {
	p := ComputeProgress(3, 2)
	assert.Equal(t, 2, p.CompletedCount)
	assert.Equal(t, 67, p.Percentage)
	assert.Equal(t, model.ItemInProgress, p.Status)
}

func TestComputeProgressEmpty(t *testing.T) {
	p := ComputeProgress(3, 0)
	assert.Equal(t, 0, p.CompletedCount)
	assert.Equal(t, 0, p.Percentage)
	assert.Equal(t, model.ItemTodo, p.Status)
}

func TestComputeProgressComplete(t *testing.T) {
	p := ComputeProgress(3, 3)
	assert.Equal(t, 100, p.Percentage)
	assert.Equal(t, model.ItemCompleted, p.Status)
}

func TestComputeProgressOverDelivery(t *testing.T) {
	// The true count is reported even past quantity; only the percentage is
	// clamped.
	p := ComputeProgress(3, 5)
	assert.Equal(t, 5, p.CompletedCount)
	assert.Equal(t, 100, p.Percentage)
	assert.Equal(t, model.ItemCompleted, p.Status)
}

func TestComputeProgressZeroQuantity(t *testing.T) {
	p := ComputeProgress(0, 0)
	assert.Equal(t, 0, p.Percentage)
	assert.Equal(t, model.ItemTodo, p.Status)

	p = ComputeProgress(0, 2)
	assert.Equal(t, 2, p.CompletedCount)
	assert.Equal(t, 0, p.Percentage)
}

func TestComputeProgressRounding(t *testing.T) {
	assert.Equal(t, 33, ComputeProgress(3, 1).Percentage)
	assert.Equal(t, 67, ComputeProgress(3, 2).Percentage)
	assert.Equal(t, 17, ComputeProgress(6, 1).Percentage)
}

func TestComputeProgressPercentageBounds(t *testing.T) {
	for quantity := 0; quantity <= 5; quantity++ {
		for attached := 0; attached <= 10; attached++ {
			p := ComputeProgress(quantity, attached)
			assert.GreaterOrEqual(t, p.Percentage, 0)
			assert.LessOrEqual(t, p.Percentage, 100)
		}
	}
}
