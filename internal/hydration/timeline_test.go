package hydration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/bizdev-backend/internal/model"
)

func day(n int) time.Time {
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestComputeTimelineBackToBack(t *testing.T) {
	phases := []model.WorkPackagePhase{
		{Name: "Foundation", DurationWeeks: 1},
		{Name: "Review", DurationWeeks: 0},
		{Name: "Production", DurationWeeks: 2},
	}

	spans := ComputeTimeline(day(0), phases)
	require.Len(t, spans, 3)

	assert.Equal(t, day(0), spans[0].Start)
	assert.Equal(t, day(7), spans[0].End)

	// Zero-duration phase collapses to a point, which is valid.
	assert.Equal(t, day(7), spans[1].Start)
	assert.Equal(t, day(7), spans[1].End)

	assert.Equal(t, day(7), spans[2].Start)
	assert.Equal(t, day(21), spans[2].End)
}

func TestComputeTimelineContiguous(t *testing.T) {
	phases := []model.WorkPackagePhase{
		{DurationWeeks: 3},
		{DurationWeeks: 1.5},
		{DurationWeeks: 0},
		{DurationWeeks: 4},
	}

	spans := ComputeTimeline(day(0), phases)
	require.Len(t, spans, len(phases))

	for i := 0; i < len(spans)-1; i++ {
		assert.Equal(t, spans[i].End, spans[i+1].Start, "phase %d end must be phase %d start", i, i+1)
	}
}

func TestComputeTimelineDeterministic(t *testing.T) {
	phases := []model.WorkPackagePhase{
		{DurationWeeks: 2},
		{DurationWeeks: 5},
	}

	first := ComputeTimeline(day(10), phases)
	second := ComputeTimeline(day(10), phases)
	assert.Equal(t, first, second)
}

func TestComputeTimelineEmpty(t *testing.T) {
	spans := ComputeTimeline(day(0), nil)
	assert.Empty(t, spans)
}

func TestComputeTimelineNegativeDurationTreatedAsZero(t *testing.T) {
	phases := []model.WorkPackagePhase{{DurationWeeks: -2}}

	spans := ComputeTimeline(day(0), phases)
	require.Len(t, spans, 1)
	assert.Equal(t, spans[0].Start, spans[0].End)
}
