// internal/hydration/timeline.go
package hydration

import (
    "time"

    "github.com/unclebandit/bizdev-backend/internal/model"
)

// PhaseSpan is the computed window of one phase.
type PhaseSpan struct {
    Start time.Time `json:"start"`
    End   time.Time `json:"end"`
}

// ComputeTimeline lays the given phases back to back from start, in the
// order given: each phase's end is the next phase's start. A zero-duration
// phase collapses to a point, which is valid. Pure function, usable for
// persisted phases and for ad-hoc preview lists alike.
func ComputeTimeline(start time.Time, phases []model.WorkPackagePhase) []PhaseSpan {
    spans := make([]PhaseSpan, 0, len(phases))
    cursor := start
    for _, ph := range phases {
        weeks := ph.DurationWeeks
        if weeks < 0 {
            weeks = 0
        }
        end := cursor.Add(time.Duration(weeks * 7 * 24 * float64(time.Hour)))
        spans = append(spans, PhaseSpan{Start: cursor, End: end})
        cursor = end
    }
    return spans
}
