// internal/hydration/progress.go
package hydration

import (
    "math"

    "github.com/unclebandit/bizdev-backend/internal/model"
)

// Progress is the derived completion state of one item.
type Progress struct {
    CompletedCount int
    Quantity       int
    Percentage     int
    Status         string
}

// ComputeProgress derives completion from the owner-scope attached count.
// CompletedCount is never clamped; over-delivery is a valid state the owner
// should see. Only the display percentage is clamped to [0, 100], and a
// non-positive quantity yields 0 rather than dividing by zero.
func ComputeProgress(quantity, attached int) Progress {
    p := Progress{CompletedCount: attached, Quantity: quantity}

    if quantity > 0 {
        pct := int(math.Round(100 * float64(attached) / float64(quantity)))
        if pct > 100 {
            pct = 100
        }
        if pct < 0 {
            pct = 0
        }
        p.Percentage = pct
    }

    switch {
    case attached <= 0:
        p.Status = model.ItemTodo
    case attached >= quantity:
        p.Status = model.ItemCompleted
    default:
        p.Status = model.ItemInProgress
    }

    return p
}
