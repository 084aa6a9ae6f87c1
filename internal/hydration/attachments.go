// internal/hydration/attachments.go
package hydration

import "github.com/unclebandit/bizdev-backend/internal/model"

// Attachments is the reconciled attachment set of one item: the kind the
// item declares plus every referenced artifact id, deduplicated.
type Attachments struct {
    Kind model.ArtifactKind
    IDs  []int
}

// ItemAttachments unions the item's active per-kind id list with its
// collateral records. Both mechanisms are treated as equally authoritative;
// an artifact attached through both counts once. First-seen order is kept so
// resolution preserves reference order. Collateral rows of a kind other than
// the item's declared kind are skipped; they cannot point into the item's
// collection.
func ItemAttachments(item *model.WorkPackageItem) Attachments {
    seen := make(map[int]bool)
    ids := []int{}

    for _, raw := range item.KindIDs() {
        id := int(raw)
        if seen[id] {
            continue
        }
        seen[id] = true
        ids = append(ids, id)
    }

    for _, col := range item.Collateral {
        if col.Kind != item.Kind {
            continue
        }
        if seen[col.ArtifactRefID] {
            continue
        }
        seen[col.ArtifactRefID] = true
        ids = append(ids, col.ArtifactRefID)
    }

    return Attachments{Kind: item.Kind, IDs: ids}
}
