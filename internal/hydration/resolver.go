// internal/hydration/resolver.go
package hydration

import (
    "context"
    "log"

    "github.com/unclebandit/bizdev-backend/internal/model"
)

// Store is the read boundary toward the six artifact collections. Missing
// ids are simply absent from the result, never an error.
type Store interface {
    FetchByIDs(ctx context.Context, kind model.ArtifactKind, ids []int) ([]model.Artifact, error)
}

// ResolvedArtifact tags a fetched artifact with the collection it came from.
type ResolvedArtifact struct {
    Kind     model.ArtifactKind `json:"kind"`
    Artifact model.Artifact     `json:"artifact"`
}

// Resolution is the outcome of resolving one item's attachments.
type Resolution struct {
    Artifacts    []ResolvedArtifact
    MissingCount int
    // Failed is set when the store itself errored for this item. The item
    // then hydrates with an empty artifact list; siblings are unaffected.
    Failed bool
}

type Resolver struct {
    Store Store
}

// Resolve fetches the item's reconciled attachments from its kind's
// collection. Ids that no longer resolve (artifact deleted after being
// referenced) are dropped and counted; they never abort the item or the
// surrounding work package.
func (r *Resolver) Resolve(ctx context.Context, item *model.WorkPackageItem) Resolution {
    att := ItemAttachments(item)
    if len(att.IDs) == 0 {
        return Resolution{Artifacts: []ResolvedArtifact{}}
    }

    fetched, err := r.Store.FetchByIDs(ctx, att.Kind, att.IDs)
    if err != nil {
        log.Println("⚠️ artifact fetch failed for item", item.ID, ":", err)
        return Resolution{Artifacts: []ResolvedArtifact{}, Failed: true}
    }

    byID := make(map[int]model.Artifact, len(fetched))
    for _, a := range fetched {
        byID[a.ArtifactID()] = a
    }

    resolved := make([]ResolvedArtifact, 0, len(att.IDs))
    missing := 0
    for _, id := range att.IDs {
        a, ok := byID[id]
        if !ok {
            missing++
            continue
        }
        resolved = append(resolved, ResolvedArtifact{Kind: att.Kind, Artifact: a})
    }

    return Resolution{Artifacts: resolved, MissingCount: missing}
}
