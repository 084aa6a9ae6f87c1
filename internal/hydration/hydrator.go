// internal/hydration/hydrator.go
package hydration

import (
    "context"
    "sort"
    "sync"
    "time"

    "github.com/unclebandit/bizdev-backend/internal/model"
)

// Options controls one hydration pass.
type Options struct {
    Scope           Scope
    IncludeTimeline bool
    // TimelineStart overrides the work package's own start date when set.
    TimelineStart *time.Time
}

// HydratedItem is an item with its references resolved and progress derived.
type HydratedItem struct {
    ID                 int                `json:"id"`
    PhaseID            *int               `json:"phase_id,omitempty"`
    Name               string             `json:"name"`
    Kind               model.ArtifactKind `json:"kind"`
    Quantity           int                `json:"quantity"`
    ResolvedArtifacts  []ResolvedArtifact `json:"resolved_artifacts"`
    CompletedCount     int                `json:"completed_count"`
    ProgressPercentage int                `json:"progress_percentage"`
    Status             string             `json:"status"`
    MissingCount       int                `json:"missing_count,omitempty"`
    ResolutionFailed   bool               `json:"resolution_failed,omitempty"`
}

type HydratedPhase struct {
    ID                  int            `json:"id"`
    Name                string         `json:"name"`
    Position            int            `json:"position"`
    TimelineLabel       string         `json:"timeline_label,omitempty"`
    DurationWeeks       float64        `json:"duration_weeks"`
    Items               []HydratedItem `json:"items"`
    Start               *time.Time     `json:"start,omitempty"`
    End                 *time.Time     `json:"end,omitempty"`
    TotalEstimatedHours *float64       `json:"total_estimated_hours,omitempty"`
}

type HydratedWorkPackage struct {
    ID          int              `json:"id"`
    ContactID   int              `json:"contact_id"`
    CompanyHQID *int             `json:"company_hq_id,omitempty"`
    Title       string           `json:"title"`
    Description string           `json:"description"`
    Status      string           `json:"status"`
    StartedAt   *time.Time       `json:"started_at,omitempty"`
    CreatedAt   time.Time        `json:"created_at"`
    Phases      []HydratedPhase  `json:"phases"`
    Items       []HydratedItem   `json:"items"`
    // TimelineOmitted is set when a timeline was requested but no start
    // date was available. Not an error.
    TimelineOmitted bool `json:"timeline_omitted,omitempty"`
}

// Hydrator turns a stored work package tree into a viewer-scoped,
// progress-annotated projection.
type Hydrator struct {
    Resolver *Resolver
}

func NewHydrator(store Store) *Hydrator {
    return &Hydrator{Resolver: &Resolver{Store: store}}
}

type itemSlot struct {
    item       *model.WorkPackageItem
    resolution Resolution
}

// Hydrate resolves every item's artifact references, filters them for the
// requested scope, derives progress, and optionally overlays a timeline.
// Items are independent, so their fetches run concurrently; each goroutine
// writes only its own slot, completion order does not matter.
func (h *Hydrator) Hydrate(ctx context.Context, wp *model.WorkPackage, opts Options) *HydratedWorkPackage {
    phases := make([]model.WorkPackagePhase, len(wp.Phases))
    copy(phases, wp.Phases)
    sort.SliceStable(phases, func(i, j int) bool {
        return phases[i].Position < phases[j].Position
    })

    var slots []*itemSlot
    phaseSlots := make([][]*itemSlot, len(phases))
    for pi := range phases {
        phaseSlots[pi] = make([]*itemSlot, len(phases[pi].Items))
        for ii := range phases[pi].Items {
            s := &itemSlot{item: &phases[pi].Items[ii]}
            phaseSlots[pi][ii] = s
            slots = append(slots, s)
        }
    }
    flatSlots := make([]*itemSlot, len(wp.Items))
    for ii := range wp.Items {
        s := &itemSlot{item: &wp.Items[ii]}
        flatSlots[ii] = s
        slots = append(slots, s)
    }

    var wg sync.WaitGroup
    for _, s := range slots {
        wg.Add(1)
        go func(s *itemSlot) {
            defer wg.Done()
            s.resolution = h.Resolver.Resolve(ctx, s.item)
        }(s)
    }
    wg.Wait()

    out := &HydratedWorkPackage{
        ID:          wp.ID,
        ContactID:   wp.ContactID,
        CompanyHQID: wp.CompanyHQID,
        Title:       wp.Title,
        Description: wp.Description,
        Status:      wp.Status,
        StartedAt:   wp.StartedAt,
        CreatedAt:   wp.CreatedAt,
        Phases:      make([]HydratedPhase, 0, len(phases)),
        Items:       make([]HydratedItem, 0, len(wp.Items)),
    }

    var spans []PhaseSpan
    if opts.IncludeTimeline && len(phases) > 0 {
        start := opts.TimelineStart
        if start == nil {
            start = wp.StartedAt
        }
        if start == nil {
            out.TimelineOmitted = true
        } else {
            spans = ComputeTimeline(*start, phases)
        }
    }

    for pi, ph := range phases {
        hp := HydratedPhase{
            ID:            ph.ID,
            Name:          ph.Name,
            Position:      ph.Position,
            TimelineLabel: ph.TimelineLabel,
            DurationWeeks: ph.DurationWeeks,
            Items:         make([]HydratedItem, 0, len(ph.Items)),
        }
        for _, s := range phaseSlots[pi] {
            hp.Items = append(hp.Items, hydrateItem(s, opts.Scope))
        }
        hp.TotalEstimatedHours = totalEstimatedHours(ph.Items)
        if spans != nil {
            start, end := spans[pi].Start, spans[pi].End
            hp.Start, hp.End = &start, &end
        }
        out.Phases = append(out.Phases, hp)
    }

    for _, s := range flatSlots {
        out.Items = append(out.Items, hydrateItem(s, opts.Scope))
    }

    return out
}

// hydrateItem assembles one item's projection. Progress always derives from
// the unfiltered count so owners are never misled by scope filtering.
func hydrateItem(s *itemSlot, scope Scope) HydratedItem {
    progress := ComputeProgress(s.item.Quantity, len(s.resolution.Artifacts))
    return HydratedItem{
        ID:                 s.item.ID,
        PhaseID:            s.item.PhaseID,
        Name:               s.item.Name,
        Kind:               s.item.Kind,
        Quantity:           s.item.Quantity,
        ResolvedArtifacts:  FilterArtifacts(scope, s.resolution.Artifacts),
        CompletedCount:     progress.CompletedCount,
        ProgressPercentage: progress.Percentage,
        Status:             progress.Status,
        MissingCount:       s.resolution.MissingCount,
        ResolutionFailed:   s.resolution.Failed,
    }
}

// totalEstimatedHours sums quantity × estimated hours over the items that
// carry hours data. Phases with no hours data report nil, not zero.
func totalEstimatedHours(items []model.WorkPackageItem) *float64 {
    var total float64
    populated := false
    for i := range items {
        if items[i].EstimatedHoursEach == nil {
            continue
        }
        populated = true
        total += float64(items[i].Quantity) * *items[i].EstimatedHoursEach
    }
    if !populated {
        return nil
    }
    return &total
}
