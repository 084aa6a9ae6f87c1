// internal/model/work_package.go
package model

import "time"

// Work package lifecycle statuses
const (
    WorkPackageActive    = "active"
    WorkPackageCompleted = "completed"
)

// Item statuses
const (
    ItemTodo       = "todo"
    ItemInProgress = "in_progress"
    ItemCompleted  = "completed"
)

type WorkPackage struct {
    ID          int        `db:"id" json:"id"`
    ContactID   int        `db:"contact_id" json:"contact_id"`
    CompanyHQID *int       `db:"company_hq_id" json:"company_hq_id,omitempty"`
    Title       string     `db:"title" json:"title"`
    Description string     `db:"description" json:"description"`
    Status      string     `db:"status" json:"status"`
    StartedAt   *time.Time `db:"started_at" json:"started_at,omitempty"`
    CreatedAt   time.Time  `db:"created_at" json:"created_at"`

    Phases []WorkPackagePhase `json:"phases"`
    // Legacy items attached directly to the work package, outside any phase.
    Items []WorkPackageItem `json:"items"`
}

type WorkPackagePhase struct {
    ID            int     `db:"id" json:"id"`
    WorkPackageID int     `db:"work_package_id" json:"work_package_id"`
    Name          string  `db:"name" json:"name"`
    Position      int     `db:"position" json:"position"`
    TimelineLabel string  `db:"timeline_label" json:"timeline_label,omitempty"`
    DurationWeeks float64 `db:"duration_weeks" json:"duration_weeks"`

    Items []WorkPackageItem `json:"items"`
}

// WorkPackageItem is a deliverable slot. Exactly one of the six id lists is
// semantically active, selected by Kind; the others stay empty. Collateral
// rows are a legacy attachment mechanism that can coexist with the lists.
type WorkPackageItem struct {
    ID            int          `db:"id" json:"id"`
    WorkPackageID int          `db:"work_package_id" json:"work_package_id"`
    PhaseID       *int         `db:"phase_id" json:"phase_id,omitempty"`
    Name          string       `db:"name" json:"name"`
    Kind          ArtifactKind `db:"kind" json:"kind"`
    Quantity      int          `db:"quantity" json:"quantity"`
    Status        string       `db:"status" json:"status"`

    EstimatedHoursEach *float64 `db:"estimated_hours_each" json:"estimated_hours_each,omitempty"`

    BlogIDs             []int64 `db:"blog_ids" json:"blog_ids"`
    PersonaIDs          []int64 `db:"persona_ids" json:"persona_ids"`
    OutreachTemplateIDs []int64 `db:"outreach_template_ids" json:"outreach_template_ids"`
    EventPlanIDs        []int64 `db:"event_plan_ids" json:"event_plan_ids"`
    SlideDeckIDs        []int64 `db:"slide_deck_ids" json:"slide_deck_ids"`
    LandingPageIDs      []int64 `db:"landing_page_ids" json:"landing_page_ids"`

    Collateral []Collateral `json:"collateral,omitempty"`
}

// KindIDs returns the id list that matches the item's declared kind.
func (i *WorkPackageItem) KindIDs() []int64 {
    switch i.Kind {
    case KindBlog:
        return i.BlogIDs
    case KindPersona:
        return i.PersonaIDs
    case KindOutreachTemplate:
        return i.OutreachTemplateIDs
    case KindEventCLEPlan:
        return i.EventPlanIDs
    case KindCLEDeck:
        return i.SlideDeckIDs
    case KindLandingPage:
        return i.LandingPageIDs
    }
    return nil
}

// Collateral links an item to one artifact explicitly, kind + referenced id.
type Collateral struct {
    ID            int          `db:"id" json:"id"`
    ItemID        int          `db:"item_id" json:"item_id"`
    Kind          ArtifactKind `db:"kind" json:"kind"`
    ArtifactRefID int          `db:"artifact_ref_id" json:"artifact_ref_id"`
    CreatedAt     time.Time    `db:"created_at" json:"created_at"`
}
