// internal/controller/workpackage_controller.go
package controller

import (
    "encoding/json"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-playground/validator/v10"

    appErrors "github.com/unclebandit/bizdev-backend/internal/errors"
    "github.com/unclebandit/bizdev-backend/internal/hydration"
    "github.com/unclebandit/bizdev-backend/internal/model"
    "github.com/unclebandit/bizdev-backend/internal/service"
)

var validate = validator.New()

type WorkPackageController struct {
    WorkPackageService *service.WorkPackageService
    ImportService      *service.ImportService
    Templates          *service.TemplateService
}

func (c *WorkPackageController) CreateWorkPackage(w http.ResponseWriter, r *http.Request) {
    var body struct {
        ContactID   int     `json:"contact_id" validate:"required"`
        CompanyHQID *int    `json:"company_hq_id"`
        Title       string  `json:"title" validate:"required"`
        Description string  `json:"description"`
        StartedAt   *string `json:"started_at"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    wp := &model.WorkPackage{
        ContactID:   body.ContactID,
        CompanyHQID: body.CompanyHQID,
        Title:       body.Title,
        Description: body.Description,
    }
    if body.StartedAt != nil {
        t, err := time.Parse(time.RFC3339, *body.StartedAt)
        if err != nil {
            http.Error(w, "invalid started_at", http.StatusBadRequest)
            return
        }
        wp.StartedAt = &t
    }

    if err := c.WorkPackageService.Create(r.Context(), wp); err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(wp)
}

func (c *WorkPackageController) CreateFromTemplate(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Blueprint   string  `json:"blueprint" validate:"required"`
        ContactID   int     `json:"contact_id" validate:"required"`
        CompanyHQID *int    `json:"company_hq_id"`
        StartedAt   *string `json:"started_at"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    bp, ok := c.Templates.Get(body.Blueprint)
    if !ok {
        http.Error(w, "unknown blueprint: "+body.Blueprint, http.StatusBadRequest)
        return
    }

    var startedAt *time.Time
    if body.StartedAt != nil {
        t, err := time.Parse(time.RFC3339, *body.StartedAt)
        if err != nil {
            http.Error(w, "invalid started_at", http.StatusBadRequest)
            return
        }
        startedAt = &t
    }

    wp, err := c.WorkPackageService.CreateFromBlueprint(r.Context(), bp, body.ContactID, body.CompanyHQID, startedAt)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(wp)
}

func (c *WorkPackageController) ListWorkPackages(w http.ResponseWriter, r *http.Request) {
    page, _ := strconv.Atoi(r.URL.Query().Get("page"))
    pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
    status := r.URL.Query().Get("status")

    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }

    packages, pagination, err := c.WorkPackageService.ListWorkPackages(r.Context(), page, pageSize, status)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{
        "data":       packages,
        "pagination": pagination,
    })
}

// GetWorkPackage returns the hydrated projection. Query params: scope
// (owner|client), timeline (true to annotate), timeline_start (RFC3339
// override for the package's own start date).
func (c *WorkPackageController) GetWorkPackage(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid work package id", http.StatusBadRequest)
        return
    }

    opts := hydration.Options{Scope: hydration.ScopeOwner}
    if r.URL.Query().Get("scope") == "client" {
        opts.Scope = hydration.ScopeClient
    }
    if r.URL.Query().Get("timeline") == "true" {
        opts.IncludeTimeline = true
    }
    if raw := r.URL.Query().Get("timeline_start"); raw != "" {
        t, err := time.Parse(time.RFC3339, raw)
        if err != nil {
            http.Error(w, "invalid timeline_start", http.StatusBadRequest)
            return
        }
        opts.TimelineStart = &t
    }

    hydrated, err := c.WorkPackageService.GetHydrated(r.Context(), id, opts)
    if err != nil {
        var notFound *appErrors.ErrWorkPackageNotFound
        if errors.As(err, &notFound) {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(hydrated)
}

func (c *WorkPackageController) DeleteWorkPackage(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid work package id", http.StatusBadRequest)
        return
    }

    if err := c.WorkPackageService.Delete(r.Context(), id); err != nil {
        var notFound *appErrors.ErrWorkPackageNotFound
        if errors.As(err, &notFound) {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.WriteHeader(http.StatusNoContent)
}

func (c *WorkPackageController) AddPhase(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    wpID, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid work package id", http.StatusBadRequest)
        return
    }

    var body struct {
        Name          string  `json:"name" validate:"required"`
        Position      int     `json:"position" validate:"required"`
        TimelineLabel string  `json:"timeline_label"`
        DurationWeeks float64 `json:"duration_weeks" validate:"gte=0"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    phase := &model.WorkPackagePhase{
        WorkPackageID: wpID,
        Name:          body.Name,
        Position:      body.Position,
        TimelineLabel: body.TimelineLabel,
        DurationWeeks: body.DurationWeeks,
    }
    if err := c.WorkPackageService.AddPhase(r.Context(), phase); err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(phase)
}

func (c *WorkPackageController) AddItem(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    wpID, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid work package id", http.StatusBadRequest)
        return
    }

    var body struct {
        PhaseID            *int     `json:"phase_id"`
        Name               string   `json:"name" validate:"required"`
        Kind               string   `json:"kind" validate:"required"`
        Quantity           int      `json:"quantity" validate:"gte=0"`
        EstimatedHoursEach *float64 `json:"estimated_hours_each"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    item := &model.WorkPackageItem{
        WorkPackageID:      wpID,
        PhaseID:            body.PhaseID,
        Name:               body.Name,
        Kind:               model.ArtifactKind(body.Kind),
        Quantity:           body.Quantity,
        EstimatedHoursEach: body.EstimatedHoursEach,
    }
    if err := c.WorkPackageService.AddItem(r.Context(), item); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(item)
}

func (c *WorkPackageController) AttachArtifact(w http.ResponseWriter, r *http.Request) {
    itemIDStr := chi.URLParam(r, "itemID")
    itemID, err := strconv.Atoi(itemIDStr)
    if err != nil {
        http.Error(w, "invalid item id", http.StatusBadRequest)
        return
    }

    var body struct {
        Kind       string `json:"kind" validate:"required"`
        ArtifactID int    `json:"artifact_id" validate:"required"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    if err := c.WorkPackageService.AttachArtifact(r.Context(), itemID, model.ArtifactKind(body.Kind), body.ArtifactID); err != nil {
        var notFound *appErrors.ErrArtifactNotFound
        if errors.As(err, &notFound) {
            http.Error(w, err.Error(), http.StatusNotFound)
            return
        }
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    w.WriteHeader(http.StatusNoContent)
}

func (c *WorkPackageController) DetachArtifact(w http.ResponseWriter, r *http.Request) {
    itemIDStr := chi.URLParam(r, "itemID")
    itemID, err := strconv.Atoi(itemIDStr)
    if err != nil {
        http.Error(w, "invalid item id", http.StatusBadRequest)
        return
    }

    var body struct {
        Kind       string `json:"kind" validate:"required"`
        ArtifactID int    `json:"artifact_id" validate:"required"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    if err := c.WorkPackageService.DetachArtifact(r.Context(), itemID, model.ArtifactKind(body.Kind), body.ArtifactID); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    w.WriteHeader(http.StatusNoContent)
}

func (c *WorkPackageController) UpdateItemStatus(w http.ResponseWriter, r *http.Request) {
    itemIDStr := chi.URLParam(r, "itemID")
    itemID, err := strconv.Atoi(itemIDStr)
    if err != nil {
        http.Error(w, "invalid item id", http.StatusBadRequest)
        return
    }

    var body struct {
        Status string `json:"status" validate:"required"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }

    if err := c.WorkPackageService.UpdateItemStatus(r.Context(), itemID, body.Status); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    w.WriteHeader(http.StatusNoContent)
}

// TimelinePreview computes phase windows for an ad-hoc phase list without
// touching storage.
func (c *WorkPackageController) TimelinePreview(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Start  string `json:"start" validate:"required"`
        Phases []struct {
            Name          string  `json:"name"`
            DurationWeeks float64 `json:"duration_weeks"`
        } `json:"phases"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    start, err := time.Parse(time.RFC3339, body.Start)
    if err != nil {
        http.Error(w, "invalid start", http.StatusBadRequest)
        return
    }

    phases := make([]model.WorkPackagePhase, len(body.Phases))
    for i, p := range body.Phases {
        phases[i] = model.WorkPackagePhase{Name: p.Name, DurationWeeks: p.DurationWeeks}
    }

    spans := c.WorkPackageService.PreviewTimeline(start, phases)

    type previewPhase struct {
        Name  string    `json:"name"`
        Start time.Time `json:"start"`
        End   time.Time `json:"end"`
    }
    preview := make([]previewPhase, len(spans))
    for i, span := range spans {
        preview[i] = previewPhase{Name: phases[i].Name, Start: span.Start, End: span.End}
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{"phases": preview})
}

func (c *WorkPackageController) ImportEngagements(w http.ResponseWriter, r *http.Request) {
    var body struct {
        Rows []service.EngagementRow `json:"rows" validate:"required,min=1"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    result := c.ImportService.ImportEngagements(r.Context(), body.Rows)

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(result)
}

func (c *WorkPackageController) ListTemplates(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{"data": c.Templates.List()})
}
