package repository

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    "github.com/lib/pq"

    appErrors "github.com/unclebandit/bizdev-backend/internal/errors"
    "github.com/unclebandit/bizdev-backend/internal/model"
)

type WorkPackageRepositoryInterface interface {
    // Work package CRUD
    Create(ctx context.Context, wp *model.WorkPackage) error
    GetWithTree(ctx context.Context, id int) (*model.WorkPackage, error)
    List(ctx context.Context, offset, limit int, status string) ([]*model.WorkPackage, int, error)
    UpdateStatus(ctx context.Context, id int, status string) error
    Delete(ctx context.Context, id int) error

    // Phases and items
    CreatePhase(ctx context.Context, phase *model.WorkPackagePhase) error
    CreateItem(ctx context.Context, item *model.WorkPackageItem) error
    GetItemByID(ctx context.Context, itemID int) (*model.WorkPackageItem, error)
    UpdateItemStatus(ctx context.Context, itemID int, status string) error
    AttachArtifact(ctx context.Context, itemID int, kind model.ArtifactKind, artifactID int) error
    DetachArtifact(ctx context.Context, itemID int, kind model.ArtifactKind, artifactID int) error
}

type WorkPackageRepository struct {
    DB *sql.DB
}

const itemColumns = `id, work_package_id, phase_id, name, kind, quantity, status, estimated_hours_each,
        blog_ids, persona_ids, outreach_template_ids, event_plan_ids, slide_deck_ids, landing_page_ids`

// ====================== Work package CRUD ======================

func (r *WorkPackageRepository) Create(ctx context.Context, wp *model.WorkPackage) error {
    wp.CreatedAt = time.Now()
    if wp.Status == "" {
        wp.Status = model.WorkPackageActive
    }
    query := `
        INSERT INTO work_packages (contact_id, company_hq_id, title, description, status, started_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
    return r.DB.QueryRowContext(ctx, query,
        wp.ContactID, wp.CompanyHQID, wp.Title, wp.Description, wp.Status, wp.StartedAt, wp.CreatedAt,
    ).Scan(&wp.ID)
}

// GetWithTree loads a work package with its phases, items and collateral in
// four queries and assembles the tree in memory. Items with a null phase_id
// are legacy flat items and land on the work package directly.
func (r *WorkPackageRepository) GetWithTree(ctx context.Context, id int) (*model.WorkPackage, error) {
    var wp model.WorkPackage
    err := r.DB.QueryRowContext(ctx, `
        SELECT id, contact_id, company_hq_id, title, description, status, started_at, created_at
        FROM work_packages WHERE id=$1
    `, id).Scan(&wp.ID, &wp.ContactID, &wp.CompanyHQID, &wp.Title, &wp.Description, &wp.Status, &wp.StartedAt, &wp.CreatedAt)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewWorkPackageNotFound(id)
        }
        return nil, err
    }

    wp.Phases = []model.WorkPackagePhase{}
    wp.Items = []model.WorkPackageItem{}

    phaseRows, err := r.DB.QueryContext(ctx, `
        SELECT id, work_package_id, name, position, timeline_label, duration_weeks
        FROM work_package_phases WHERE work_package_id=$1 ORDER BY position
    `, id)
    if err != nil {
        return nil, err
    }
    defer phaseRows.Close()

    phaseIndex := map[int]int{}
    for phaseRows.Next() {
        var ph model.WorkPackagePhase
        if err := phaseRows.Scan(&ph.ID, &ph.WorkPackageID, &ph.Name, &ph.Position, &ph.TimelineLabel, &ph.DurationWeeks); err != nil {
            return nil, err
        }
        ph.Items = []model.WorkPackageItem{}
        phaseIndex[ph.ID] = len(wp.Phases)
        wp.Phases = append(wp.Phases, ph)
    }
    if err := phaseRows.Err(); err != nil {
        return nil, err
    }

    colRows, err := r.DB.QueryContext(ctx, `
        SELECT c.id, c.item_id, c.kind, c.artifact_ref_id, c.created_at
        FROM work_package_collateral c
        JOIN work_package_items i ON i.id = c.item_id
        WHERE i.work_package_id=$1
        ORDER BY c.id
    `, id)
    if err != nil {
        return nil, err
    }
    defer colRows.Close()

    colByItem := map[int][]model.Collateral{}
    for colRows.Next() {
        var c model.Collateral
        if err := colRows.Scan(&c.ID, &c.ItemID, &c.Kind, &c.ArtifactRefID, &c.CreatedAt); err != nil {
            return nil, err
        }
        colByItem[c.ItemID] = append(colByItem[c.ItemID], c)
    }
    if err := colRows.Err(); err != nil {
        return nil, err
    }

    itemRows, err := r.DB.QueryContext(ctx, fmt.Sprintf(`
        SELECT %s FROM work_package_items WHERE work_package_id=$1 ORDER BY id
    `, itemColumns), id)
    if err != nil {
        return nil, err
    }
    defer itemRows.Close()

    for itemRows.Next() {
        item, err := scanItem(itemRows)
        if err != nil {
            return nil, err
        }
        item.Collateral = colByItem[item.ID]
        if item.PhaseID != nil {
            if pi, ok := phaseIndex[*item.PhaseID]; ok {
                wp.Phases[pi].Items = append(wp.Phases[pi].Items, *item)
                continue
            }
        }
        wp.Items = append(wp.Items, *item)
    }
    if err := itemRows.Err(); err != nil {
        return nil, err
    }

    return &wp, nil
}

func (r *WorkPackageRepository) List(ctx context.Context, offset, limit int, status string) ([]*model.WorkPackage, int, error) {
    packages := []*model.WorkPackage{}
    query := `SELECT id, contact_id, company_hq_id, title, description, status, started_at, created_at FROM work_packages WHERE 1=1`
    args := []interface{}{}
    argPos := 1

    if status != "" {
        query += fmt.Sprintf(" AND status=$%d", argPos)
        args = append(args, status)
        argPos++
    }

    query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
    args = append(args, limit, offset)

    rows, err := r.DB.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()

    for rows.Next() {
        wp := &model.WorkPackage{}
        if err := rows.Scan(&wp.ID, &wp.ContactID, &wp.CompanyHQID, &wp.Title, &wp.Description, &wp.Status, &wp.StartedAt, &wp.CreatedAt); err != nil {
            return nil, 0, err
        }
        packages = append(packages, wp)
    }

    countQuery := `SELECT COUNT(*) FROM work_packages WHERE 1=1`
    argsCount := []interface{}{}
    if status != "" {
        countQuery += " AND status=$1"
        argsCount = append(argsCount, status)
    }

    var total int
    if err := r.DB.QueryRowContext(ctx, countQuery, argsCount...).Scan(&total); err != nil {
        return nil, 0, err
    }

    return packages, total, nil
}

func (r *WorkPackageRepository) UpdateStatus(ctx context.Context, id int, status string) error {
    _, err := r.DB.ExecContext(ctx, `UPDATE work_packages SET status=$1 WHERE id=$2`, status, id)
    return err
}

func (r *WorkPackageRepository) Delete(ctx context.Context, id int) error {
    res, err := r.DB.ExecContext(ctx, `DELETE FROM work_packages WHERE id=$1`, id)
    if err != nil {
        return err
    }
    affected, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if affected == 0 {
        return appErrors.NewWorkPackageNotFound(id)
    }
    return nil
}

// ====================== Phases and items ======================

func (r *WorkPackageRepository) CreatePhase(ctx context.Context, phase *model.WorkPackagePhase) error {
    query := `
        INSERT INTO work_package_phases (work_package_id, name, position, timeline_label, duration_weeks)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
    return r.DB.QueryRowContext(ctx, query,
        phase.WorkPackageID, phase.Name, phase.Position, phase.TimelineLabel, phase.DurationWeeks,
    ).Scan(&phase.ID)
}

func (r *WorkPackageRepository) CreateItem(ctx context.Context, item *model.WorkPackageItem) error {
    if item.Status == "" {
        item.Status = model.ItemTodo
    }
    query := `
        INSERT INTO work_package_items (work_package_id, phase_id, name, kind, quantity, status, estimated_hours_each)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
    return r.DB.QueryRowContext(ctx, query,
        item.WorkPackageID, item.PhaseID, item.Name, item.Kind, item.Quantity, item.Status, item.EstimatedHoursEach,
    ).Scan(&item.ID)
}

func (r *WorkPackageRepository) GetItemByID(ctx context.Context, itemID int) (*model.WorkPackageItem, error) {
    row, err := r.DB.QueryContext(ctx, fmt.Sprintf(`
        SELECT %s FROM work_package_items WHERE id=$1
    `, itemColumns), itemID)
    if err != nil {
        return nil, err
    }
    defer row.Close()

    if !row.Next() {
        if err := row.Err(); err != nil {
            return nil, err
        }
        return nil, nil
    }
    return scanItem(row)
}

func (r *WorkPackageRepository) UpdateItemStatus(ctx context.Context, itemID int, status string) error {
    _, err := r.DB.ExecContext(ctx, `UPDATE work_package_items SET status=$1 WHERE id=$2`, status, itemID)
    return err
}

// AttachArtifact appends the artifact id to the item's id list for the given
// kind. Idempotent: attaching an already-attached id is a no-op. The column
// is coalesced because a NULL array makes `= ANY` evaluate to NULL and the
// update would silently skip the row.
func (r *WorkPackageRepository) AttachArtifact(ctx context.Context, itemID int, kind model.ArtifactKind, artifactID int) error {
    col, err := kindIDColumn(kind)
    if err != nil {
        return err
    }
    _, err = r.DB.ExecContext(ctx, attachQuery(col), artifactID, itemID)
    return err
}

func attachQuery(col string) string {
    return fmt.Sprintf(`
        UPDATE work_package_items
        SET %s = array_append(%s, $1)
        WHERE id=$2 AND $1 <> ALL(COALESCE(%s, '{}'))
    `, col, col, col)
}

func (r *WorkPackageRepository) DetachArtifact(ctx context.Context, itemID int, kind model.ArtifactKind, artifactID int) error {
    col, err := kindIDColumn(kind)
    if err != nil {
        return err
    }
    query := fmt.Sprintf(`UPDATE work_package_items SET %s = array_remove(%s, $1) WHERE id=$2`, col, col)
    _, err = r.DB.ExecContext(ctx, query, artifactID, itemID)
    return err
}

func kindIDColumn(kind model.ArtifactKind) (string, error) {
    switch kind {
    case model.KindBlog:
        return "blog_ids", nil
    case model.KindPersona:
        return "persona_ids", nil
    case model.KindOutreachTemplate:
        return "outreach_template_ids", nil
    case model.KindEventCLEPlan:
        return "event_plan_ids", nil
    case model.KindCLEDeck:
        return "slide_deck_ids", nil
    case model.KindLandingPage:
        return "landing_page_ids", nil
    }
    return "", fmt.Errorf("unknown artifact kind: %s", kind)
}

func scanItem(rows *sql.Rows) (*model.WorkPackageItem, error) {
    var item model.WorkPackageItem
    err := rows.Scan(
        &item.ID, &item.WorkPackageID, &item.PhaseID, &item.Name, &item.Kind,
        &item.Quantity, &item.Status, &item.EstimatedHoursEach,
        pq.Array(&item.BlogIDs), pq.Array(&item.PersonaIDs), pq.Array(&item.OutreachTemplateIDs),
        pq.Array(&item.EventPlanIDs), pq.Array(&item.SlideDeckIDs), pq.Array(&item.LandingPageIDs),
    )
    if err != nil {
        return nil, err
    }
    return &item, nil
}

var _ WorkPackageRepositoryInterface = (*WorkPackageRepository)(nil)
