package repository

import (
    "context"
    "database/sql"
    "fmt"

    "github.com/lib/pq"

    appErrors "github.com/unclebandit/bizdev-backend/internal/errors"
    "github.com/unclebandit/bizdev-backend/internal/model"
)

// ArtifactRepositoryInterface is the read/lifecycle surface over the six
// builder collections. One kind-dispatching lookup, not six code paths.
type ArtifactRepositoryInterface interface {
    FetchByIDs(ctx context.Context, kind model.ArtifactKind, ids []int) ([]model.Artifact, error)
    ListByKind(ctx context.Context, kind model.ArtifactKind, companyHQID int) ([]model.Artifact, error)
    GetByID(ctx context.Context, kind model.ArtifactKind, id int) (model.Artifact, error)
    SetPublished(ctx context.Context, kind model.ArtifactKind, id int, published bool) error
    Create(ctx context.Context, a model.Artifact) error
}

type ArtifactRepository struct {
    DB *sql.DB
}

// kindQuery holds the per-collection SQL shape. Every collection shares the
// published/published_at lifecycle columns; only the content columns differ.
type kindQuery struct {
    table   string
    columns string
    scan    func(rows *sql.Rows) (model.Artifact, error)
}

var kindQueries = map[model.ArtifactKind]kindQuery{
    model.KindBlog: {
        table:   "blogs",
        columns: "id, company_hq_id, title, body, keywords, published, published_at, created_at",
        scan: func(rows *sql.Rows) (model.Artifact, error) {
            var a model.Blog
            err := rows.Scan(&a.ID, &a.CompanyHQID, &a.Title, &a.Body, &a.Keywords, &a.Published, &a.PublishedAt, &a.CreatedAt)
            return &a, err
        },
    },
    model.KindPersona: {
        table:   "personas",
        columns: "id, company_hq_id, name, role, pain_points, published, published_at, created_at",
        scan: func(rows *sql.Rows) (model.Artifact, error) {
            var a model.Persona
            err := rows.Scan(&a.ID, &a.CompanyHQID, &a.Name, &a.Role, &a.PainPoints, &a.Published, &a.PublishedAt, &a.CreatedAt)
            return &a, err
        },
    },
    model.KindOutreachTemplate: {
        table:   "outreach_templates",
        columns: "id, company_hq_id, name, subject, body, published, published_at, created_at",
        scan: func(rows *sql.Rows) (model.Artifact, error) {
            var a model.OutreachTemplate
            err := rows.Scan(&a.ID, &a.CompanyHQID, &a.Name, &a.Subject, &a.Body, &a.Published, &a.PublishedAt, &a.CreatedAt)
            return &a, err
        },
    },
    model.KindEventCLEPlan: {
        table:   "event_plans",
        columns: "id, company_hq_id, title, venue, agenda, published, published_at, created_at",
        scan: func(rows *sql.Rows) (model.Artifact, error) {
            var a model.EventPlan
            err := rows.Scan(&a.ID, &a.CompanyHQID, &a.Title, &a.Venue, &a.Agenda, &a.Published, &a.PublishedAt, &a.CreatedAt)
            return &a, err
        },
    },
    model.KindCLEDeck: {
        table:   "slide_decks",
        columns: "id, company_hq_id, title, topic, slide_count, published, published_at, created_at",
        scan: func(rows *sql.Rows) (model.Artifact, error) {
            var a model.SlideDeck
            err := rows.Scan(&a.ID, &a.CompanyHQID, &a.Title, &a.Topic, &a.SlideCount, &a.Published, &a.PublishedAt, &a.CreatedAt)
            return &a, err
        },
    },
    model.KindLandingPage: {
        table:   "landing_pages",
        columns: "id, company_hq_id, headline, slug, hero_copy, published, published_at, created_at",
        scan: func(rows *sql.Rows) (model.Artifact, error) {
            var a model.LandingPage
            err := rows.Scan(&a.ID, &a.CompanyHQID, &a.Headline, &a.Slug, &a.HeroCopy, &a.Published, &a.PublishedAt, &a.CreatedAt)
            return &a, err
        },
    },
}

// FetchByIDs reads artifacts by id from one collection. Ids that do not
// exist are simply absent from the result.
func (r *ArtifactRepository) FetchByIDs(ctx context.Context, kind model.ArtifactKind, ids []int) ([]model.Artifact, error) {
    q, ok := kindQueries[kind]
    if !ok {
        return nil, fmt.Errorf("unknown artifact kind: %s", kind)
    }
    if len(ids) == 0 {
        return []model.Artifact{}, nil
    }

    query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ANY($1)", q.columns, q.table)
    rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    artifacts := []model.Artifact{}
    for rows.Next() {
        a, err := q.scan(rows)
        if err != nil {
            return nil, err
        }
        artifacts = append(artifacts, a)
    }
    return artifacts, rows.Err()
}

func (r *ArtifactRepository) ListByKind(ctx context.Context, kind model.ArtifactKind, companyHQID int) ([]model.Artifact, error) {
    q, ok := kindQueries[kind]
    if !ok {
        return nil, fmt.Errorf("unknown artifact kind: %s", kind)
    }

    query := fmt.Sprintf("SELECT %s FROM %s WHERE company_hq_id=$1 ORDER BY id DESC", q.columns, q.table)
    rows, err := r.DB.QueryContext(ctx, query, companyHQID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    artifacts := []model.Artifact{}
    for rows.Next() {
        a, err := q.scan(rows)
        if err != nil {
            return nil, err
        }
        artifacts = append(artifacts, a)
    }
    return artifacts, rows.Err()
}

func (r *ArtifactRepository) GetByID(ctx context.Context, kind model.ArtifactKind, id int) (model.Artifact, error) {
    artifacts, err := r.FetchByIDs(ctx, kind, []int{id})
    if err != nil {
        return nil, err
    }
    if len(artifacts) == 0 {
        return nil, appErrors.NewArtifactNotFound(string(kind), id)
    }
    return artifacts[0], nil
}

// SetPublished flips the publish flag; published_at is set on publish and
// cleared on unpublish.
func (r *ArtifactRepository) SetPublished(ctx context.Context, kind model.ArtifactKind, id int, published bool) error {
    q, ok := kindQueries[kind]
    if !ok {
        return fmt.Errorf("unknown artifact kind: %s", kind)
    }

    query := fmt.Sprintf(
        "UPDATE %s SET published=$1, published_at=CASE WHEN $1 THEN NOW() ELSE NULL END WHERE id=$2",
        q.table,
    )
    res, err := r.DB.ExecContext(ctx, query, published, id)
    if err != nil {
        return err
    }
    affected, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if affected == 0 {
        return appErrors.NewArtifactNotFound(string(kind), id)
    }
    return nil
}

// Create inserts a new artifact into its collection and fills in the id.
// Used by builder endpoints and the seeder.
func (r *ArtifactRepository) Create(ctx context.Context, artifact model.Artifact) error {
    switch a := artifact.(type) {
    case *model.Blog:
        return r.DB.QueryRowContext(ctx,
            `INSERT INTO blogs (company_hq_id, title, body, keywords, published, created_at)
             VALUES ($1, $2, $3, $4, false, NOW()) RETURNING id, created_at`,
            a.CompanyHQID, a.Title, a.Body, a.Keywords,
        ).Scan(&a.ID, &a.CreatedAt)
    case *model.Persona:
        return r.DB.QueryRowContext(ctx,
            `INSERT INTO personas (company_hq_id, name, role, pain_points, published, created_at)
             VALUES ($1, $2, $3, $4, false, NOW()) RETURNING id, created_at`,
            a.CompanyHQID, a.Name, a.Role, a.PainPoints,
        ).Scan(&a.ID, &a.CreatedAt)
    case *model.OutreachTemplate:
        return r.DB.QueryRowContext(ctx,
            `INSERT INTO outreach_templates (company_hq_id, name, subject, body, published, created_at)
             VALUES ($1, $2, $3, $4, false, NOW()) RETURNING id, created_at`,
            a.CompanyHQID, a.Name, a.Subject, a.Body,
        ).Scan(&a.ID, &a.CreatedAt)
    case *model.EventPlan:
        return r.DB.QueryRowContext(ctx,
            `INSERT INTO event_plans (company_hq_id, title, venue, agenda, published, created_at)
             VALUES ($1, $2, $3, $4, false, NOW()) RETURNING id, created_at`,
            a.CompanyHQID, a.Title, a.Venue, a.Agenda,
        ).Scan(&a.ID, &a.CreatedAt)
    case *model.SlideDeck:
        return r.DB.QueryRowContext(ctx,
            `INSERT INTO slide_decks (company_hq_id, title, topic, slide_count, published, created_at)
             VALUES ($1, $2, $3, $4, false, NOW()) RETURNING id, created_at`,
            a.CompanyHQID, a.Title, a.Topic, a.SlideCount,
        ).Scan(&a.ID, &a.CreatedAt)
    case *model.LandingPage:
        return r.DB.QueryRowContext(ctx,
            `INSERT INTO landing_pages (company_hq_id, headline, slug, hero_copy, published, created_at)
             VALUES ($1, $2, $3, $4, false, NOW()) RETURNING id, created_at`,
            a.CompanyHQID, a.Headline, a.Slug, a.HeroCopy,
        ).Scan(&a.ID, &a.CreatedAt)
    }
    return fmt.Errorf("unsupported artifact type %T", artifact)
}

var _ ArtifactRepositoryInterface = (*ArtifactRepository)(nil)
