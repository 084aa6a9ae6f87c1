// internal/service/workpackage_service.go
package service

import (
    "context"
    "fmt"
    "log"
    "time"

    "github.com/unclebandit/bizdev-backend/internal/hydration"
    "github.com/unclebandit/bizdev-backend/internal/model"
    "github.com/unclebandit/bizdev-backend/internal/repository"
)

type WorkPackageService struct {
    WPRepo       repository.WorkPackageRepositoryInterface
    ArtifactRepo repository.ArtifactRepositoryInterface
    Hydrator     *hydration.Hydrator
}

func NewWorkPackageService(wpRepo repository.WorkPackageRepositoryInterface, artifactRepo repository.ArtifactRepositoryInterface) *WorkPackageService {
    return &WorkPackageService{
        WPRepo:       wpRepo,
        ArtifactRepo: artifactRepo,
        Hydrator:     hydration.NewHydrator(artifactRepo),
    }
}

// GetHydrated loads the stored tree and runs the hydration engine over it.
// A missing work package surfaces as the repository's not-found error;
// everything else comes back as a best-effort hydrated object.
func (s *WorkPackageService) GetHydrated(ctx context.Context, id int, opts hydration.Options) (*hydration.HydratedWorkPackage, error) {
    wp, err := s.WPRepo.GetWithTree(ctx, id)
    if err != nil {
        return nil, err
    }
    return s.Hydrator.Hydrate(ctx, wp, opts), nil
}

func (s *WorkPackageService) Create(ctx context.Context, wp *model.WorkPackage) error {
    return s.WPRepo.Create(ctx, wp)
}

// CreateFromBlueprint builds a work package, its phases and its items from
// an engagement blueprint.
func (s *WorkPackageService) CreateFromBlueprint(ctx context.Context, bp Blueprint, contactID int, companyHQID *int, startedAt *time.Time) (*model.WorkPackage, error) {
    wp := &model.WorkPackage{
        ContactID:   contactID,
        CompanyHQID: companyHQID,
        Title:       bp.Title,
        Description: bp.Description,
        StartedAt:   startedAt,
    }
    if err := s.WPRepo.Create(ctx, wp); err != nil {
        return nil, err
    }

    for pos, bpPhase := range bp.Phases {
        phase := &model.WorkPackagePhase{
            WorkPackageID: wp.ID,
            Name:          bpPhase.Name,
            Position:      pos + 1,
            TimelineLabel: bpPhase.TimelineLabel,
            DurationWeeks: bpPhase.DurationWeeks,
        }
        if err := s.WPRepo.CreatePhase(ctx, phase); err != nil {
            return nil, err
        }
        for _, bpItem := range bpPhase.Items {
            item := &model.WorkPackageItem{
                WorkPackageID:      wp.ID,
                PhaseID:            &phase.ID,
                Name:               bpItem.Name,
                Kind:               bpItem.Kind,
                Quantity:           bpItem.Quantity,
                EstimatedHoursEach: bpItem.EstimatedHoursEach,
            }
            if err := s.WPRepo.CreateItem(ctx, item); err != nil {
                return nil, err
            }
            phase.Items = append(phase.Items, *item)
        }
        wp.Phases = append(wp.Phases, *phase)
    }

    return wp, nil
}

// PreviewTimeline computes a timeline for a transient phase list, nothing is
// persisted.
func (s *WorkPackageService) PreviewTimeline(start time.Time, phases []model.WorkPackagePhase) []hydration.PhaseSpan {
    return hydration.ComputeTimeline(start, phases)
}

func (s *WorkPackageService) AddPhase(ctx context.Context, phase *model.WorkPackagePhase) error {
    return s.WPRepo.CreatePhase(ctx, phase)
}

func (s *WorkPackageService) AddItem(ctx context.Context, item *model.WorkPackageItem) error {
    if !item.Kind.Valid() {
        return fmt.Errorf("invalid artifact kind: %s", item.Kind)
    }
    return s.WPRepo.CreateItem(ctx, item)
}

// AttachArtifact records interest in an artifact by id. Attaching past the
// item's quantity is tolerated; over-delivery is reported, not rejected.
func (s *WorkPackageService) AttachArtifact(ctx context.Context, itemID int, kind model.ArtifactKind, artifactID int) error {
    item, err := s.WPRepo.GetItemByID(ctx, itemID)
    if err != nil {
        return err
    }
    if item == nil {
        return fmt.Errorf("item %d not found", itemID)
    }
    if item.Kind != kind {
        return fmt.Errorf("item %d holds %s artifacts, not %s", itemID, item.Kind, kind)
    }

    if _, err := s.ArtifactRepo.GetByID(ctx, kind, artifactID); err != nil {
        return err
    }

    if len(item.KindIDs()) >= item.Quantity && item.Quantity > 0 {
        log.Printf("⚠️ item %d already has %d/%d attachments, attaching anyway\n", itemID, len(item.KindIDs()), item.Quantity)
    }

    return s.WPRepo.AttachArtifact(ctx, itemID, kind, artifactID)
}

func (s *WorkPackageService) DetachArtifact(ctx context.Context, itemID int, kind model.ArtifactKind, artifactID int) error {
    return s.WPRepo.DetachArtifact(ctx, itemID, kind, artifactID)
}

// UpdateItemStatus is the explicit mutation path for the stored status
// column. Hydration derives status on read and never writes it.
func (s *WorkPackageService) UpdateItemStatus(ctx context.Context, itemID int, status string) error {
    switch status {
    case model.ItemTodo, model.ItemInProgress, model.ItemCompleted:
    default:
        return fmt.Errorf("invalid item status: %s", status)
    }
    return s.WPRepo.UpdateItemStatus(ctx, itemID, status)
}

// ListWorkPackages fetches work packages with pagination
func (s *WorkPackageService) ListWorkPackages(ctx context.Context, page, pageSize int, status string) ([]model.WorkPackage, map[string]int, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    if pageSize > 100 {
        pageSize = 100
    }
    offset := (page - 1) * pageSize

    ptrs, total, err := s.WPRepo.List(ctx, offset, pageSize, status)
    if err != nil {
        return nil, nil, err
    }

    packages := make([]model.WorkPackage, len(ptrs))
    for i, wp := range ptrs {
        packages[i] = *wp
    }

    totalPages := (total + pageSize - 1) / pageSize
    pagination := map[string]int{
        "page":        page,
        "page_size":   pageSize,
        "total_count": total,
        "total_pages": totalPages,
    }

    return packages, pagination, nil
}

func (s *WorkPackageService) Delete(ctx context.Context, id int) error {
    return s.WPRepo.Delete(ctx, id)
}
