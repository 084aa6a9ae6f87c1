package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/unclebandit/bizdev-backend/internal/model"
	"github.com/unclebandit/bizdev-backend/internal/service"
)

// Mock work package repository backed by a couple of canned items
type MockWPRepo struct {
	attached []string
	statuses map[int]string
}

func (m *MockWPRepo) Create(ctx context.Context, wp *model.WorkPackage) error {
	wp.ID = 999
	wp.CreatedAt = time.Now()
	return nil
}

func (m *MockWPRepo) GetWithTree(ctx context.Context, id int) (*model.WorkPackage, error) {
	return &model.WorkPackage{ID: id, Title: "Mock"}, nil
}

func (m *MockWPRepo) List(ctx context.Context, offset, limit int, status string) ([]*model.WorkPackage, int, error) {
	all := []*model.WorkPackage{
		{ID: 5, Title: "W5"},
		{ID: 4, Title: "W4"},
		{ID: 3, Title: "W3"},
		{ID: 2, Title: "W2"},
		{ID: 1, Title: "W1"},
	}

	start := offset
	end := offset + limit

	if start >= len(all) {
		return []*model.WorkPackage{}, len(all), nil
	}
	if end > len(all) {
		end = len(all)
	}

	return all[start:end], len(all), nil
}

func (m *MockWPRepo) UpdateStatus(ctx context.Context, id int, status string) error { return nil }
func (m *MockWPRepo) Delete(ctx context.Context, id int) error                      { return nil }

func (m *MockWPRepo) CreatePhase(ctx context.Context, phase *model.WorkPackagePhase) error {
	phase.ID = 1
	return nil
}

func (m *MockWPRepo) CreateItem(ctx context.Context, item *model.WorkPackageItem) error {
	item.ID = 1
	return nil
}

func (m *MockWPRepo) GetItemByID(ctx context.Context, itemID int) (*model.WorkPackageItem, error) {
	switch itemID {
	case 1:
		return &model.WorkPackageItem{ID: 1, Kind: model.KindBlog, Quantity: 2, BlogIDs: []int64{10}}, nil
	case 2:
		return &model.WorkPackageItem{ID: 2, Kind: model.KindBlog, Quantity: 1, BlogIDs: []int64{10}}, nil
	}
	return nil, nil
}

func (m *MockWPRepo) UpdateItemStatus(ctx context.Context, itemID int, status string) error {
	if m.statuses == nil {
		m.statuses = map[int]string{}
	}
	m.statuses[itemID] = status
	return nil
}

func (m *MockWPRepo) AttachArtifact(ctx context.Context, itemID int, kind model.ArtifactKind, artifactID int) error {
	m.attached = append(m.attached, fmt.Sprintf("%d:%s:%d", itemID, kind, artifactID))
	return nil
}

func (m *MockWPRepo) DetachArtifact(ctx context.Context, itemID int, kind model.ArtifactKind, artifactID int) error {
	return nil
}

// Mock artifact repository that only knows blog 10
type MockArtifactRepo struct{}

func (m *MockArtifactRepo) FetchByIDs(ctx context.Context, kind model.ArtifactKind, ids []int) ([]model.Artifact, error) {
	return []model.Artifact{}, nil
}

func (m *MockArtifactRepo) ListByKind(ctx context.Context, kind model.ArtifactKind, companyHQID int) ([]model.Artifact, error) {
	return []model.Artifact{}, nil
}

func (m *MockArtifactRepo) GetByID(ctx context.Context, kind model.ArtifactKind, id int) (model.Artifact, error) {
	if kind == model.KindBlog && id == 10 {
		return &model.Blog{ID: 10, Title: "Known blog"}, nil
	}
	return nil, errors.New("artifact not found")
}

func (m *MockArtifactRepo) SetPublished(ctx context.Context, kind model.ArtifactKind, id int, published bool) error {
	return nil
}

func (m *MockArtifactRepo) Create(ctx context.Context, a model.Artifact) error { return nil }

func TestAttachArtifactKindMismatch(t *testing.T) {
	repo := &MockWPRepo{}
	svc := service.NewWorkPackageService(repo, &MockArtifactRepo{})

	err := svc.AttachArtifact(context.Background(), 1, model.KindPersona, 10)
	if err == nil {
		t.Fatal("expected kind mismatch error, got nil")
	}
	if len(repo.attached) != 0 {
		t.Errorf("nothing should have been attached, got %v", repo.attached)
	}
}

func TestAttachArtifactUnknownArtifact(t *testing.T) {
	repo := &MockWPRepo{}
	svc := service.NewWorkPackageService(repo, &MockArtifactRepo{})

	err := svc.AttachArtifact(context.Background(), 1, model.KindBlog, 404)
	if err == nil {
		t.Fatal("expected not-found error, got nil")
	}
	if len(repo.attached) != 0 {
		t.Errorf("nothing should have been attached, got %v", repo.attached)
	}
}

func TestAttachArtifactHappyPath(t *testing.T) {
	repo := &MockWPRepo{}
	svc := service.NewWorkPackageService(repo, &MockArtifactRepo{})

	if err := svc.AttachArtifact(context.Background(), 1, model.KindBlog, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.attached) != 1 || repo.attached[0] != "1:blog:10" {
		t.Errorf("expected one attach call, got %v", repo.attached)
	}
}

func TestAttachArtifactOverQuantityAllowed(t *testing.T) {
	// Item 2 already holds its full quantity; attaching more is logged but
	// not rejected.
	repo := &MockWPRepo{}
	svc := service.NewWorkPackageService(repo, &MockArtifactRepo{})

	if err := svc.AttachArtifact(context.Background(), 2, model.KindBlog, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.attached) != 1 {
		t.Errorf("expected attach to go through, got %v", repo.attached)
	}
}

func TestUpdateItemStatusValidation(t *testing.T) {
	repo := &MockWPRepo{}
	svc := service.NewWorkPackageService(repo, &MockArtifactRepo{})

	if err := svc.UpdateItemStatus(context.Background(), 1, "done"); err == nil {
		t.Error("expected invalid status error, got nil")
	}
	if len(repo.statuses) != 0 {
		t.Errorf("invalid status must not be persisted, got %v", repo.statuses)
	}

	if err := svc.UpdateItemStatus(context.Background(), 1, model.ItemInProgress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.statuses[1] != model.ItemInProgress {
		t.Errorf("expected status %q, got %q", model.ItemInProgress, repo.statuses[1])
	}
}

func TestAddItemRejectsUnknownKind(t *testing.T) {
	svc := service.NewWorkPackageService(&MockWPRepo{}, &MockArtifactRepo{})

	item := &model.WorkPackageItem{Kind: "whitepaper", Quantity: 1}
	if err := svc.AddItem(context.Background(), item); err == nil {
		t.Error("expected invalid kind error, got nil")
	}
}

func TestWorkPackagePagination(t *testing.T) {
	svc := service.NewWorkPackageService(&MockWPRepo{}, &MockArtifactRepo{})

	pageSize := 2

	page1, pagination1, _ := svc.ListWorkPackages(context.Background(), 1, pageSize, "")
	page2, _, _ := svc.ListWorkPackages(context.Background(), 2, pageSize, "")

	expectedTotal := 5
	if pagination1["total_count"] != expectedTotal {
		t.Errorf("expected total_count %d, got %d", expectedTotal, pagination1["total_count"])
	}

	if len(page1) != 2 || len(page2) != 2 {
		t.Fatalf("expected full pages, got %d and %d", len(page1), len(page2))
	}

	// Check descending order
	if page1[0].ID <= page1[1].ID {
		t.Errorf("expected descending order in page 1")
	}
	if page2[0].ID <= page2[1].ID {
		t.Errorf("expected descending order in page 2")
	}

	// Check no duplicates between pages
	if page1[1].ID == page2[0].ID {
		t.Errorf("duplicate entry between pages: %v", page1[1].ID)
	}

	page3, pagination3, _ := svc.ListWorkPackages(context.Background(), 3, pageSize, "")
	if len(page3) != 1 {
		t.Errorf("expected last page to have 1 item, got %d", len(page3))
	}
	if pagination3["total_count"] != expectedTotal {
		t.Errorf("expected total_count %d, got %d", expectedTotal, pagination3["total_count"])
	}
}

func TestCreateFromBlueprintBuildsTree(t *testing.T) {
	svc := service.NewWorkPackageService(&MockWPRepo{}, &MockArtifactRepo{})

	bp := service.Blueprint{
		Name:  "content-launch",
		Title: "Content Launch",
		Phases: []service.BlueprintPhase{
			{Name: "Foundation", DurationWeeks: 1, Items: []service.BlueprintItem{
				{Name: "Personas", Kind: model.KindPersona, Quantity: 2},
			}},
			{Name: "Production", DurationWeeks: 2, Items: []service.BlueprintItem{
				{Name: "Blogs", Kind: model.KindBlog, Quantity: 3},
			}},
		},
	}

	started := time.Now()
	wp, err := svc.CreateFromBlueprint(context.Background(), bp, 7, nil, &started)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(wp.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(wp.Phases))
	}
	if wp.Phases[0].Position != 1 || wp.Phases[1].Position != 2 {
		t.Errorf("expected positions 1 and 2, got %d and %d", wp.Phases[0].Position, wp.Phases[1].Position)
	}
	if len(wp.Phases[1].Items) != 1 || wp.Phases[1].Items[0].Kind != model.KindBlog {
		t.Errorf("expected one blog item in phase 2, got %+v", wp.Phases[1].Items)
	}
	if wp.ContactID != 7 {
		t.Errorf("expected contact 7, got %d", wp.ContactID)
	}
}
