package service_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/unclebandit/bizdev-backend/internal/model"
	"github.com/unclebandit/bizdev-backend/internal/service"
)

func writeBlueprintFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blueprints.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTemplateServiceParsesBlueprints(t *testing.T) {
	path := writeBlueprintFile(t, `
blueprints:
  - name: content-launch
    title: Content Launch
    description: Baseline content engagement
    phases:
      - name: Foundation
        timeline_label: Weeks 1-2
        duration_weeks: 2
        items:
          - name: Buyer personas
            kind: persona
            quantity: 2
            estimated_hours_each: 4
      - name: Production
        duration_weeks: 4
        items:
          - name: Blog posts
            kind: blog
            quantity: 3
  - name: cle-event
    title: CLE Event
    phases:
      - name: Planning
        duration_weeks: 3
        items:
          - name: Event plan
            kind: event_cle_plan
            quantity: 1
`)

	svc, err := service.NewTemplateService(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bp, ok := svc.Get("content-launch")
	if !ok {
		t.Fatal("content-launch blueprint missing")
	}
	if len(bp.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(bp.Phases))
	}
	if bp.Phases[0].Items[0].Kind != model.KindPersona {
		t.Errorf("expected persona kind, got %s", bp.Phases[0].Items[0].Kind)
	}
	if bp.Phases[0].Items[0].EstimatedHoursEach == nil || *bp.Phases[0].Items[0].EstimatedHoursEach != 4 {
		t.Errorf("expected 4 estimated hours, got %v", bp.Phases[0].Items[0].EstimatedHoursEach)
	}
	if bp.Phases[1].DurationWeeks != 4 {
		t.Errorf("expected duration 4 weeks, got %v", bp.Phases[1].DurationWeeks)
	}

	// List preserves file order
	list := svc.List()
	if len(list) != 2 || list[0].Name != "content-launch" || list[1].Name != "cle-event" {
		t.Errorf("unexpected list order: %+v", list)
	}
}

func TestTemplateServiceRejectsUnknownKind(t *testing.T) {
	path := writeBlueprintFile(t, `
blueprints:
  - name: broken
    title: Broken
    phases:
      - name: Phase
        duration_weeks: 1
        items:
          - name: Whitepaper
            kind: whitepaper
            quantity: 1
`)

	if _, err := service.NewTemplateService(path); err == nil {
		t.Error("expected invalid kind error, got nil")
	}
}

func TestTemplateServiceRejectsDuplicateNames(t *testing.T) {
	path := writeBlueprintFile(t, `
blueprints:
  - name: twice
    title: First
  - name: twice
    title: Second
`)

	if _, err := service.NewTemplateService(path); err == nil {
		t.Error("expected duplicate name error, got nil")
	}
}

func TestTemplateServiceRejectsNamelessBlueprint(t *testing.T) {
	path := writeBlueprintFile(t, `
blueprints:
  - title: No Name
`)

	if _, err := service.NewTemplateService(path); err == nil {
		t.Error("expected missing name error, got nil")
	}
}

func TestTemplateServiceMissingFile(t *testing.T) {
	if _, err := service.NewTemplateService(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected read error, got nil")
	}
}
