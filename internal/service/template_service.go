// internal/service/template_service.go
package service

import (
    "fmt"
    "os"

    "gopkg.in/yaml.v3"

    "github.com/unclebandit/bizdev-backend/internal/model"
)

// Blueprint is an engagement template: the phases and deliverable slots a
// new work package starts with.
type Blueprint struct {
    Name        string           `yaml:"name"`
    Title       string           `yaml:"title"`
    Description string           `yaml:"description"`
    Phases      []BlueprintPhase `yaml:"phases"`
}

type BlueprintPhase struct {
    Name          string          `yaml:"name"`
    TimelineLabel string          `yaml:"timeline_label"`
    DurationWeeks float64         `yaml:"duration_weeks"`
    Items         []BlueprintItem `yaml:"items"`
}

type BlueprintItem struct {
    Name               string             `yaml:"name"`
    Kind               model.ArtifactKind `yaml:"kind"`
    Quantity           int                `yaml:"quantity"`
    EstimatedHoursEach *float64           `yaml:"estimated_hours_each"`
}

type TemplateService struct {
    blueprints map[string]Blueprint
    order      []string
}

// NewTemplateService parses the blueprint YAML file and validates every
// item's kind up front, so a bad blueprint fails at startup, not on use.
func NewTemplateService(path string) (*TemplateService, error) {
    raw, err := os.ReadFile(path)
    if err != nil {
        return nil, err
    }

    var parsed struct {
        Blueprints []Blueprint `yaml:"blueprints"`
    }
    if err := yaml.Unmarshal(raw, &parsed); err != nil {
        return nil, fmt.Errorf("invalid blueprint file %s: %w", path, err)
    }

    svc := &TemplateService{blueprints: map[string]Blueprint{}}
    for _, bp := range parsed.Blueprints {
        if bp.Name == "" {
            return nil, fmt.Errorf("blueprint without a name in %s", path)
        }
        for _, ph := range bp.Phases {
            for _, item := range ph.Items {
                if !item.Kind.Valid() {
                    return nil, fmt.Errorf("blueprint %s: invalid kind %q for item %q", bp.Name, item.Kind, item.Name)
                }
            }
        }
        if _, dup := svc.blueprints[bp.Name]; dup {
            return nil, fmt.Errorf("duplicate blueprint name %q in %s", bp.Name, path)
        }
        svc.blueprints[bp.Name] = bp
        svc.order = append(svc.order, bp.Name)
    }
    return svc, nil
}

func (s *TemplateService) Get(name string) (Blueprint, bool) {
    bp, ok := s.blueprints[name]
    return bp, ok
}

func (s *TemplateService) List() []Blueprint {
    out := make([]Blueprint, 0, len(s.order))
    for _, name := range s.order {
        out = append(out, s.blueprints[name])
    }
    return out
}
