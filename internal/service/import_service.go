// internal/service/import_service.go
package service

import (
    "context"
    "fmt"
    "log"
    "strings"
    "time"

    "github.com/google/uuid"

    "github.com/unclebandit/bizdev-backend/internal/model"
    "github.com/unclebandit/bizdev-backend/internal/repository"
)

// EngagementRow is one pre-parsed row of a bulk import. Column mapping and
// CSV parsing happen upstream; by the time a row gets here it is plain data.
type EngagementRow struct {
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
    Email     string `json:"email"`
    Title     string `json:"title"`
    Blueprint string `json:"blueprint,omitempty"`
}

type RowFailure struct {
    Row    int    `json:"row"`
    Reason string `json:"reason"`
}

type ImportResult struct {
    JobID    string       `json:"job_id"`
    Created  int          `json:"created"`
    Failures []RowFailure `json:"failures"`
}

type ImportService struct {
    ContactRepo        repository.ContactRepositoryInterface
    WorkPackages       *WorkPackageService
    Templates          *TemplateService
    DefaultCompanyHQID int
}

// ImportEngagements creates a contact and a work package per row. Bad rows
// are recorded and skipped; the batch never aborts.
func (s *ImportService) ImportEngagements(ctx context.Context, rows []EngagementRow) *ImportResult {
    result := &ImportResult{
        JobID:    uuid.NewString(),
        Failures: []RowFailure{},
    }

    for i, row := range rows {
        if err := s.importRow(ctx, row); err != nil {
            log.Println("⚠️ import row", i, "failed:", err)
            result.Failures = append(result.Failures, RowFailure{Row: i, Reason: err.Error()})
            continue
        }
        result.Created++
    }

    log.Printf("📦 import job %s: %d created, %d failed\n", result.JobID, result.Created, len(result.Failures))
    return result
}

func (s *ImportService) importRow(ctx context.Context, row EngagementRow) error {
    if strings.TrimSpace(row.Email) == "" {
        return fmt.Errorf("missing email")
    }

    contact := &model.Contact{
        CompanyHQID: s.DefaultCompanyHQID,
        FirstName:   row.FirstName,
        LastName:    row.LastName,
        Email:       row.Email,
    }
    if err := s.ContactRepo.Create(contact); err != nil {
        return fmt.Errorf("create contact: %w", err)
    }

    if row.Blueprint != "" {
        bp, ok := s.Templates.Get(row.Blueprint)
        if !ok {
            return fmt.Errorf("unknown blueprint %q", row.Blueprint)
        }
        now := time.Now()
        if _, err := s.WorkPackages.CreateFromBlueprint(ctx, bp, contact.ID, &contact.CompanyHQID, &now); err != nil {
            return fmt.Errorf("create work package: %w", err)
        }
        return nil
    }

    title := row.Title
    if title == "" {
        title = fmt.Sprintf("Engagement: %s %s", row.FirstName, row.LastName)
    }
    wp := &model.WorkPackage{
        ContactID:   contact.ID,
        CompanyHQID: &contact.CompanyHQID,
        Title:       title,
    }
    if err := s.WorkPackages.Create(ctx, wp); err != nil {
        return fmt.Errorf("create work package: %w", err)
    }
    return nil
}
