// internal/service/contact_service.go
package service

import (
    "context"
    "fmt"
    "log"
    "strings"

    appErrors "github.com/unclebandit/bizdev-backend/internal/errors"
    "github.com/unclebandit/bizdev-backend/internal/model"
    "github.com/unclebandit/bizdev-backend/internal/repository"
)

// EnrichedProfile is what the person-enrichment provider returns.
type EnrichedProfile struct {
    JobTitle    string
    CompanyName string
    LinkedInURL string
}

// Enricher is the boundary toward the third-party enrichment API.
type Enricher interface {
    Enrich(ctx context.Context, email string) (*EnrichedProfile, error)
}

type ContactService struct {
    Repo     repository.ContactRepositoryInterface
    Enricher Enricher
    // DefaultCompanyHQID is the tenant applied when a request carries none.
    // Injected at startup, never a process-wide global.
    DefaultCompanyHQID int
}

func (s *ContactService) CreateContact(c *model.Contact) error {
    if strings.TrimSpace(c.Email) == "" {
        return fmt.Errorf("contact email is required")
    }
    if c.CompanyHQID == 0 {
        c.CompanyHQID = s.DefaultCompanyHQID
    }
    return s.Repo.Create(c)
}

func (s *ContactService) GetContact(id int) (*model.Contact, error) {
    c, err := s.Repo.GetByID(id)
    if err != nil {
        return nil, err
    }
    if c == nil {
        return nil, appErrors.NewContactNotFound(id)
    }
    return c, nil
}

func (s *ContactService) UpdateContact(c *model.Contact) error {
    existing, err := s.Repo.GetByID(c.ID)
    if err != nil {
        return err
    }
    if existing == nil {
        return appErrors.NewContactNotFound(c.ID)
    }
    return s.Repo.Update(c)
}

// ListContacts fetches contacts with pagination
func (s *ContactService) ListContacts(page, pageSize int, companyHQID int, search string) ([]model.Contact, map[string]int, error) {
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    if pageSize > 100 {
        pageSize = 100
    }
    if companyHQID == 0 {
        companyHQID = s.DefaultCompanyHQID
    }
    offset := (page - 1) * pageSize

    contacts, total, err := s.Repo.List(offset, pageSize, companyHQID, search)
    if err != nil {
        return nil, nil, err
    }

    totalPages := (total + pageSize - 1) / pageSize
    pagination := map[string]int{
        "page":        page,
        "page_size":   pageSize,
        "total_count": total,
        "total_pages": totalPages,
    }

    return contacts, pagination, nil
}

// EnrichContact calls the enrichment provider and writes back what it found.
func (s *ContactService) EnrichContact(ctx context.Context, id int) (*model.Contact, error) {
    contact, err := s.GetContact(id)
    if err != nil {
        return nil, err
    }

    profile, err := s.Enricher.Enrich(ctx, contact.Email)
    if err != nil {
        log.Println("⚠️ enrichment failed for contact", id, ":", err)
        return nil, err
    }

    if err := s.Repo.MarkEnriched(id, profile.JobTitle, profile.CompanyName, profile.LinkedInURL); err != nil {
        return nil, err
    }

    contact.JobTitle = profile.JobTitle
    contact.CompanyName = profile.CompanyName
    contact.LinkedInURL = profile.LinkedInURL
    contact.Enriched = true
    return contact, nil
}

//////////////////////////
// Example Mock Enricher //
//////////////////////////

// MockEnricher fabricates a profile from the email's domain.
type MockEnricher struct{}

func (MockEnricher) Enrich(_ context.Context, email string) (*EnrichedProfile, error) {
    at := strings.Index(email, "@")
    if at < 0 {
        return nil, fmt.Errorf("cannot enrich malformed email %q", email)
    }
    domain := email[at+1:]
    company := strings.TrimSuffix(domain, ".com")
    return &EnrichedProfile{
        JobTitle:    "Partner",
        CompanyName: company,
        LinkedInURL: "https://linkedin.com/company/" + company,
    }, nil
}

var _ Enricher = MockEnricher{}
