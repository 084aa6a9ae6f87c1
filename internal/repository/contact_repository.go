package repository

import (
    "database/sql"
    "fmt"

    "github.com/unclebandit/bizdev-backend/internal/model"
)

// ContactRepositoryInterface defines methods used by services
type ContactRepositoryInterface interface {
    GetByID(id int) (*model.Contact, error)
    List(offset, limit int, companyHQID int, search string) ([]model.Contact, int, error)
    Create(c *model.Contact) error
    Update(c *model.Contact) error
    MarkEnriched(id int, jobTitle, companyName, linkedInURL string) error
}

// ContactRepository is the concrete implementation
type ContactRepository struct {
    DB *sql.DB
}

func (r *ContactRepository) GetByID(id int) (*model.Contact, error) {
    query := `
        SELECT id, company_hq_id, first_name, last_name, email, phone, job_title, company_name, linkedin_url, enriched, created_at
        FROM contacts
        WHERE id = $1
    `
    row := r.DB.QueryRow(query, id)

    var c model.Contact
    if err := row.Scan(&c.ID, &c.CompanyHQID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
        &c.JobTitle, &c.CompanyName, &c.LinkedInURL, &c.Enriched, &c.CreatedAt); err != nil {
        if err == sql.ErrNoRows {
            return nil, nil // not found
        }
        return nil, err
    }
    return &c, nil
}

func (r *ContactRepository) List(offset, limit int, companyHQID int, search string) ([]model.Contact, int, error) {
    query := `
        SELECT id, company_hq_id, first_name, last_name, email, phone, job_title, company_name, linkedin_url, enriched, created_at
        FROM contacts WHERE company_hq_id=$1
    `
    args := []interface{}{companyHQID}
    argPos := 2

    if search != "" {
        query += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)", argPos, argPos, argPos)
        args = append(args, "%"+search+"%")
        argPos++
    }

    query += fmt.Sprintf(" ORDER BY id DESC LIMIT $%d OFFSET $%d", argPos, argPos+1)
    args = append(args, limit, offset)

    rows, err := r.DB.Query(query, args...)
    if err != nil {
        return nil, 0, err
    }
    defer rows.Close()

    contacts := []model.Contact{}
    for rows.Next() {
        var c model.Contact
        if err := rows.Scan(&c.ID, &c.CompanyHQID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
            &c.JobTitle, &c.CompanyName, &c.LinkedInURL, &c.Enriched, &c.CreatedAt); err != nil {
            return nil, 0, err
        }
        contacts = append(contacts, c)
    }

    countQuery := `SELECT COUNT(*) FROM contacts WHERE company_hq_id=$1`
    argsCount := []interface{}{companyHQID}
    if search != "" {
        countQuery += " AND (first_name ILIKE $2 OR last_name ILIKE $2 OR email ILIKE $2)"
        argsCount = append(argsCount, "%"+search+"%")
    }

    var total int
    if err := r.DB.QueryRow(countQuery, argsCount...).Scan(&total); err != nil {
        return nil, 0, err
    }

    return contacts, total, nil
}

func (r *ContactRepository) Create(c *model.Contact) error {
    query := `
        INSERT INTO contacts (company_hq_id, first_name, last_name, email, phone, job_title, company_name, linkedin_url, enriched, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, NOW())
        RETURNING id, created_at
    `
    return r.DB.QueryRow(query,
        c.CompanyHQID, c.FirstName, c.LastName, c.Email, c.Phone, c.JobTitle, c.CompanyName, c.LinkedInURL,
    ).Scan(&c.ID, &c.CreatedAt)
}

func (r *ContactRepository) Update(c *model.Contact) error {
    query := `
        UPDATE contacts
        SET first_name=$1, last_name=$2, email=$3, phone=$4, job_title=$5, company_name=$6, linkedin_url=$7
        WHERE id=$8
    `
    _, err := r.DB.Exec(query, c.FirstName, c.LastName, c.Email, c.Phone, c.JobTitle, c.CompanyName, c.LinkedInURL, c.ID)
    return err
}

// MarkEnriched writes the fields that came back from the enrichment provider.
func (r *ContactRepository) MarkEnriched(id int, jobTitle, companyName, linkedInURL string) error {
    query := `
        UPDATE contacts
        SET job_title=$1, company_name=$2, linkedin_url=$3, enriched=true
        WHERE id=$4
    `
    _, err := r.DB.Exec(query, jobTitle, companyName, linkedInURL, id)
    return err
}

var _ ContactRepositoryInterface = (*ContactRepository)(nil)
