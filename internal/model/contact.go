// internal/model/contact.go
package model

import "time"

type Contact struct {
    ID          int       `db:"id" json:"id"`
    CompanyHQID int       `db:"company_hq_id" json:"company_hq_id"`
    FirstName   string    `db:"first_name" json:"first_name"`
    LastName    string    `db:"last_name" json:"last_name"`
    Email       string    `db:"email" json:"email"`
    Phone       string    `db:"phone" json:"phone"`
    JobTitle    string    `db:"job_title" json:"job_title"`
    CompanyName string    `db:"company_name" json:"company_name"`
    LinkedInURL string    `db:"linkedin_url" json:"linkedin_url,omitempty"`
    Enriched    bool      `db:"enriched" json:"enriched"`
    CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
