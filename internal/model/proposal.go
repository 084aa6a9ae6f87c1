// internal/model/proposal.go
package model

import "time"

type Proposal struct {
    ID        int        `db:"id" json:"id"`
    ContactID int        `db:"contact_id" json:"contact_id"`
    Title     string     `db:"title" json:"title"`
    Body      string     `db:"body" json:"body"`
    Status    string     `db:"status" json:"status"` // draft, sent, signed, declined
    SentAt    *time.Time `db:"sent_at" json:"sent_at,omitempty"`
    CreatedAt time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
