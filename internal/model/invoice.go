// internal/model/invoice.go
package model

import "time"

type Invoice struct {
    ID          int        `db:"id" json:"id"`
    ContactID   int        `db:"contact_id" json:"contact_id"`
    Number      string     `db:"number" json:"number"`
    AmountCents int64      `db:"amount_cents" json:"amount_cents"`
    PaidCents   int64      `db:"paid_cents" json:"paid_cents"`
    Sent        bool       `db:"sent" json:"sent"`
    DueDate     *time.Time `db:"due_date" json:"due_date,omitempty"`
    CreatedAt   time.Time  `db:"created_at" json:"created_at"`
    UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
