package repository

import (
    "database/sql"
    "time"

    appErrors "github.com/unclebandit/bizdev-backend/internal/errors"
    "github.com/unclebandit/bizdev-backend/internal/model"
)

type InvoiceRepositoryInterface interface {
    Create(inv *model.Invoice) error
    GetByID(id int) (*model.Invoice, error)
    ListByContact(contactID int) ([]model.Invoice, error)
    RecordPayment(id int, amountCents int64) error
    MarkSent(id int) error
}

type InvoiceRepository struct {
    DB *sql.DB
}

func (r *InvoiceRepository) Create(inv *model.Invoice) error {
    inv.CreatedAt = time.Now()
    query := `
        INSERT INTO invoices (contact_id, number, amount_cents, paid_cents, sent, due_date, created_at)
        VALUES ($1, $2, $3, 0, false, $4, $5)
        RETURNING id
    `
    return r.DB.QueryRow(query, inv.ContactID, inv.Number, inv.AmountCents, inv.DueDate, inv.CreatedAt).Scan(&inv.ID)
}

func (r *InvoiceRepository) GetByID(id int) (*model.Invoice, error) {
    query := `
        SELECT id, contact_id, number, amount_cents, paid_cents, sent, due_date, created_at, updated_at
        FROM invoices WHERE id=$1
    `
    var inv model.Invoice
    err := r.DB.QueryRow(query, id).Scan(&inv.ID, &inv.ContactID, &inv.Number, &inv.AmountCents,
        &inv.PaidCents, &inv.Sent, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, appErrors.NewInvoiceNotFound(id)
        }
        return nil, err
    }
    return &inv, nil
}

func (r *InvoiceRepository) ListByContact(contactID int) ([]model.Invoice, error) {
    query := `
        SELECT id, contact_id, number, amount_cents, paid_cents, sent, due_date, created_at, updated_at
        FROM invoices WHERE contact_id=$1 ORDER BY id DESC
    `
    rows, err := r.DB.Query(query, contactID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    invoices := []model.Invoice{}
    for rows.Next() {
        var inv model.Invoice
        if err := rows.Scan(&inv.ID, &inv.ContactID, &inv.Number, &inv.AmountCents,
            &inv.PaidCents, &inv.Sent, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
            return nil, err
        }
        invoices = append(invoices, inv)
    }
    return invoices, rows.Err()
}

func (r *InvoiceRepository) RecordPayment(id int, amountCents int64) error {
    query := `UPDATE invoices SET paid_cents = paid_cents + $1, updated_at=NOW() WHERE id=$2`
    _, err := r.DB.Exec(query, amountCents, id)
    return err
}

func (r *InvoiceRepository) MarkSent(id int) error {
    query := `UPDATE invoices SET sent=true, updated_at=NOW() WHERE id=$1`
    _, err := r.DB.Exec(query, id)
    return err
}

var _ InvoiceRepositoryInterface = (*InvoiceRepository)(nil)
