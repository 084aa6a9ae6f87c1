// internal/service/invoice_service.go
package service

import (
    "time"

    "github.com/unclebandit/bizdev-backend/internal/model"
    "github.com/unclebandit/bizdev-backend/internal/repository"
)

// Derived invoice statuses. Status is never stored; it is computed from
// amounts, the sent flag and the due date on every read.
const (
    InvoiceDraft         = "draft"
    InvoiceSent          = "sent"
    InvoicePartiallyPaid = "partially_paid"
    InvoicePaid          = "paid"
    InvoiceOverdue       = "overdue"
)

// DeriveInvoiceStatus computes the payment status of an invoice at a given
// instant.
func DeriveInvoiceStatus(inv *model.Invoice, now time.Time) string {
    if inv.AmountCents > 0 && inv.PaidCents >= inv.AmountCents {
        return InvoicePaid
    }
    if !inv.Sent {
        return InvoiceDraft
    }
    if inv.DueDate != nil && inv.DueDate.Before(now) {
        return InvoiceOverdue
    }
    if inv.PaidCents > 0 {
        return InvoicePartiallyPaid
    }
    return InvoiceSent
}

// InvoiceDetails is an invoice with its derived fields attached.
type InvoiceDetails struct {
    model.Invoice
    Status       string `json:"status"`
    BalanceCents int64  `json:"balance_cents"`
}

type InvoiceService struct {
    Repo repository.InvoiceRepositoryInterface
}

func (s *InvoiceService) CreateInvoice(inv *model.Invoice) error {
    return s.Repo.Create(inv)
}

func (s *InvoiceService) GetInvoice(id int) (*InvoiceDetails, error) {
    inv, err := s.Repo.GetByID(id)
    if err != nil {
        return nil, err
    }
    return withDerived(inv, time.Now()), nil
}

func (s *InvoiceService) ListByContact(contactID int) ([]InvoiceDetails, error) {
    invoices, err := s.Repo.ListByContact(contactID)
    if err != nil {
        return nil, err
    }
    now := time.Now()
    details := make([]InvoiceDetails, len(invoices))
    for i := range invoices {
        details[i] = *withDerived(&invoices[i], now)
    }
    return details, nil
}

func (s *InvoiceService) RecordPayment(id int, amountCents int64) (*InvoiceDetails, error) {
    if _, err := s.Repo.GetByID(id); err != nil {
        return nil, err
    }
    if err := s.Repo.RecordPayment(id, amountCents); err != nil {
        return nil, err
    }
    return s.GetInvoice(id)
}

func (s *InvoiceService) MarkSent(id int) (*InvoiceDetails, error) {
    if _, err := s.Repo.GetByID(id); err != nil {
        return nil, err
    }
    if err := s.Repo.MarkSent(id); err != nil {
        return nil, err
    }
    return s.GetInvoice(id)
}

func withDerived(inv *model.Invoice, now time.Time) *InvoiceDetails {
    balance := inv.AmountCents - inv.PaidCents
    if balance < 0 {
        balance = 0
    }
    return &InvoiceDetails{
        Invoice:      *inv,
        Status:       DeriveInvoiceStatus(inv, now),
        BalanceCents: balance,
    }
}
