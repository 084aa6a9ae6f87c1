package service_test

import (
	"testing"
	"time"

	appErrors "github.com/unclebandit/bizdev-backend/internal/errors"
	"github.com/unclebandit/bizdev-backend/internal/model"
	"github.com/unclebandit/bizdev-backend/internal/service"
)

// Mock invoice repository backed by an in-memory map
type MockInvoiceRepo struct {
	invoices map[int]*model.Invoice
}

func NewMockInvoiceRepo() *MockInvoiceRepo {
	return &MockInvoiceRepo{invoices: map[int]*model.Invoice{}}
}

func (m *MockInvoiceRepo) Create(inv *model.Invoice) error {
	inv.ID = len(m.invoices) + 1
	inv.CreatedAt = time.Now()
	m.invoices[inv.ID] = inv
	return nil
}

func (m *MockInvoiceRepo) GetByID(id int) (*model.Invoice, error) {
	if inv, ok := m.invoices[id]; ok {
		copied := *inv
		return &copied, nil
	}
	return nil, appErrors.NewInvoiceNotFound(id)
}

func (m *MockInvoiceRepo) ListByContact(contactID int) ([]model.Invoice, error) {
	out := []model.Invoice{}
	for _, inv := range m.invoices {
		if inv.ContactID == contactID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (m *MockInvoiceRepo) RecordPayment(id int, amountCents int64) error {
	m.invoices[id].PaidCents += amountCents
	return nil
}

func (m *MockInvoiceRepo) MarkSent(id int) error {
	m.invoices[id].Sent = true
	return nil
}

func datePtr(t time.Time) *time.Time { return &t }

func TestDeriveInvoiceStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := datePtr(now.AddDate(0, 0, -10))
	future := datePtr(now.AddDate(0, 0, 10))

	cases := []struct {
		name string
		inv  model.Invoice
		want string
	}{
		{"unsent is draft", model.Invoice{AmountCents: 1000, Sent: false}, service.InvoiceDraft},
		{"sent unpaid", model.Invoice{AmountCents: 1000, Sent: true, DueDate: future}, service.InvoiceSent},
		{"partial payment", model.Invoice{AmountCents: 1000, PaidCents: 400, Sent: true, DueDate: future}, service.InvoicePartiallyPaid},
		{"fully paid", model.Invoice{AmountCents: 1000, PaidCents: 1000, Sent: true}, service.InvoicePaid},
		{"overpaid still paid", model.Invoice{AmountCents: 1000, PaidCents: 1200, Sent: true}, service.InvoicePaid},
		{"past due", model.Invoice{AmountCents: 1000, Sent: true, DueDate: past}, service.InvoiceOverdue},
		{"past due partial", model.Invoice{AmountCents: 1000, PaidCents: 400, Sent: true, DueDate: past}, service.InvoiceOverdue},
		{"paid beats overdue", model.Invoice{AmountCents: 1000, PaidCents: 1000, Sent: true, DueDate: past}, service.InvoicePaid},
		{"no due date never overdue", model.Invoice{AmountCents: 1000, Sent: true}, service.InvoiceSent},
	}

	for _, tc := range cases {
		got := service.DeriveInvoiceStatus(&tc.inv, now)
		if got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestRecordPaymentFlow(t *testing.T) {
	repo := NewMockInvoiceRepo()
	svc := &service.InvoiceService{Repo: repo}

	inv := &model.Invoice{ContactID: 1, Number: "INV-001", AmountCents: 5000}
	if err := svc.CreateInvoice(inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.MarkSent(inv.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	details, err := svc.RecordPayment(inv.ID, 2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Status != service.InvoicePartiallyPaid {
		t.Errorf("expected %q, got %q", service.InvoicePartiallyPaid, details.Status)
	}
	if details.BalanceCents != 3000 {
		t.Errorf("expected balance 3000, got %d", details.BalanceCents)
	}

	details, err = svc.RecordPayment(inv.ID, 3000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Status != service.InvoicePaid {
		t.Errorf("expected %q, got %q", service.InvoicePaid, details.Status)
	}
	if details.BalanceCents != 0 {
		t.Errorf("expected zero balance, got %d", details.BalanceCents)
	}
}

func TestRecordPaymentUnknownInvoice(t *testing.T) {
	svc := &service.InvoiceService{Repo: NewMockInvoiceRepo()}

	if _, err := svc.RecordPayment(42, 1000); err == nil {
		t.Error("expected error for unknown invoice, got nil")
	}
}
