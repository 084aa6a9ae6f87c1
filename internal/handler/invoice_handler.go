// internal/handler/invoice_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/bizdev-backend/internal/errors"
	"github.com/unclebandit/bizdev-backend/internal/model"
	"github.com/unclebandit/bizdev-backend/internal/service"
)

type InvoiceHandler struct {
	Service *service.InvoiceService
}

func (h *InvoiceHandler) CreateInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ContactID   int        `json:"contact_id"`
		Number      string     `json:"number"`
		AmountCents int64      `json:"amount_cents"`
		DueDate     *time.Time `json:"due_date,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.ContactID < 1 || payload.AmountCents < 0 {
		http.Error(w, "contact_id and a non-negative amount are required", http.StatusBadRequest)
		return
	}

	invoice := &model.Invoice{
		ContactID:   payload.ContactID,
		Number:      payload.Number,
		AmountCents: payload.AmountCents,
		DueDate:     payload.DueDate,
	}

	if err := h.Service.CreateInvoice(invoice); err != nil {
		http.Error(w, "failed to create invoice: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(invoice)
}

func (h *InvoiceHandler) GetInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid invoice id", http.StatusBadRequest)
		return
	}

	details, err := h.Service.GetInvoice(id)
	if err != nil {
		var notFound *appErrors.ErrInvoiceNotFound
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to fetch invoice: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(details)
}

func (h *InvoiceHandler) ListInvoicesHandler(w http.ResponseWriter, r *http.Request) {
	contactID, err := strconv.Atoi(r.URL.Query().Get("contact_id"))
	if err != nil || contactID < 1 {
		http.Error(w, "contact_id query param required", http.StatusBadRequest)
		return
	}

	details, err := h.Service.ListByContact(contactID)
	if err != nil {
		http.Error(w, "failed to fetch invoices: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": details})
}

func (h *InvoiceHandler) RecordPaymentHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid invoice id", http.StatusBadRequest)
		return
	}

	var payload struct {
		AmountCents int64 `json:"amount_cents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.AmountCents <= 0 {
		http.Error(w, "amount_cents must be positive", http.StatusBadRequest)
		return
	}

	details, err := h.Service.RecordPayment(id, payload.AmountCents)
	if err != nil {
		var notFound *appErrors.ErrInvoiceNotFound
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to record payment: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(details)
}

func (h *InvoiceHandler) SendInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid invoice id", http.StatusBadRequest)
		return
	}

	details, err := h.Service.MarkSent(id)
	if err != nil {
		var notFound *appErrors.ErrInvoiceNotFound
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to send invoice: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(details)
}
