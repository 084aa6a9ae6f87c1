// internal/handler/contact_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appErrors "github.com/unclebandit/bizdev-backend/internal/errors"
	"github.com/unclebandit/bizdev-backend/internal/model"
	"github.com/unclebandit/bizdev-backend/internal/service"
)

// ContactHandler holds the dependencies for contact-related HTTP handlers
type ContactHandler struct {
	Service *service.ContactService
}

// CreateContactHandler handles creating a new contact
func (h *ContactHandler) CreateContactHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CompanyHQID int    `json:"company_hq_id"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		JobTitle    string `json:"job_title"`
		CompanyName string `json:"company_name"`
		LinkedInURL string `json:"linkedin_url"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	contact := &model.Contact{
		CompanyHQID: payload.CompanyHQID,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Email:       payload.Email,
		Phone:       payload.Phone,
		JobTitle:    payload.JobTitle,
		CompanyName: payload.CompanyName,
		LinkedInURL: payload.LinkedInURL,
	}

	if err := h.Service.CreateContact(contact); err != nil {
		http.Error(w, "failed to create contact: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contact)
}

// ListContactsHandler returns a paginated list of contacts
func (h *ContactHandler) ListContactsHandler(w http.ResponseWriter, r *http.Request) {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")
	page := 1
	pageSize := 10

	if pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if pageSizeStr != "" {
		if ps, err := strconv.Atoi(pageSizeStr); err == nil && ps > 0 {
			pageSize = ps
		}
	}

	companyHQID, _ := strconv.Atoi(r.URL.Query().Get("company_hq_id"))
	search := r.URL.Query().Get("search")

	contacts, pagination, err := h.Service.ListContacts(page, pageSize, companyHQID, search)
	if err != nil {
		http.Error(w, "failed to fetch contacts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"data":       contacts,
		"pagination": pagination,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetContactHandler returns a single contact by ID
func (h *ContactHandler) GetContactHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid contact id", http.StatusBadRequest)
		return
	}

	contact, err := h.Service.GetContact(id)
	if err != nil {
		var notFound *appErrors.ErrContactNotFound
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to fetch contact: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contact)
}

// UpdateContactHandler updates an existing contact
func (h *ContactHandler) UpdateContactHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid contact id", http.StatusBadRequest)
		return
	}

	var payload model.Contact
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	payload.ID = id

	if err := h.Service.UpdateContact(&payload); err != nil {
		var notFound *appErrors.ErrContactNotFound
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update contact: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// EnrichContactHandler triggers enrichment for a contact
func (h *ContactHandler) EnrichContactHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid contact id", http.StatusBadRequest)
		return
	}

	contact, err := h.Service.EnrichContact(r.Context(), id)
	if err != nil {
		var notFound *appErrors.ErrContactNotFound
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to enrich contact: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contact)
}
