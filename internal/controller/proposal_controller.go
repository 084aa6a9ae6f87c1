// internal/controller/proposal_controller.go
package controller

import (
    "encoding/json"
    "net/http"
    "strconv"

    "github.com/go-chi/chi/v5"

    "github.com/unclebandit/bizdev-backend/internal/model"
    "github.com/unclebandit/bizdev-backend/internal/repository"
)

type ProposalController struct {
    ProposalRepo repository.ProposalRepositoryInterface
}

func (c *ProposalController) CreateProposal(w http.ResponseWriter, r *http.Request) {
    var body struct {
        ContactID int    `json:"contact_id" validate:"required"`
        Title     string `json:"title" validate:"required"`
        Body      string `json:"body"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    proposal := &model.Proposal{
        ContactID: body.ContactID,
        Title:     body.Title,
        Body:      body.Body,
    }
    if err := c.ProposalRepo.Create(proposal); err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(proposal)
}

func (c *ProposalController) GetProposal(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid proposal id", http.StatusBadRequest)
        return
    }

    proposal, err := c.ProposalRepo.GetByID(id)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }
    if proposal == nil {
        http.Error(w, "proposal not found", http.StatusNotFound)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(proposal)
}

func (c *ProposalController) ListProposalsByContact(w http.ResponseWriter, r *http.Request) {
    contactID, err := strconv.Atoi(r.URL.Query().Get("contact_id"))
    if err != nil || contactID < 1 {
        http.Error(w, "contact_id query param required", http.StatusBadRequest)
        return
    }

    proposals, err := c.ProposalRepo.ListByContact(contactID)
    if err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(map[string]interface{}{"data": proposals})
}

func (c *ProposalController) UpdateProposalStatus(w http.ResponseWriter, r *http.Request) {
    idStr := chi.URLParam(r, "id")
    id, err := strconv.Atoi(idStr)
    if err != nil {
        http.Error(w, "invalid proposal id", http.StatusBadRequest)
        return
    }

    var body struct {
        Status string `json:"status" validate:"required,oneof=draft sent signed declined"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        http.Error(w, "invalid body", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(body); err != nil {
        http.Error(w, err.Error(), http.StatusBadRequest)
        return
    }

    if err := c.ProposalRepo.UpdateStatus(id, body.Status); err != nil {
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    w.WriteHeader(http.StatusNoContent)
}
