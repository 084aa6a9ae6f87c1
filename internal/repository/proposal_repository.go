package repository

import (
    "database/sql"
    "time"

    "github.com/unclebandit/bizdev-backend/internal/model"
)

type ProposalRepositoryInterface interface {
    Create(p *model.Proposal) error
    GetByID(id int) (*model.Proposal, error)
    ListByContact(contactID int) ([]model.Proposal, error)
    UpdateStatus(id int, status string) error
}

type ProposalRepository struct {
    DB *sql.DB
}

func (r *ProposalRepository) Create(p *model.Proposal) error {
    p.CreatedAt = time.Now()
    if p.Status == "" {
        p.Status = "draft"
    }
    query := `
        INSERT INTO proposals (contact_id, title, body, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
    return r.DB.QueryRow(query, p.ContactID, p.Title, p.Body, p.Status, p.CreatedAt).Scan(&p.ID)
}

func (r *ProposalRepository) GetByID(id int) (*model.Proposal, error) {
    query := `
        SELECT id, contact_id, title, body, status, sent_at, created_at, updated_at
        FROM proposals WHERE id=$1
    `
    var p model.Proposal
    err := r.DB.QueryRow(query, id).Scan(&p.ID, &p.ContactID, &p.Title, &p.Body, &p.Status, &p.SentAt, &p.CreatedAt, &p.UpdatedAt)
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, nil
        }
        return nil, err
    }
    return &p, nil
}

func (r *ProposalRepository) ListByContact(contactID int) ([]model.Proposal, error) {
    query := `
        SELECT id, contact_id, title, body, status, sent_at, created_at, updated_at
        FROM proposals WHERE contact_id=$1 ORDER BY id DESC
    `
    rows, err := r.DB.Query(query, contactID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    proposals := []model.Proposal{}
    for rows.Next() {
        var p model.Proposal
        if err := rows.Scan(&p.ID, &p.ContactID, &p.Title, &p.Body, &p.Status, &p.SentAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
            return nil, err
        }
        proposals = append(proposals, p)
    }
    return proposals, rows.Err()
}

func (r *ProposalRepository) UpdateStatus(id int, status string) error {
    query := `
        UPDATE proposals
        SET status=$1, sent_at=CASE WHEN $1='sent' THEN NOW() ELSE sent_at END, updated_at=NOW()
        WHERE id=$2
    `
    _, err := r.DB.Exec(query, status, id)
    return err
}

var _ ProposalRepositoryInterface = (*ProposalRepository)(nil)
