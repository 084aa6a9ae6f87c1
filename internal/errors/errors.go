// internal/errors/errors.go
package appErrors

import "fmt"

// ErrWorkPackageNotFound is a sentinel error
type ErrWorkPackageNotFound struct {
    WorkPackageID int
}

func (e *ErrWorkPackageNotFound) Error() string {
    return fmt.Sprintf("work package with ID %d not found", e.WorkPackageID)
}

// Helper constructor
func NewWorkPackageNotFound(id int) error {
    return &ErrWorkPackageNotFound{WorkPackageID: id}
}

type ErrContactNotFound struct {
    ContactID int
}

func (e *ErrContactNotFound) Error() string {
    return fmt.Sprintf("contact with ID %d not found", e.ContactID)
}

func NewContactNotFound(id int) error {
    return &ErrContactNotFound{ContactID: id}
}

type ErrArtifactNotFound struct {
    Kind string
    ArtifactID int
}

func (e *ErrArtifactNotFound) Error() string {
    return fmt.Sprintf("%s artifact with ID %d not found", e.Kind, e.ArtifactID)
}

func NewArtifactNotFound(kind string, id int) error {
    return &ErrArtifactNotFound{Kind: kind, ArtifactID: id}
}

type ErrInvoiceNotFound struct {
    InvoiceID int
}

func (e *ErrInvoiceNotFound) Error() string {
    return fmt.Sprintf("invoice with ID %d not found", e.InvoiceID)
}

func NewInvoiceNotFound(id int) error {
    return &ErrInvoiceNotFound{InvoiceID: id}
}
