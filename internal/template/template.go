package template

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpcarvalho/lexledger/internal/lineitem"
)

// ErrNotFound is returned when a referenced template does not exist or
// has been deactivated.
var ErrNotFound = errors.New("template not found")

// Kind tags a template with the class of case it targets.
type Kind string

const (
	KindGDPR     Kind = "GDPR"
	KindContract Kind = "CONTRACT"
	KindGeneral  Kind = "GENERAL"
)

// Template is a named, reusable set of default line items for seeding a
// case's ledger. Deleting a template only clears IsActive; rows are kept
// for provenance of already-applied cases.
type Template struct {
	ID          uuid.UUID
	Name        string
	Kind        Kind
	Description string
	IsDefault   bool
	IsActive    bool
	CreatedAt   time.Time
}

// TemplateItem is one default line item owned by exactly one template.
type TemplateItem struct {
	ID            uuid.UUID
	TemplateID    uuid.UUID
	Name          string
	Category      lineitem.Category
	DefaultAmount decimal.Decimal
	Taxable       bool
	Description   string
	DisplayOrder  int
}
