// Package invoices applies create/update/delete mutations to single invoice
// records.
package invoices

import (
	"errors"
	"time"

	"financial-dashboard-backend/internal/models"
	"financial-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrNotFound means the identifier did not resolve to a stored invoice.
var ErrNotFound = errors.New("invoice not found")

// ValidationError reports a required mutation field that was absent.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// Input carries a partially-specified mutation payload. Nil means the field
// was absent from the request, which is distinct from a zero value.
type Input struct {
	CustomerID *uuid.UUID
	Amount     *int64
	Status     *string
	Date       *time.Time
}

// Create and update both require the full field set; a partial update that
// omits one of the three fails even though the record holds prior values.
func (in Input) validate() error {
	if in.CustomerID == nil {
		return &ValidationError{Field: "customer_id"}
	}
	if in.Amount == nil {
		return &ValidationError{Field: "amount"}
	}
	if in.Status == nil {
		return &ValidationError{Field: "status"}
	}
	return nil
}

type Service struct {
	repo *repository.InvoiceRepository
	db   *gorm.DB
}

func NewService(repo *repository.InvoiceRepository) *Service {
	return &Service{repo: repo, db: repo.DB()}
}

// Create stores a new invoice with a generated identifier. Date is optional;
// when absent the record is stored without one.
func (s *Service) Create(in Input) (*models.Invoice, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	invoice := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: *in.CustomerID,
		Amount:     *in.Amount,
		Status:     *in.Status,
	}
	if in.Date != nil {
		d := datatypes.Date(*in.Date)
		invoice.Date = &d
	}
	if err := s.db.Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

// Update resolves the invoice, then overwrites customer_id, amount and
// status. Date overwrites only when present; otherwise the stored date is
// retained.
func (s *Service) Update(id uuid.UUID, in Input) (*models.Invoice, error) {
	invoice, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	invoice.CustomerID = *in.CustomerID
	invoice.Amount = *in.Amount
	invoice.Status = *in.Status
	if in.Date != nil {
		d := datatypes.Date(*in.Date)
		invoice.Date = &d
	}
	if err := s.db.Save(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

// Delete resolves the invoice and removes it.
func (s *Service) Delete(id uuid.UUID) error {
	invoice, err := s.load(id)
	if err != nil {
		return err
	}
	return s.db.Delete(invoice).Error
}

// Get is the loose read: it returns (nil, nil) when the identifier does not
// resolve, and the handler serializes that as JSON null.
func (s *Service) Get(id uuid.UUID) (*models.Invoice, error) {
	return s.repo.GetByID(id)
}

func (s *Service) load(id uuid.UUID) (*models.Invoice, error) {
	invoice, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, ErrNotFound
	}
	return invoice, nil
}
