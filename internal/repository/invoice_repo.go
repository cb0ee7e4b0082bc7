package repository

import (
	"errors"

	"financial-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB for the command service, which issues its own writes.
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// Search returns raw invoice rows joined to their owning customer, filtered
// by the search term and ordered newest first. The join is inner: an invoice
// whose customer does not resolve is a data-integrity fault and is excluded.
func (r *InvoiceRepository) Search(term string) ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)
	err := r.db.Model(&models.Invoice{}).
		Select(`invoices.id, invoices.customer_id, invoices.amount, invoices.status, invoices.date,
			customers.name, customers.email, customers.image_url`).
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Scopes(SearchPredicate(term)).
		Order("invoices.date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Latest returns raw rows for the latest-invoices card: invoice id and
// amount plus the owning customer's display fields, newest first.
func (r *InvoiceRepository) Latest() ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)
	err := r.db.Model(&models.Invoice{}).
		Select(`invoices.id, invoices.amount,
			customers.name, customers.email, customers.image_url`).
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Order("invoices.date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the total number of invoices.
func (r *InvoiceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of invoices with the exact status.
func (r *InvoiceRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// CountMatching returns the number of joined invoice rows matching the
// search term. Callers derive page counts from it externally.
func (r *InvoiceRepository) CountMatching(term string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Scopes(SearchPredicate(term)).
		Count(&count).Error
	return count, err
}

// GetByID fetches a single invoice. Absence is not an error here; callers
// that need strict not-found semantics check for the nil record.
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
