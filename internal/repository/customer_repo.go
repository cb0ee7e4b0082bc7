package repository

import (
	"financial-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// GetAll returns every customer record unfiltered.
func (r *CustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Find(&customers).Error
	return customers, err
}

// SearchWithTotals returns one raw row per customer matching the search term,
// with invoice aggregates attached. The left join keeps customers that have
// no invoices; their conditional sums come back NULL, not zero, because the
// CASE has no ELSE arm and SUM over no contributing rows is NULL.
func (r *CustomerRepository) SearchWithTotals(term string) ([]map[string]interface{}, error) {
	rows := make([]map[string]interface{}, 0)
	err := r.db.Model(&models.Customer{}).
		Select(`customers.id, customers.name, customers.email, customers.image_url,
			COUNT(invoices.id) AS total_invoices,
			SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount END) AS total_pending,
			SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount END) AS total_paid`).
		Joins("LEFT JOIN invoices ON invoices.customer_id = customers.id").
		Scopes(SearchPredicate(term)).
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the unfiltered number of customers.
func (r *CustomerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Count(&count).Error
	return count, err
}
