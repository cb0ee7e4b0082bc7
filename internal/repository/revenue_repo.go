package repository

import (
	"financial-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// GetAll returns every monthly revenue snapshot.
func (r *RevenueRepository) GetAll() ([]models.Revenue, error) {
	var revenues []models.Revenue
	err := r.db.Find(&revenues).Error
	return revenues, err
}
