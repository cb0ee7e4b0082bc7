package repository

import (
	"fmt"
	"testing"
	"time"

	"financial-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Invoice{}, &models.Revenue{}))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email string) models.Customer {
	t.Helper()
	customer := models.Customer{ID: uuid.New(), Name: name, Email: email}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedInvoice(t *testing.T, db *gorm.DB, customerID uuid.UUID, amount int64, status, date string) models.Invoice {
	t.Helper()
	invoice := models.Invoice{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
	}
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		d := datatypes.Date(parsed)
		invoice.Date = &d
	}
	require.NoError(t, db.Create(&invoice).Error)
	return invoice
}
