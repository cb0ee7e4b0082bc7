package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Invoice amounts are integer minor currency units. Status is free text;
// aggregation treats anything other than "pending"/"paid" as neither.
type Invoice struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index;not null" json:"customer_id"`
	Amount     int64           `gorm:"index;not null" json:"amount"`
	Status     string          `gorm:"index;not null" json:"status"`
	Date       *datatypes.Date `gorm:"type:date" json:"date"`
}
