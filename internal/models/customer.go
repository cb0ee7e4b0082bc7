package models

import (
	"github.com/google/uuid"
)

type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"index;not null" json:"name"`
	Email    string    `gorm:"not null" json:"email"`
	ImageURL *string   `gorm:"column:image_url" json:"image_url"`
}
