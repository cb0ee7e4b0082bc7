package models

// Revenue is an append-only monthly snapshot; it has no relation to
// customers or invoices.
type Revenue struct {
	Month   string `gorm:"primaryKey" json:"month"`
	Revenue int64  `gorm:"not null" json:"revenue"`
}
