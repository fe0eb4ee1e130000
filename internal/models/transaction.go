package models

import "time"

// Transaction is one append-only ledger row. Positive values are points
// earned, negative values are points redeemed. ChoreID is nil for manual
// adjustments and redemptions. Rows are never updated or deleted.
type Transaction struct {
	TransactionID uint      `gorm:"column:transaction_id;primaryKey" json:"transaction_id"`
	UserID        uint      `gorm:"column:user_id;index;not null" json:"user_id"`
	ChoreID       *uint     `gorm:"column:chore_id;index" json:"chore_id"`
	Value         int       `gorm:"not null" json:"value"`
	Timestamp     time.Time `gorm:"index;not null" json:"timestamp"`
}

func (Transaction) TableName() string { return "transactions" }
