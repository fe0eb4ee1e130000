package models

import "time"

// User represents a household member earning and spending points.
// Balance is derived state: it must always equal the sum of the user's
// transaction values, and only the ledger service may change it.
type User struct {
	UserID     uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	FullName   string    `gorm:"size:255;not null" json:"full_name"`
	Balance    int       `gorm:"not null;default:0" json:"balance"`
	AvatarPath string    `gorm:"size:500" json:"avatar_path"`
	CreatedAt  time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

// CashBalance is the optional real-money balance kept per user,
// separate from the points ledger.
type CashBalance struct {
	UserID      uint    `gorm:"column:user_id;primaryKey" json:"user_id"`
	CashBalance float64 `gorm:"not null;default:0" json:"cash_balance"`
}

func (CashBalance) TableName() string { return "cash_balances" }
