// Package ledger owns the points ledger: it records point-affecting
// transactions and keeps every user's balance equal to the sum of that
// user's transaction values.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/elmerohueso/FamilyChores/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrChoreNotFound = errors.New("chore not found")
)

// InsufficientBalanceError rejects a debit that would drive the user's
// balance below zero. Balance is the balance at the time of rejection.
type InsufficientBalanceError struct {
	Balance int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient points: user has %d points", e.Balance)
}

// Service validates and records ledger transactions.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// RecordTransaction appends one transaction and applies its value to the
// user's balance as a single database transaction. Debits are guarded:
// the balance update only applies while the resulting balance stays
// non-negative, so two concurrent redemptions can never both pass the
// check (the losing one fails with InsufficientBalanceError).
func (s *Service) RecordTransaction(userID uint, choreID *uint, value int, timestamp time.Time) (uint, error) {
	var txn models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("load user: %w", err)
		}

		if choreID != nil {
			var count int64
			if err := tx.Model(&models.Chore{}).Where("chore_id = ?", *choreID).Count(&count).Error; err != nil {
				return fmt.Errorf("check chore: %w", err)
			}
			if count == 0 {
				return ErrChoreNotFound
			}
		}

		if value < 0 {
			// The WHERE clause re-validates the balance at update time,
			// so the invariant holds even if another request changed the
			// balance after the read above.
			res := tx.Model(&models.User{}).
				Where("user_id = ? AND balance + ? >= 0", userID, value).
				Update("balance", gorm.Expr("balance + ?", value))
			if res.Error != nil {
				return fmt.Errorf("debit balance: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				var current models.User
				if err := tx.First(&current, "user_id = ?", userID).Error; err != nil {
					return fmt.Errorf("reload user: %w", err)
				}
				return &InsufficientBalanceError{Balance: current.Balance}
			}
		} else {
			if err := tx.Model(&models.User{}).
				Where("user_id = ?", userID).
				Update("balance", gorm.Expr("balance + ?", value)).Error; err != nil {
				return fmt.Errorf("credit balance: %w", err)
			}
		}

		txn = models.Transaction{
			UserID:    userID,
			ChoreID:   choreID,
			Value:     value,
			Timestamp: timestamp,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		// completing a chore updates its recurrence bookkeeping
		if choreID != nil && value > 0 {
			if err := tx.Model(&models.Chore{}).
				Where("chore_id = ?", *choreID).
				Update("last_completed", timestamp).Error; err != nil {
				return fmt.Errorf("touch chore: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return txn.TransactionID, nil
}

// TransactionRecord is a ledger row enriched with display names.
// UserName and ChoreName are nil when the referenced row is absent
// (chore-less adjustments, removed references).
type TransactionRecord struct {
	TransactionID uint      `json:"transaction_id"`
	UserID        uint      `json:"user_id"`
	ChoreID       *uint     `json:"chore_id"`
	Value         int       `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	UserName      *string   `json:"user_name"`
	ChoreName     *string   `json:"chore_name"`
}

// ListTransactions returns the whole ledger, newest first. Ties on
// timestamp fall back to insertion order (transaction_id) so that rows
// recorded in the same instant still list most-recent-first.
func (s *Service) ListTransactions() ([]TransactionRecord, error) {
	records := make([]TransactionRecord, 0)
	err := s.db.Model(&models.Transaction{}).
		Select("transactions.transaction_id, transactions.user_id, transactions.chore_id, transactions.value, transactions.timestamp, users.full_name AS user_name, chores.chore AS chore_name").
		Joins("LEFT JOIN users ON users.user_id = transactions.user_id").
		Joins("LEFT JOIN chores ON chores.chore_id = transactions.chore_id").
		Order("transactions.timestamp DESC, transactions.transaction_id DESC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return records, nil
}

// UserBalance reads a user's current balance.
func (s *Service) UserBalance(userID uint) (int, error) {
	var user models.User
	if err := s.db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("load user: %w", err)
	}
	return user.Balance, nil
}
