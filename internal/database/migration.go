package database

import (
	"fmt"

	"github.com/elmerohueso/FamilyChores/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.CashBalance{},
		&models.Chore{},
		&models.Transaction{},
		&models.Setting{},
		&models.SystemLog{},
		&models.Backup{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
