package models

import "time"

// Backup tracks a database snapshot file on disk.
type Backup struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FileName  string    `gorm:"size:255;not null" json:"file_name"`
	FilePath  string    `gorm:"size:500;not null" json:"file_path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func (Backup) TableName() string { return "backups" }
