package models

import "time"

// SystemLog records noteworthy operations (mutating API calls, backups)
// for later inspection.
type SystemLog struct {
	LogID     uint      `gorm:"column:log_id;primaryKey" json:"log_id"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
	LogType   string    `gorm:"size:100;index" json:"log_type"`
	Message   string    `gorm:"type:text" json:"message"`
	Details   string    `gorm:"type:text" json:"details"`
	Status    string    `gorm:"size:50" json:"status"`
	IPAddress string    `gorm:"size:50" json:"ip_address"`
}

func (SystemLog) TableName() string { return "system_log" }
