package models

import "time"

// Chore is a chore definition referenced (never owned) by transactions.
// Repeat is nil when the chore has no recurrence tracking; otherwise it
// holds a recurrence tag such as "daily", "weekly" or "as_needed".
type Chore struct {
	ChoreID          uint       `gorm:"column:chore_id;primaryKey" json:"chore_id"`
	Chore            string     `gorm:"size:255;not null" json:"chore"`
	PointValue       int        `gorm:"not null" json:"point_value"`
	Repeat           *string    `gorm:"size:50" json:"repeat"`
	LastCompleted    *time.Time `json:"last_completed"`
	RequiresApproval bool       `gorm:"not null;default:false" json:"requires_approval"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (Chore) TableName() string { return "chores" }

// RepeatAsNeeded is the default recurrence tag for chores created
// without an explicit policy.
const RepeatAsNeeded = "as_needed"
