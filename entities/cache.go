package entities

import "time"

// CacheEntry is one row of the durable key-value cache. Planner lists are
// stored as a single JSON value per user key.
type CacheEntry struct {
	Key       string `gorm:"primaryKey" json:"key"`
	Value     string `json:"value"`
	UpdatedAt time.Time
}

type ReminderLog struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Summary   string `json:"summary"`
	TaskCount int    `json:"task_count"`
	CreatedAt time.Time
}
