package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyMetric is one row per user per calendar day (local midnight).
type DailyMetric struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string    `gorm:"type:uuid;not null;uniqueIndex:idx_metric_user_date" json:"userId"`
	Date           time.Time `gorm:"not null;uniqueIndex:idx_metric_user_date" json:"date"`
	WeightRecorded *float64  `json:"weightRecorded"` // kg
	WaterIntake    float64   `json:"waterIntake"`    // liters
	SleepMinutes   int       `json:"sleepMinutes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (m *DailyMetric) BeforeCreate(tx *gorm.DB) error {
	newID(&m.ID)
	return nil
}
