package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile holds body metrics and the daily targets derived from them.
type UserProfile struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string    `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Gender         string    `gorm:"size:8;not null" json:"gender"` // "male" | "female"
	DateOfBirth    time.Time `gorm:"not null" json:"dateOfBirth"`
	Height         float64   `gorm:"not null" json:"height"` // cm
	Weight         float64   `gorm:"not null" json:"weight"` // kg
	MainGoal       string    `gorm:"size:16;not null" json:"mainGoal"` // "lose" | "maintain" | "gain"
	TargetCalories int       `json:"targetCalories"`
	TargetProtein  int       `json:"targetProtein"`
	TargetCarbs    int       `json:"targetCarbs"`
	TargetFats     int       `json:"targetFats"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}
