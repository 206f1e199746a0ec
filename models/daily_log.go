package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealBreakfast = "BREAKFAST"
	MealLunch     = "LUNCH"
	MealDinner    = "DINNER"
	MealSnack     = "SNACK"
)

// DailyLog is one food entry eaten by a user. Quantity is in servings.
type DailyLog struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"userId"`
	FoodID    string    `gorm:"type:uuid;index;not null" json:"foodId"`
	Food      FoodItem  `gorm:"foreignKey:FoodID" json:"food"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	MealType  string    `gorm:"size:16;not null" json:"mealType"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l *DailyLog) BeforeCreate(tx *gorm.DB) error {
	newID(&l.ID)
	return nil
}
