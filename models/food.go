package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodItem is a catalog entry. Macros are per serving.
// Public items come from admins or the seed; private items belong to CreatedBy.
type FoodItem struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;index" json:"name"`
	Brand       string    `json:"brand"`
	ServingSize string    `gorm:"not null" json:"servingSize"`
	Calories    float64   `gorm:"not null" json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fats        float64   `json:"fats"`
	Type        string    `gorm:"size:32;index" json:"type"` // "local" | "fastfood" | "snack" | ...
	Image       string    `json:"image"`
	IsPublic    bool      `gorm:"index" json:"isPublic"`
	CreatedBy   *string   `gorm:"type:uuid;index" json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	newID(&f.ID)
	return nil
}

func (f *FoodItem) OwnedBy(userID string) bool {
	return f.CreatedBy != nil && *f.CreatedBy == userID
}
