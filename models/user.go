package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           string       `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"not null" json:"-"`
	Name         string       `gorm:"not null" json:"name"`
	Avatar       *string      `json:"avatar"`
	Role         string       `gorm:"size:16;not null" json:"role"` // "user" | "admin"
	Profile      *UserProfile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
