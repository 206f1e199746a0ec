package models

import "github.com/google/uuid"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
