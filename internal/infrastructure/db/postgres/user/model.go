package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	User struct {
		ID           uint64
		UUID         uuid.UUID
		Names        string
		Surnames     string
		NationalID   string
		Code         string
		Email        string
		Phone        string
		Address      string
		Street       string
		City         string
		State        string
		Role         string
		Photo        *string
		PasswordHash *string
		Status       int

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
