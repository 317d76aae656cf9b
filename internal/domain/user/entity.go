package user

import (
	"time"

	"github.com/google/uuid"
)

// Role values as stored and exposed on the wire. The platform predates the
// Go rewrite, so the Spanish contract is kept.
const (
	RoleDonor       = "Donante"
	RoleBeneficiary = "Beneficiario"
)

const StatusActive = 1

type (
	ID   uint64
	UUID = uuid.UUID
	User struct {
		UUID       UUID
		Names      string
		Surnames   string
		NationalID string
		Code       string
		Email      string
		Phone      string
		Address    string
		Street     string
		City       string
		State      string
		Role       string
		Photo      *string
		// PasswordHash never leaves the service layer; response mappers drop it.
		PasswordHash *string
		Status       int

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)

func ValidRole(role string) bool {
	return role == RoleDonor || role == RoleBeneficiary
}
