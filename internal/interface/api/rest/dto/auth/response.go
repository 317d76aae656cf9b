package auth

import "github.com/google/uuid"

type RegisterResponse struct {
	UUID uuid.UUID `json:"uuid"`
	Code string    `json:"codigo"`
}
