package user

import (
	"github.com/google/uuid"
)

type (
	User struct {
		UUID       uuid.UUID `json:"uuid"`
		Names      string    `json:"nombres"`
		Surnames   string    `json:"apellidos"`
		NationalID string    `json:"dni"`
		Code       string    `json:"codigo"`
		Email      string    `json:"correo"`
		Phone      string    `json:"telefono"`
		Address    string    `json:"direccion"`
		Street     string    `json:"calle"`
		City       string    `json:"ciudad"`
		State      string    `json:"estado"`
		Role       string    `json:"rol"`
		Photo      *string   `json:"foto"`
		Status     int       `json:"estatus"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
