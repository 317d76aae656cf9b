package auth

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"donations-api/internal/domain/user"
)

func ToDomainUser(r RegisterRequest) user.User {
	var u = user.User{
		Names:      norm.NFC.String(strings.TrimSpace(r.Names)),
		Surnames:   norm.NFC.String(strings.TrimSpace(r.Surnames)),
		NationalID: strings.TrimSpace(r.NationalID),
		Email:      strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:      strings.TrimSpace(r.Phone),
		Address:    r.Address,
		Street:     r.Street,
		City:       norm.NFC.String(r.City),
		State:      norm.NFC.String(r.State),
		Role:       r.Role,
	}

	return u
}
