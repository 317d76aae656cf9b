package user

import (
	"golang.org/x/text/unicode/norm"

	"donations-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		UUID:       uDomain.UUID,
		Names:      uDomain.Names,
		Surnames:   uDomain.Surnames,
		NationalID: uDomain.NationalID,
		Code:       uDomain.Code,
		Email:      uDomain.Email,
		Phone:      uDomain.Phone,
		Address:    uDomain.Address,
		Street:     uDomain.Street,
		City:       uDomain.City,
		State:      uDomain.State,
		Role:       uDomain.Role,
		Photo:      uDomain.Photo,
		Status:     uDomain.Status,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

// ToDomainUser maps a profile-edit body. Accented names arrive from clients
// in both composed and decomposed unicode forms; NFC-normalize so equality
// checks and city filters behave.
func ToDomainUser(uRequest Request) user.User {
	var u = user.User{
		Names:    norm.NFC.String(uRequest.Names),
		Surnames: norm.NFC.String(uRequest.Surnames),
		Phone:    uRequest.Phone,
		Address:  uRequest.Address,
		Street:   uRequest.Street,
		City:     norm.NFC.String(uRequest.City),
		State:    norm.NFC.String(uRequest.State),
		Photo:    uRequest.Photo,
	}

	return u
}
