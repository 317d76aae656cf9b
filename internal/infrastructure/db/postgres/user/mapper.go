package user

import (
	domain "donations-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:         model.UUID,
		Names:        model.Names,
		Surnames:     model.Surnames,
		NationalID:   model.NationalID,
		Code:         model.Code,
		Email:        model.Email,
		Phone:        model.Phone,
		Address:      model.Address,
		Street:       model.Street,
		City:         model.City,
		State:        model.State,
		Role:         model.Role,
		Photo:        model.Photo,
		PasswordHash: model.PasswordHash,
		Status:       model.Status,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models *Users) domain.Users {
	us := make(domain.Users, len(*models))
	for idx, u := range *models {
		us[idx] = fromDBModel(u)
	}

	return us
}
