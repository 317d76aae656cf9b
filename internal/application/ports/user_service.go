package ports

import (
	"context"
	"mime/multipart"

	"donations-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindUserByCode(ctx context.Context, code string) (*user.User, error)
	FindUserByNationalID(ctx context.Context, nationalID string) (*user.User, error)
	FindUsers(ctx context.Context, page int) (user.Users, error)
	FindUsersByRole(ctx context.Context, role string) (user.Users, error)
	FindUsersByCity(ctx context.Context, city string) (user.Users, error)
	UpdateUser(ctx context.Context, u user.User) (*user.User, error)
	UpdateUserPhoto(ctx context.Context, uuid user.UUID, in *multipart.FileHeader) (*user.User, error)
	DeleteUser(ctx context.Context, uuid user.UUID) error
}
