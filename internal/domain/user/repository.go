package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, uuid UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	FetchUserByCode(ctx context.Context, code string) (*User, error)
	FetchUserByNationalID(ctx context.Context, nationalID string) (*User, error)
	FetchUsers(ctx context.Context, page int) (Users, error)
	FetchUsersByRole(ctx context.Context, role string) (Users, error)
	FetchUsersByCity(ctx context.Context, city string) (Users, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	UpdatePassword(ctx context.Context, uuid UUID, passwordHash string) (bool, error)
	UpdatePhoto(ctx context.Context, uuid UUID, photoURL string) (*User, error)
	DeleteUser(ctx context.Context, uuid UUID) (*User, error)
}
