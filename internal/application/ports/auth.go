package ports

import (
	"context"

	"donations-api/internal/domain/user"
)

type Auth interface {
	Register(ctx context.Context, u user.User, password string) (*user.User, error)
	Login(ctx context.Context, email, password string) (string, *user.User, error)
	ResetPassword(ctx context.Context, uuid user.UUID, newPassword string) error
}
