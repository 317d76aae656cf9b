package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "donations-api/internal/domain/user"
	"donations-api/internal/infrastructure/db/postgres"
)

// ErrUserAlreadyExists maps the unique constraints on correo and dni.
var ErrUserAlreadyExists = errors.New("user with this correo or dni already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*User, error) {
	u := new(User)
	err := s.Scan(
		&u.ID,
		&u.UUID,
		&u.Names,
		&u.Surnames,
		&u.NationalID,
		&u.Code,
		&u.Email,
		&u.Phone,
		&u.Address,
		&u.Street,
		&u.City,
		&u.State,
		&u.Role,
		&u.Photo,
		&u.PasswordHash,
		&u.Status,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) queryOne(ctx context.Context, sql string, args ...any) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) queryMany(ctx context.Context, sql string, args ...any) (domain.Users, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	return r.queryOne(ctx, SelectUserByID, uuid.String())
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.queryOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) FetchUserByCode(ctx context.Context, code string) (*domain.User, error) {
	return r.queryOne(ctx, SelectUserByCode, code)
}

func (r *Repository) FetchUserByNationalID(ctx context.Context, nationalID string) (*domain.User, error) {
	return r.queryOne(ctx, SelectUserByNationalID, nationalID)
}

func (r *Repository) FetchUsers(ctx context.Context, page int) (domain.Users, error) {
	return r.queryMany(ctx, SelectUsers, page)
}

func (r *Repository) FetchUsersByRole(ctx context.Context, role string) (domain.Users, error) {
	return r.queryMany(ctx, SelectUsersByRole, role)
}

func (r *Repository) FetchUsersByCity(ctx context.Context, city string) (domain.Users, error) {
	return r.queryMany(ctx, SelectUsersByCity, city)
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		req.Names, req.Surnames, req.NationalID, req.Code, req.Email, req.Phone,
		req.Address, req.Street, req.City, req.State, req.Role, req.Photo,
		req.PasswordHash, req.Status,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, UpdateUserByUUID,
		req.Names, req.Surnames, req.Phone, req.Address, req.Street, req.City,
		req.State, req.Photo, req.UUID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdatePassword(ctx context.Context, uuid domain.UUID, passwordHash string) (bool, error) {
	tag, err := r.db.Exec(ctx, UpdatePasswordByUUID, passwordHash, uuid)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) UpdatePhoto(ctx context.Context, uuid domain.UUID, photoURL string) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, UpdatePhotoByUUID, photoURL, uuid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) DeleteUser(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, DeleteUserByUUID, uuid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}
