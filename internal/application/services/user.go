package services

import (
	"context"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"donations-api/internal/application/ports"
	domain "donations-api/internal/domain/user"
	"donations-api/internal/infrastructure/mq"
	"donations-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	photos         ports.PhotoStorage
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	photos ports.PhotoStorage,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		photos:         photos,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	return us.userRepository.FetchUserByID(ctx, uuid)
}

func (us *UserService) FindUserByCode(ctx context.Context, code string) (*domain.User, error) {
	return us.userRepository.FetchUserByCode(ctx, code)
}

func (us *UserService) FindUserByNationalID(ctx context.Context, nationalID string) (*domain.User, error) {
	return us.userRepository.FetchUserByNationalID(ctx, nationalID)
}

func (us *UserService) FindUsers(ctx context.Context, page int) (domain.Users, error) {
	return us.userRepository.FetchUsers(ctx, page)
}

func (us *UserService) FindUsersByRole(ctx context.Context, role string) (domain.Users, error) {
	if !domain.ValidRole(role) {
		return nil, ErrInvalidInput
	}
	return us.userRepository.FetchUsersByRole(ctx, role)
}

func (us *UserService) FindUsersByCity(ctx context.Context, city string) (domain.Users, error) {
	return us.userRepository.FetchUsersByCity(ctx, city)
}

// UpdateUser edits profile fields only. Role, correo and password are out of
// reach here: role is immutable, password goes through ResetPassword.
func (us *UserService) UpdateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPut,
			UserID:  uRet.UUID.String(),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateUserPhoto(ctx context.Context, userUUID domain.UUID, in *multipart.FileHeader) (*domain.User, error) {
	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	key, err := us.photos.Save(f, in.Filename)
	if err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.UpdatePhoto(ctx, userUUID, us.photos.GetPublicURL(key))
	if err != nil || uRet == nil {
		// no row took the URL; don't leave the file orphaned on disk
		_ = us.photos.Remove(key)
		return nil, err
	}

	us.mCounter.WithLabelValues("user_photo_updated_total").Inc()

	return uRet, nil
}

// DeleteUser removes the row physically; there is no soft delete and no way
// back. Outstanding tokens for the user keep working until expiry.
func (us *UserService) DeleteUser(ctx context.Context, userUUID domain.UUID) error {
	u, err := us.userRepository.DeleteUser(ctx, userUUID)
	if err != nil {
		return err
	}
	if u != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodDelete,
			UserID:  u.UUID.String(),
			Payload: user.ToResponseUser(*u),
		}
		us.mCounter.WithLabelValues("user_deleted_total").Inc()
	}

	return nil
}
