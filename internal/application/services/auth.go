package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"donations-api/internal/application/ports"
	domain "donations-api/internal/domain/user"
	"donations-api/internal/infrastructure/jwt"
	"donations-api/internal/infrastructure/mq"
	"donations-api/internal/infrastructure/password"
	"donations-api/internal/infrastructure/usercode"
	"donations-api/internal/interface/api/rest/dto/user"
)

var (
	// ErrInvalidInput: caller error, not retryable without correction.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned for unknown correo AND for a wrong
	// password. One error for both on purpose: distinct answers would let a
	// caller probe which correos are registered.
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	userRepository domain.Repository
	hasher         *password.Hasher
	codes          *usercode.Generator
	jwtService     *jwt.Service
	tokenTTL       time.Duration
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewAuthService(
	userRepository domain.Repository,
	hasher *password.Hasher,
	codes *usercode.Generator,
	jwtService *jwt.Service,
	tokenTTL time.Duration,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		hasher:         hasher,
		codes:          codes,
		jwtService:     jwtService,
		tokenTTL:       tokenTTL,
		mq:             mq,
		mCounter:       mCounter,
	}
}

// Register assigns the role-prefixed code, hashes the password and inserts
// the user as active. No other mutation happens, so there is nothing to roll
// back on failure. The repository's ErrUserAlreadyExists passes through
// unchanged when correo or dni is taken.
func (as *AuthService) Register(ctx context.Context, u domain.User, pass string) (*domain.User, error) {
	if u.Email == "" || pass == "" || !domain.ValidRole(u.Role) {
		return nil, ErrInvalidInput
	}

	code, err := as.codes.Generate(u.Role)
	if err != nil {
		return nil, ErrInvalidInput
	}
	u.Code = code

	hash, err := as.hasher.Hash(pass)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = &hash
	u.Status = domain.StatusActive

	uRet, err := as.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		as.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPost,
			UserID:  uRet.UUID.String(),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	as.mCounter.WithLabelValues("user_registered_total").Inc()

	return uRet, nil
}

// Login verifies credentials and issues a 1h token carrying the user's uuid
// and role. The returned user still holds the hash; response mappers strip it.
func (as *AuthService) Login(ctx context.Context, email, pass string) (string, *domain.User, error) {
	// correo is stored lowercased and trimmed; match the registration
	// normalization so the lookup is exact against the stored value
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || pass == "" {
		return "", nil, ErrInvalidInput
	}

	u, err := as.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || u.PasswordHash == nil || !as.hasher.Verify(pass, *u.PasswordHash) {
		as.mCounter.WithLabelValues("login_failed_total").Inc()
		return "", nil, ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(u.UUID.String(), u.Role, as.tokenTTL)
	if err != nil {
		return "", nil, ErrFailedToGenerateToken
	}

	as.mCounter.WithLabelValues("login_success_total").Inc()

	return token, u, nil
}

// ResetPassword replaces the stored hash. Tokens issued before the reset stay
// valid until they expire: there is no revocation list, by the platform's
// documented trade-off.
func (as *AuthService) ResetPassword(ctx context.Context, userUUID domain.UUID, newPassword string) error {
	if userUUID == uuid.Nil || newPassword == "" {
		return ErrInvalidInput
	}

	hash, err := as.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	affected, err := as.userRepository.UpdatePassword(ctx, userUUID, hash)
	if err != nil {
		return err
	}
	if !affected {
		return ErrUserNotFound
	}

	as.mCounter.WithLabelValues("password_reset_total").Inc()

	return nil
}
