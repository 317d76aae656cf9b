package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "donations-api/internal/domain/user"
	userDB "donations-api/internal/infrastructure/db/postgres/user"
	"donations-api/internal/infrastructure/jwt"
	"donations-api/internal/infrastructure/mq"
	"donations-api/internal/infrastructure/password"
	"donations-api/internal/infrastructure/usercode"
)

type FakeRepository struct {
	FetchUserByIDFunc    func(ctx context.Context, uuid domain.UUID) (*domain.User, error)
	FetchUserByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FetchUsersByRoleFunc func(ctx context.Context, role string) (domain.Users, error)
	CreateUserFunc       func(ctx context.Context, req domain.User) (*domain.User, error)
	UpdateUserFunc       func(ctx context.Context, req domain.User) (*domain.User, error)
	UpdatePasswordFunc   func(ctx context.Context, uuid domain.UUID, passwordHash string) (bool, error)
	UpdatePhotoFunc      func(ctx context.Context, uuid domain.UUID, photoURL string) (*domain.User, error)
	DeleteUserFunc       func(ctx context.Context, uuid domain.UUID) (*domain.User, error)
}

func (f *FakeRepository) FetchUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByIDFunc(ctx, uuid)
}
func (f *FakeRepository) FetchUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *FakeRepository) FetchUserByCode(ctx context.Context, code string) (*domain.User, error) {
	return nil, errors.New("not used")
}
func (f *FakeRepository) FetchUserByNationalID(ctx context.Context, nationalID string) (*domain.User, error) {
	return nil, errors.New("not used")
}
func (f *FakeRepository) FetchUsers(ctx context.Context, page int) (domain.Users, error) {
	return nil, errors.New("not used")
}
func (f *FakeRepository) FetchUsersByRole(ctx context.Context, role string) (domain.Users, error) {
	if f.FetchUsersByRoleFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUsersByRoleFunc(ctx, role)
}
func (f *FakeRepository) FetchUsersByCity(ctx context.Context, city string) (domain.Users, error) {
	return nil, errors.New("not used")
}
func (f *FakeRepository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *FakeRepository) UpdateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateUserFunc(ctx, req)
}
func (f *FakeRepository) UpdatePassword(ctx context.Context, uuid domain.UUID, passwordHash string) (bool, error) {
	if f.UpdatePasswordFunc == nil {
		return false, errors.New("not used")
	}
	return f.UpdatePasswordFunc(ctx, uuid, passwordHash)
}
func (f *FakeRepository) UpdatePhoto(ctx context.Context, uuid domain.UUID, photoURL string) (*domain.User, error) {
	if f.UpdatePhotoFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdatePhotoFunc(ctx, uuid, photoURL)
}
func (f *FakeRepository) DeleteUser(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	if f.DeleteUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteUserFunc(ctx, uuid)
}

type FakeRabbitMQ struct {
	in chan mq.Event
}

func newFakeRabbitMQ() *FakeRabbitMQ {
	return &FakeRabbitMQ{in: make(chan mq.Event, 16)}
}

func (f *FakeRabbitMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeRabbitMQ) Init() error                                   { return nil }
func (f *FakeRabbitMQ) PublisherWorker(ctx context.Context)           {}
func (f *FakeRabbitMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *FakeRabbitMQ) GetConn() *amqp091.Connection                  { return nil }

func newTestCounter() *prometheus.CounterVec {
	// plain NewCounterVec: promauto would collide on the default registry
	// across test cases
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "donations_test", Name: "general_counters"},
		[]string{"result"},
	)
}

func newAuthService(repo domain.Repository, rmq *FakeRabbitMQ) *AuthService {
	return NewAuthService(
		repo,
		password.New(bcrypt.MinCost),
		usercode.New(rand.NewSource(1)),
		jwt.New("test-secret"),
		time.Hour,
		rmq,
		newTestCounter(),
	).(*AuthService)
}

func validRegisterUser() domain.User {
	return domain.User{
		Names:      "Ana",
		Surnames:   "García",
		NationalID: "12345678",
		Email:      "ana@example.com",
		Phone:      "+528180000000",
		City:       "Monterrey",
		Role:       domain.RoleDonor,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid role fails without touching the store", func(t *testing.T) {
		createCalled := false
		repo := &FakeRepository{
			CreateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
				createCalled = true
				return &req, nil
			},
		}
		as := newAuthService(repo, newFakeRabbitMQ())

		u := validRegisterUser()
		u.Role = "Voluntario"

		got, err := as.Register(ctx, u, "secret123")
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, got)
		assert.False(t, createCalled, "store must not be touched on invalid role")
	})

	t.Run("missing email or password fails", func(t *testing.T) {
		as := newAuthService(&FakeRepository{}, newFakeRabbitMQ())

		u := validRegisterUser()
		u.Email = ""
		_, err := as.Register(ctx, u, "secret123")
		require.ErrorIs(t, err, ErrInvalidInput)

		u = validRegisterUser()
		_, err = as.Register(ctx, u, "")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("success assigns code, hash and active status", func(t *testing.T) {
		var inserted domain.User
		repo := &FakeRepository{
			CreateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
				inserted = req
				out := req
				out.UUID = uuid.New()
				return &out, nil
			},
		}
		rmq := newFakeRabbitMQ()
		as := newAuthService(repo, rmq)

		got, err := as.Register(ctx, validRegisterUser(), "secret123")
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Regexp(t, `^D-\d{4}$`, got.Code)
		assert.Equal(t, domain.StatusActive, inserted.Status)
		require.NotNil(t, inserted.PasswordHash)
		assert.NotEqual(t, "secret123", *inserted.PasswordHash)
		assert.True(t, password.New(bcrypt.MinCost).Verify("secret123", *inserted.PasswordHash))

		// registration event goes to the broker without the hash
		select {
		case e := <-rmq.GetInputChan():
			assert.Equal(t, got.UUID.String(), e.UserID)
			assert.Equal(t, got.Code, e.Payload.Code)
		default:
			t.Fatal("expected a registration event")
		}
	})

	t.Run("beneficiary gets B prefix", func(t *testing.T) {
		repo := &FakeRepository{
			CreateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
				out := req
				out.UUID = uuid.New()
				return &out, nil
			},
		}
		as := newAuthService(repo, newFakeRabbitMQ())

		u := validRegisterUser()
		u.Role = domain.RoleBeneficiary

		got, err := as.Register(ctx, u, "secret123")
		require.NoError(t, err)
		assert.Regexp(t, `^B-\d{4}$`, got.Code)
	})

	t.Run("duplicate correo or dni maps to conflict sentinel", func(t *testing.T) {
		repo := &FakeRepository{
			CreateUserFunc: func(ctx context.Context, req domain.User) (*domain.User, error) {
				return nil, userDB.ErrUserAlreadyExists
			},
		}
		as := newAuthService(repo, newFakeRabbitMQ())

		_, err := as.Register(ctx, validRegisterUser(), "secret123")
		require.ErrorIs(t, err, userDB.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hasher := password.New(bcrypt.MinCost)
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	stored := &domain.User{
		UUID:         uuid.New(),
		Email:        "ana@example.com",
		Role:         domain.RoleDonor,
		PasswordHash: &hash,
	}

	repoWith := func(u *domain.User) *FakeRepository {
		return &FakeRepository{
			FetchUserByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				if u != nil && email == u.Email {
					return u, nil
				}
				return nil, nil
			},
		}
	}

	t.Run("success returns verifiable token and user", func(t *testing.T) {
		as := newAuthService(repoWith(stored), newFakeRabbitMQ())

		token, u, err := as.Login(ctx, "ana@example.com", "secret123")
		require.NoError(t, err)
		require.NotNil(t, u)
		require.NotEmpty(t, token)

		claims, err := jwt.New("test-secret").ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, stored.UUID.String(), claims.UserID)
		assert.Equal(t, domain.RoleDonor, claims.Role)
	})

	t.Run("unknown correo and wrong password yield one identical error", func(t *testing.T) {
		as := newAuthService(repoWith(stored), newFakeRabbitMQ())

		_, _, errUnknown := as.Login(ctx, "nobody@example.com", "secret123")
		_, _, errWrongPass := as.Login(ctx, "ana@example.com", "wrongpass")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		assert.Equal(t, errUnknown, errWrongPass, "both failure causes must be indistinguishable")
	})

	t.Run("correo matches regardless of case and padding", func(t *testing.T) {
		// registration stores the correo lowercased and trimmed; login must
		// normalize the same way or the exact-match lookup misses
		as := newAuthService(repoWith(stored), newFakeRabbitMQ())

		token, u, err := as.Login(ctx, "  Ana@Example.COM ", "secret123")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.NotEmpty(t, token)
	})

	t.Run("missing fields fail as invalid input", func(t *testing.T) {
		as := newAuthService(repoWith(stored), newFakeRabbitMQ())

		_, _, err := as.Login(ctx, "", "secret123")
		require.ErrorIs(t, err, ErrInvalidInput)

		_, _, err = as.Login(ctx, "ana@example.com", "")
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("store error surfaces as-is", func(t *testing.T) {
		dbErr := errors.New("db error")
		repo := &FakeRepository{
			FetchUserByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
				return nil, dbErr
			},
		}
		as := newAuthService(repo, newFakeRabbitMQ())

		_, _, err := as.Login(ctx, "ana@example.com", "secret123")
		require.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes before writing", func(t *testing.T) {
		var writtenHash string
		repo := &FakeRepository{
			UpdatePasswordFunc: func(ctx context.Context, uuid domain.UUID, passwordHash string) (bool, error) {
				writtenHash = passwordHash
				return true, nil
			},
		}
		as := newAuthService(repo, newFakeRabbitMQ())

		err := as.ResetPassword(ctx, uuid.New(), "newpass456")
		require.NoError(t, err)
		assert.NotEqual(t, "newpass456", writtenHash)
		assert.True(t, password.New(bcrypt.MinCost).Verify("newpass456", writtenHash))
	})

	t.Run("zero affected rows means not found", func(t *testing.T) {
		repo := &FakeRepository{
			UpdatePasswordFunc: func(ctx context.Context, uuid domain.UUID, passwordHash string) (bool, error) {
				return false, nil
			},
		}
		as := newAuthService(repo, newFakeRabbitMQ())

		err := as.ResetPassword(ctx, uuid.New(), "newpass456")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("missing input fails", func(t *testing.T) {
		as := newAuthService(&FakeRepository{}, newFakeRabbitMQ())

		require.ErrorIs(t, as.ResetPassword(ctx, uuid.Nil, "newpass456"), ErrInvalidInput)
		require.ErrorIs(t, as.ResetPassword(ctx, uuid.New(), ""), ErrInvalidInput)
	})
}

// memRepository keeps a single-user store for the register/login/reset round
// trip.
type memRepository struct {
	FakeRepository
	byEmail map[string]*domain.User
}

func newMemRepository() *memRepository {
	m := &memRepository{byEmail: make(map[string]*domain.User)}
	m.CreateUserFunc = func(ctx context.Context, req domain.User) (*domain.User, error) {
		if _, ok := m.byEmail[req.Email]; ok {
			return nil, userDB.ErrUserAlreadyExists
		}
		u := req
		u.UUID = uuid.New()
		m.byEmail[u.Email] = &u
		return &u, nil
	}
	m.FetchUserByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return m.byEmail[email], nil
	}
	m.UpdatePasswordFunc = func(ctx context.Context, id domain.UUID, passwordHash string) (bool, error) {
		for _, u := range m.byEmail {
			if u.UUID == id {
				u.PasswordHash = &passwordHash
				return true, nil
			}
		}
		return false, nil
	}
	return m
}

func TestAuthService_RegisterLoginResetRoundTrip(t *testing.T) {
	ctx := context.Background()
	as := newAuthService(newMemRepository(), newFakeRabbitMQ())

	registered, err := as.Register(ctx, validRegisterUser(), "secret123")
	require.NoError(t, err)
	assert.Regexp(t, `^D-\d{4}$`, registered.Code)

	token, _, err := as.Login(ctx, "ana@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// the correo the user typed at registration, before normalization
	token, _, err = as.Login(ctx, "Ana@Example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, _, err = as.Login(ctx, "ana@example.com", "wrongpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// duplicate registration conflicts
	_, err = as.Register(ctx, validRegisterUser(), "secret123")
	require.ErrorIs(t, err, userDB.ErrUserAlreadyExists)

	// reset swaps which password logs in
	require.NoError(t, as.ResetPassword(ctx, registered.UUID, "newpass456"))

	_, _, err = as.Login(ctx, "ana@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	token, _, err = as.Login(ctx, "ana@example.com", "newpass456")
	require.NoError(t, err)
	require.NotEmpty(t, token)
}
