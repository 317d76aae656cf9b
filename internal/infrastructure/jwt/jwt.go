package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Service struct {
	jwtSecret string
	now       func() time.Time
}

func New(jwtSecret string) *Service {
	return &Service{jwtSecret: jwtSecret, now: time.Now}
}

// NewWithClock injects the time source used both for expiry stamping and
// validation.
func NewWithClock(jwtSecret string, now func() time.Time) *Service {
	return &Service{jwtSecret: jwtSecret, now: now}
}

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"rol"`
	jwt.RegisteredClaims
}

func (s *Service) GenerateJWT(userID, role string, expiresIn time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.now().Add(expiresIn)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}
