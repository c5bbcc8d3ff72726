package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ilo_monitor/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenTTL = time.Hour
	tokenIssuer     = "ilo_monitor"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
	ErrEmptyUsername   = errors.New("username is empty")
	ErrEmptyPassword   = errors.New("password is empty")
)

// IsCredentialError reports whether err means the operator supplied wrong
// credentials, as opposed to a storage failure.
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvalidPassword)
}

// AuthService registers operators and issues the bearer tokens that guard
// every controller command.
type AuthService struct {
	users    repository.Authorization
	key      []byte
	tokenTTL time.Duration
}

// NewAuthService signs tokens with HS256 using signingKey. A non-positive
// ttl means one hour.
func NewAuthService(users repository.Authorization, signingKey string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{users: users, key: []byte(signingKey), tokenTTL: ttl}
}

// Claims is the token payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// SignUp stores a new operator with a bcrypt hash of password. Surrounding
// blanks in the username are dropped.
func (s *AuthService) SignUp(ctx context.Context, username, password string) (int, error) {
	name := strings.TrimSpace(username)
	switch {
	case name == "":
		return 0, ErrEmptyUsername
	case strings.TrimSpace(password) == "":
		return 0, ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password of %q: %w", name, err)
	}
	return s.users.Create(ctx, name, string(hash))
}

// GenerateToken checks the operator's password and returns a signed token.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	switch {
	case err != nil:
		return "", err
	case u == nil:
		return "", ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidPassword
	}
	return s.issueToken(u.ID)
}

// ParseToken validates an HS256 token from this service and returns the
// operator id it carries.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(accessToken, claims, s.keyFor,
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

func (s *AuthService) keyFor(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
	}
	return s.key, nil
}

func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}
