package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"ilo_monitor/internal/models"
	"ilo_monitor/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const testSigningKey = "test-signing-key"

// memAuthRepo keeps operators in a map keyed by username.
type memAuthRepo struct {
	users     map[string]*models.User
	nextID    int
	createErr error
	getErr    error
	lookups   []string
}

func newMemAuthRepo() *memAuthRepo {
	return &memAuthRepo{users: map[string]*models.User{}, nextID: 1}
}

func (m *memAuthRepo) Create(_ context.Context, username, hash string) (int, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	if _, taken := m.users[username]; taken {
		return 0, repository.ErrUsernameTaken
	}
	id := m.nextID
	m.nextID++
	m.users[username] = &models.User{ID: id, Username: username, PasswordHash: hash}
	return id, nil
}

func (m *memAuthRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.lookups = append(m.lookups, username)
	if m.getErr != nil {
		return nil, m.getErr
	}
	u, ok := m.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func newTestAuth(repo *memAuthRepo) *AuthService {
	return NewAuthService(repo, testSigningKey, time.Hour)
}

func TestAuthService_SignUpThenSignIn(t *testing.T) {
	t.Parallel()

	repo := newMemAuthRepo()
	svc := newTestAuth(repo)
	ctx := context.Background()

	id, err := svc.SignUp(ctx, "  operator ", "rack-42")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	stored := repo.users["operator"]
	if stored == nil || stored.ID != id {
		t.Fatalf("operator not stored under trimmed name: %+v", repo.users)
	}
	if stored.PasswordHash == "rack-42" {
		t.Fatalf("password stored in clear")
	}
	if cost, err := bcrypt.Cost([]byte(stored.PasswordHash)); err != nil || cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected hash cost %d (%v)", cost, err)
	}

	token, err := svc.GenerateToken(ctx, "operator", "rack-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	got, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if got != id {
		t.Fatalf("token user: want %d, got %d", id, got)
	}
}

func TestAuthService_SignUp_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		repoErr  error
		wantErr  error
	}{
		{name: "blank username", username: " ", password: "pw", wantErr: ErrEmptyUsername},
		{name: "blank password", username: "oncall", password: "   ", wantErr: ErrEmptyPassword},
		{name: "repository failure", username: "oncall", password: "pw", repoErr: errors.New("disk I/O error")},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := newMemAuthRepo()
			repo.createErr = tc.repoErr
			_, err := newTestAuth(repo).SignUp(context.Background(), tc.username, tc.password)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
			if tc.repoErr != nil && !errors.Is(err, tc.repoErr) {
				t.Fatalf("repository error not returned: %v", err)
			}
			if len(repo.users) != 0 {
				t.Fatalf("nothing should be stored")
			}
		})
	}
}

func TestAuthService_SignUp_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc := newTestAuth(newMemAuthRepo())
	if _, err := svc.SignUp(context.Background(), "auditor", "a"); err != nil {
		t.Fatalf("first SignUp: %v", err)
	}
	if _, err := svc.SignUp(context.Background(), " auditor", "b"); !errors.Is(err, repository.ErrUsernameTaken) {
		t.Fatalf("want ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_GenerateToken_Failures(t *testing.T) {
	t.Parallel()

	repo := newMemAuthRepo()
	svc := newTestAuth(repo)
	if _, err := svc.SignUp(context.Background(), "tech", "right"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if _, err := svc.GenerateToken(context.Background(), "tech", "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("wrong password: want ErrInvalidPassword, got %v", err)
	}
	if _, err := svc.GenerateToken(context.Background(), "nobody", "x"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: want ErrUserNotFound, got %v", err)
	}

	repo.getErr = errors.New("database is locked")
	if _, err := svc.GenerateToken(context.Background(), "tech", "right"); !errors.Is(err, repo.getErr) {
		t.Errorf("repository error: got %v", err)
	}
}

func TestAuthService_GenerateToken_NilUser(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nilUserRepo{}, testSigningKey, time.Hour)
	if _, err := svc.GenerateToken(context.Background(), "ghost", "x"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}

type nilUserRepo struct{}

func (nilUserRepo) Create(context.Context, string, string) (int, error) { return 0, nil }
func (nilUserRepo) GetByUsername(context.Context, string) (*models.User, error) {
	return nil, nil
}

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims *Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func validClaims(userID int) *Claims {
	now := time.Now()
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID: userID,
	}
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	t.Parallel()

	svc := newTestAuth(newMemAuthRepo())

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("rsa key: %v", err)
	}

	expired := validClaims(1)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	foreign := validClaims(1)
	foreign.Issuer = "someone-else"

	tokens := map[string]string{
		"garbage":          "not-a-jwt",
		"other key":        signClaims(t, jwt.SigningMethodHS256, []byte("other-key"), validClaims(1)),
		"expired":          signClaims(t, jwt.SigningMethodHS256, []byte(testSigningKey), expired),
		"foreign issuer":   signClaims(t, jwt.SigningMethodHS256, []byte(testSigningKey), foreign),
		"rsa signed token": signClaims(t, jwt.SigningMethodRS256, rsaKey, validClaims(1)),
	}
	for name, tok := range tokens {
		if _, err := svc.ParseToken(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: want ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestAuthService_IssueTokenTTL(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(newMemAuthRepo(), testSigningKey, 10*time.Minute)
	tok, err := svc.issueToken(9)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSigningKey), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != 10*time.Minute {
		t.Fatalf("ttl: want 10m, got %v", ttl)
	}
	if claims.UserID != 9 || claims.Issuer != tokenIssuer {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if d := NewAuthService(newMemAuthRepo(), testSigningKey, 0); d.tokenTTL != defaultTokenTTL {
		t.Fatalf("zero ttl should default to %v, got %v", defaultTokenTTL, d.tokenTTL)
	}
}
