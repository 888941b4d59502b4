package service_test

import (
	"context"
	"testing"
	"time"

	"boba-storefront/internal/models"
	"boba-storefront/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestRegister_NormalizesEmailAndDefaultsRole(t *testing.T) {
	users := &MockUserRepo{}

	var created *models.User
	users.CreateFunc = func(ctx context.Context, u *models.User) error {
		u.ID = uuid.New()
		created = u
		return nil
	}

	svc := service.NewAuthService(users, &MockHasher{}, &MockTokens{}, time.Hour, zap.NewNop())
	user, err := svc.Register(context.Background(), "  Alice@Example.COM ", "password123", "Alice")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if created.Role != models.RoleCustomer {
		t.Fatalf("role expected customer got %s", created.Role)
	}
	if created.PasswordHash == "password123" {
		t.Fatal("password stored unhashed")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := &MockUserRepo{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	svc := service.NewAuthService(users, &MockHasher{}, &MockTokens{}, time.Hour, zap.NewNop())
	_, err := svc.Register(context.Background(), "taken@example.com", "password123", "Someone")
	if err != service.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken got %v", err)
	}
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	svc := service.NewAuthService(&MockUserRepo{}, &MockHasher{}, &MockTokens{}, time.Hour, zap.NewNop())
	_, err := svc.Register(context.Background(), "a@b.com", "short", "Someone")
	if err != service.ErrValidation {
		t.Fatalf("expected ErrValidation got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	userID := uuid.New()
	users := &MockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID:           userID,
				Email:        "alice@example.com",
				PasswordHash: "hashed:password123",
				Role:         models.RoleCustomer,
			}, nil
		},
	}

	svc := service.NewAuthService(users, &MockHasher{}, &MockTokens{}, time.Hour, zap.NewNop())
	session, err := svc.Login(context.Background(), "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Token == "" || session.User.ID != userID {
		t.Fatalf("session mismatch: %+v", session)
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry in the past: %v", session.ExpiresAt)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	users := &MockUserRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			if email == "alice@example.com" {
				return &models.User{ID: uuid.New(), Email: email, PasswordHash: "hashed:password123"}, nil
			}
			return nil, nil
		},
	}

	svc := service.NewAuthService(users, &MockHasher{}, &MockTokens{}, time.Hour, zap.NewNop())

	// unknown user and wrong password are indistinguishable to the caller
	if _, err := svc.Login(context.Background(), "nobody@example.com", "password123"); err != service.ErrInvalidCredentials {
		t.Fatalf("unknown user: expected ErrInvalidCredentials got %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice@example.com", "wrong-password"); err != service.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials got %v", err)
	}
}
