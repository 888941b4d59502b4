package service

import (
	"context"
	"strings"
	"time"

	"boba-storefront/internal/models"
	"boba-storefront/internal/repository"

	"go.uber.org/zap"
)

type AuthService struct {
	users  repository.UserRepo
	hasher PasswordHasher
	tokens TokenProvider

	accessTTL time.Duration
	now       func() time.Time

	log *zap.Logger
}

func NewAuthService(users repository.UserRepo, hasher PasswordHasher, tokens TokenProvider, accessTTL time.Duration, log *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		accessTTL: accessTTL,
		now:       time.Now,
		log:       log,
	}
}

// Register creates a customer account. Every account starts with the
// customer role; elevation happens out of band.
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") || len(password) < 8 {
		return nil, ErrValidation
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         models.RoleCustomer,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("email", u.Email))
	return u, nil
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.tokens.SignAccess(ctx, user.ID, user.Email, string(user.Role), s.accessTTL)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, ExpiresAt: exp, User: user}, nil
}
