package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/repository"
	"hermesoftware/byklab-api/internal/security"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrEmailAlreadyRegistered = errors.New("Email already registered")
	// Unknown email and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrHashingFailed      = errors.New("failed to hash password")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)

// --- Service Interface ---
type AuthService interface {
	Signup(ctx context.Context, email, password, fullName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// --- Service Implementation ---

// authService implements the AuthService interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	log      logrus.FieldLogger
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, hasher security.PasswordHasher, log logrus.FieldLogger) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		log:      log,
	}
}

// Signup registers a new account on the free plan.
func (s *authService) Signup(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("email cannot be empty")
	}

	// 1. Check if the email is taken (exact match)
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}

	// 2. Hash the password
	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		s.log.WithError(err).Error("password hashing failed")
		return nil, ErrHashingFailed
	}

	// 3. Build and store the record
	user := &domain.User{
		ID:               uuid.NewString(),
		Email:            email,
		FullName:         fullName,
		CreatedAt:        domain.Now(),
		SubscriptionPlan: domain.DefaultSubscriptionPlan,
		PasswordHash:     hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost the race against a concurrent signup; the unique index caught it.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.WithField("user_id", user.ID).Info("user signed up")

	user.PasswordHash = ""
	return user, nil
}

// Login checks the credentials and returns the stored profile. No session
// or token is issued.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	user.SubscriptionPlan = user.Plan()
	user.PasswordHash = ""
	return user, nil
}
