package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/countapp/countd/internal/domain"
	"github.com/countapp/countd/internal/repository"
	postgresrepo "github.com/countapp/countd/internal/repository/postgres"
	redisrepo "github.com/countapp/countd/internal/repository/redis"
	"github.com/countapp/countd/internal/token"
)

type Config struct {
	MinPasswordLen int
	BcryptCost     int
}

type Service struct {
	store   *postgresrepo.Store
	tokens  *token.Manager
	limiter *redisrepo.SlidingWindowLimiter
	cfg     Config
}

func New(
	store *postgresrepo.Store,
	tokens *token.Manager,
	limiter *redisrepo.SlidingWindowLimiter,
	cfg Config,
) *Service {
	if cfg.MinPasswordLen <= 0 {
		cfg.MinPasswordLen = 6
	}

	if cfg.BcryptCost <= 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	return &Service{
		store:   store,
		tokens:  tokens,
		limiter: limiter,
		cfg:     cfg,
	}
}

// Register creates an account and returns the new user with a signed access
// token.
//
// Returns:
//   - auth.ErrMissingFields when email or password is empty.
//   - auth.ErrWeakPassword when the password is shorter than the minimum.
//   - auth.ErrEmailInUse when the email is already registered.
func (s *Service) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	const op = "service.auth.Register"

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%s:%w", op, ErrMissingFields)
	}

	if len(password) < s.cfg.MinPasswordLen {
		return nil, "", fmt.Errorf("%s:%w", op, ErrWeakPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("%s:%w", op, err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, "", fmt.Errorf("%s:%w", op, ErrEmailInUse)
		}

		return nil, "", fmt.Errorf("%s:%w", op, err)
	}

	signed, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("%s:%w", op, err)
	}

	return user, signed, nil
}

// Login verifies credentials and returns the user with a signed access
// token. Attempts are rate limited per rlKey (client address) so credential
// guessing maps to ErrTooManyAttempts rather than hammering bcrypt.
//
// Returns:
//   - auth.ErrTooManyAttempts when the rate limit is exceeded.
//   - auth.ErrInvalidCredentials for an unknown email or a wrong password.
func (s *Service) Login(ctx context.Context, email, password, rlKey string) (*domain.User, string, error) {
	const op = "service.auth.Login"

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%s:%w", op, ErrMissingFields)
	}

	if s.limiter != nil && rlKey != "" {
		ok, _, _, err := s.limiter.Allow(ctx, "login:"+rlKey)
		if err != nil {
			return nil, "", fmt.Errorf("%s:%w", op, err)
		}
		if !ok {
			return nil, "", fmt.Errorf("%s:%w", op, ErrTooManyAttempts)
		}
	}

	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", fmt.Errorf("%s:%w", op, ErrInvalidCredentials)
		}

		return nil, "", fmt.Errorf("%s:%w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("%s:%w", op, ErrInvalidCredentials)
	}

	signed, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("%s:%w", op, err)
	}

	return user, signed, nil
}
