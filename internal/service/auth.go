package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medrecord/medrecord/internal/auth"
	"github.com/medrecord/medrecord/internal/cache"
	"github.com/medrecord/medrecord/internal/model"
	"github.com/medrecord/medrecord/internal/repository"
)

// Auth service errors.
var (
	// ErrEmailTaken is returned when the registration email is already in use.
	ErrEmailTaken = errors.New("a user with this email already exists")
	// ErrInvalidCredentials is returned for unknown email and wrong
	// password alike, so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken is returned for expired, malformed, or
	// already-consumed refresh tokens.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// AuthService handles registration, login, and token refresh.
type AuthService struct {
	repo   *repository.Repository
	cache  *cache.Cache
	tokens *auth.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.Repository, cache *cache.Cache, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{
		repo:   repo,
		cache:  cache,
		tokens: tokens,
	}
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register validates input, hashes the password, and persists the user.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	// The unique index on email is the authority; a pre-check would
	// race with concurrent registrations.
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and issues a token pair. Unknown email and
// wrong password take the same path cost and return the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			auth.VerifyDummy(password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return pair, nil
}

// Refresh exchanges a valid, unused refresh token for a new token pair.
// Each refresh token is single-use: its jti is marked consumed with a
// TTL equal to the token's remaining life, and replays are rejected.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.tokens.Verify(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	firstUse, err := s.cache.MarkRefreshTokenUsed(ctx, claims.ID, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !firstUse {
		return nil, ErrInvalidRefreshToken
	}

	// The account may have been removed since the token was issued.
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	pair, err := s.tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return pair, nil
}
