package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// Token types distinguish access tokens from refresh tokens so one
// cannot be presented where the other is expected.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

const tokenIssuer = "medrecord"

// ErrInvalidToken covers every verification failure: bad signature,
// expired, malformed, or wrong token type. Callers get no detail about
// which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by both token types.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
	Email     string `json:"email"`
}

// UserID returns the subject claim as a user id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// TokenPair is an access/refresh token pair issued at login or refresh.
type TokenPair struct {
	Access  string
	Refresh string
}

// TokenIssuer signs and verifies HS256 tokens.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret
// and token lifetimes.
func NewTokenIssuer(secret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair issues a new access/refresh token pair for a user.
// Each token gets its own ULID jti; the refresh jti is later used for
// single-use replay detection.
func (i *TokenIssuer) IssuePair(userID int64, email string) (*TokenPair, error) {
	access, err := i.issue(userID, email, TokenTypeAccess, i.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := i.issue(userID, email, TokenTypeRefresh, i.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (i *TokenIssuer) issue(userID int64, email, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			ID:        ulid.Make().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TokenType: tokenType,
		Email:     email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}

	return signed, nil
}

// Verify parses and validates a token, requiring the given token type.
// Returns ErrInvalidToken on any failure.
func (i *TokenIssuer) Verify(tokenString, wantType string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != wantType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
