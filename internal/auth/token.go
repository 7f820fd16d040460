package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"campus/backend/internal/model"
)

var (
	ErrMissingBearer = model.NewError(model.ErrUnauthenticated, "Invalid authorization header")
	ErrTokenExpired  = model.NewError(model.ErrUnauthenticated, "Token expired")
	ErrTokenInvalid  = model.NewError(model.ErrUnauthenticated, "Invalid token")
	ErrTokenRevoked  = model.NewError(model.ErrUnauthenticated, "Token revoked")
)

type Claims struct {
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
	Name  string     `json:"name"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() model.Identity {
	return model.Identity{Email: c.Email, Role: c.Role, DisplayName: c.Name}
}

// Issued is a signed token together with the plaintext claims it carries.
type Issued struct {
	Token  string
	Claims Claims
}

// TokenTTL is the fixed lifetime of a session token.
const TokenTTL = 7 * 24 * time.Hour

type TokenService struct {
	secret      []byte
	issuer      string
	ttl         time.Duration
	adminEmail  string
	revocations RevocationList
	now         func() time.Time
}

type Option func(*TokenService)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

func WithRevocations(list RevocationList) Option {
	return func(s *TokenService) { s.revocations = list }
}

func NewTokenService(secret, issuer, adminEmail string, opts ...Option) *TokenService {
	s := &TokenService{
		secret:      []byte(secret),
		issuer:      issuer,
		ttl:         TokenTTL,
		adminEmail:  NormalizeEmail(adminEmail),
		revocations: noRevocations{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TokenService) Issue(email string) (Issued, error) {
	identity, err := IdentityFor(email, s.adminEmail)
	if err != nil {
		return Issued{}, err
	}
	now := s.now().UTC()
	claims := Claims{
		Email: identity.Email,
		Role:  identity.Role,
		Name:  identity.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.Email,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Issued{}, fmt.Errorf("sign token: %w", err)
	}
	return Issued{Token: token, Claims: claims}, nil
}

// Verify checks signature, expiry and revocation. The embedded role is
// returned as signed, never re-derived from the email.
func (s *TokenService) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingBearer
	}
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		options = append(options, jwt.WithIssuer(s.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.ID != "" {
		revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}
	return claims, nil
}

// Revoke blocks the token id until the token would have expired anyway.
func (s *TokenService) Revoke(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	remaining := claims.ExpiresAt.Time.Sub(s.now())
	if remaining <= 0 {
		return nil
	}
	return s.revocations.Revoke(ctx, claims.ID, remaining)
}

// BearerToken extracts the credential from an Authorization header value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingBearer
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrMissingBearer
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrMissingBearer
	}
	return token, nil
}
