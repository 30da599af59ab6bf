// Package auth issues and verifies the bearer tokens used by both transports.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/simaogato/charityflow-backend/internal/domain"
)

const issuer = "charityflow"

// Claims represents the JWT claims of an access token
type Claims struct {
	Superuser bool `json:"superuser,omitempty"`
	jwt.RegisteredClaims
}

// Principal is the authenticated caller of a request
type Principal struct {
	UserID    uuid.UUID
	Superuser bool
}

// Authenticator signs and validates HS256 access tokens
type Authenticator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthenticator creates an authenticator for the given shared secret
func NewAuthenticator(secret string, ttl time.Duration) (*Authenticator, error) {
	if secret == "" {
		return nil, errors.New("jwt secret cannot be empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Authenticator{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for the principal
func (a *Authenticator) Issue(p Principal) (string, error) {
	now := a.now()
	claims := Claims{
		Superuser: p.Superuser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Parse validates the token and returns its principal
func (a *Authenticator) Parse(tokenString string) (Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return Principal{}, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: subject is not a user id", domain.ErrUnauthorized)
	}

	return Principal{UserID: userID, Superuser: claims.Superuser}, nil
}

// ParseBearer validates an "Authorization: Bearer <token>" header value
func (a *Authenticator) ParseBearer(header string) (Principal, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return Principal{}, fmt.Errorf("%w: invalid authorization header format", domain.ErrUnauthorized)
	}
	return a.Parse(parts[1])
}

type principalKey struct{}

// WithPrincipal stores the principal in ctx
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the principal stored in ctx, if any
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// RequireUser returns the principal or ErrUnauthorized
func RequireUser(ctx context.Context) (Principal, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return Principal{}, fmt.Errorf("%w: authentication required", domain.ErrUnauthorized)
	}
	return p, nil
}

// RequireSuperuser returns the principal when it is a superuser
func RequireSuperuser(ctx context.Context) (Principal, error) {
	p, err := RequireUser(ctx)
	if err != nil {
		return Principal{}, err
	}
	if !p.Superuser {
		return Principal{}, fmt.Errorf("%w: superuser required", domain.ErrForbidden)
	}
	return p, nil
}
