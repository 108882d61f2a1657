// Package authctx resolves the opaque owner token handed to editing sessions
// into an owner id. Tokens are HS256 JWTs whose subject carries the owner.
package authctx

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-portfolio/pkg/types"
)

const (
	textCodeTokenMissing = "OWNER_TOKEN_MISSING"
	textCodeTokenInvalid = "OWNER_TOKEN_INVALID"
	textCodeTokenExpired = "OWNER_TOKEN_EXPIRED"
	textCodeSecret       = "OWNER_TOKEN_SECRET_MISSING"
)

// DefaultTTL is the lifetime of tokens issued without an explicit ttl.
const DefaultTTL = 24 * time.Hour

// Claims is the JWT payload of an owner token.
type Claims struct {
	OwnerID string `json:"oid"`
	jwt.RegisteredClaims
}

// JWTResolver signs and verifies owner tokens with a shared secret.
type JWTResolver struct {
	Secret []byte
	Issuer string
	Clock  types.Clock
}

var _ types.OwnerResolver = (*JWTResolver)(nil)

// NewJWTResolver builds a resolver for secret. An empty issuer skips the
// issuer check.
func NewJWTResolver(secret, issuer string) *JWTResolver {
	return &JWTResolver{Secret: []byte(secret), Issuer: issuer}
}

// Sign issues a token for ownerID valid for ttl.
func (r *JWTResolver) Sign(ownerID string, ttl time.Duration) (string, error) {
	if err := r.ready(); err != nil {
		return "", err
	}
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return "", types.ErrOwnerRequired
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := r.now()
	claims := Claims{
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID,
			Issuer:    r.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(r.Secret)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "go-portfolio: sign owner token")
	}
	return signed, nil
}

// ResolveOwner verifies token and returns the owner id it carries.
func (r *JWTResolver) ResolveOwner(_ context.Context, token string) (string, error) {
	if err := r.ready(); err != nil {
		return "", err
	}
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return "", goerrors.New("go-portfolio: owner token missing", goerrors.CategoryAuth).
			WithCode(goerrors.CodeUnauthorized).
			WithTextCode(textCodeTokenMissing)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(r.now),
	}
	if r.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(r.Issuer))
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return r.Secret, nil
	}, opts...)
	if err != nil {
		code := textCodeTokenInvalid
		if errors.Is(err, jwt.ErrTokenExpired) {
			code = textCodeTokenExpired
		}
		return "", goerrors.Wrap(err, goerrors.CategoryAuth, "go-portfolio: invalid owner token").
			WithCode(goerrors.CodeUnauthorized).
			WithTextCode(code)
	}

	owner := claims.OwnerID
	if owner == "" {
		owner = claims.Subject
	}
	if owner == "" {
		return "", goerrors.New("go-portfolio: owner token missing owner id", goerrors.CategoryAuth).
			WithCode(goerrors.CodeUnauthorized).
			WithTextCode(textCodeTokenInvalid)
	}
	return owner, nil
}

func (r *JWTResolver) ready() error {
	if r == nil || len(r.Secret) == 0 {
		return goerrors.New("go-portfolio: owner token secret not configured", goerrors.CategoryInternal).
			WithCode(goerrors.CodeInternal).
			WithTextCode(textCodeSecret)
	}
	return nil
}

func (r *JWTResolver) now() time.Time {
	if r.Clock != nil {
		return r.Clock.Now()
	}
	return time.Now()
}

// IsExpired reports whether err was raised for an expired owner token.
func IsExpired(err error) bool {
	var richErr *goerrors.Error
	return goerrors.As(err, &richErr) && richErr.TextCode == textCodeTokenExpired
}

// IsUnauthorized reports whether err rejected an owner token.
func IsUnauthorized(err error) bool {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	return richErr.Category == goerrors.CategoryAuth
}

type tokenKey struct{}

// WithOwnerToken stores the raw owner token on ctx for transports.
func WithOwnerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// OwnerTokenFromContext returns the token stored by WithOwnerToken.
func OwnerTokenFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
