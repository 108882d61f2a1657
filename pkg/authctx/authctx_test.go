package authctx

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-portfolio/pkg/types"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestJWTResolver_SignAndResolve(t *testing.T) {
	resolver := NewJWTResolver("secret", "go-portfolio")
	token, err := resolver.Sign("owner-1", time.Hour)
	require.NoError(t, err)

	owner, err := resolver.ResolveOwner(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "owner-1", owner)

	owner, err = resolver.ResolveOwner(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	require.Equal(t, "owner-1", owner)
}

func TestJWTResolver_RejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	resolver := NewJWTResolver("secret", "go-portfolio")

	_, err := resolver.ResolveOwner(ctx, "")
	require.True(t, IsUnauthorized(err))

	_, err = resolver.ResolveOwner(ctx, "not-a-jwt")
	require.True(t, IsUnauthorized(err))

	other := NewJWTResolver("other-secret", "go-portfolio")
	foreign, err := other.Sign("owner-1", time.Hour)
	require.NoError(t, err)
	_, err = resolver.ResolveOwner(ctx, foreign)
	require.True(t, IsUnauthorized(err))
	require.False(t, IsExpired(err))

	wrongIssuer, err := NewJWTResolver("secret", "someone-else").Sign("owner-1", time.Hour)
	require.NoError(t, err)
	_, err = resolver.ResolveOwner(ctx, wrongIssuer)
	require.True(t, IsUnauthorized(err))
}

func TestJWTResolver_Expiry(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	signer := &JWTResolver{Secret: []byte("secret"), Clock: fixedClock{t: issued}}
	token, err := signer.Sign("owner-1", time.Minute)
	require.NoError(t, err)

	later := &JWTResolver{Secret: []byte("secret"), Clock: fixedClock{t: issued.Add(time.Hour)}}
	_, err = later.ResolveOwner(context.Background(), token)
	require.True(t, IsExpired(err))
	require.True(t, IsUnauthorized(err))
}

func TestJWTResolver_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		OwnerID: "owner-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTResolver("secret", "").ResolveOwner(context.Background(), token)
	require.True(t, IsUnauthorized(err))
}

func TestJWTResolver_RequiresSecretAndOwner(t *testing.T) {
	_, err := (&JWTResolver{}).Sign("owner-1", time.Hour)
	require.Error(t, err)
	require.False(t, IsUnauthorized(err))

	_, err = NewJWTResolver("secret", "").Sign("  ", time.Hour)
	require.ErrorIs(t, err, types.ErrOwnerRequired)
}

func TestOwnerTokenContext(t *testing.T) {
	_, ok := OwnerTokenFromContext(context.Background())
	require.False(t, ok)

	ctx := WithOwnerToken(context.Background(), "tok")
	token, ok := OwnerTokenFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "tok", token)
}
