package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "ecotrack", 30*time.Minute)

	token, err := issuer.NewAccessToken("home@example.com", "household")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "home@example.com", claims.Subject)
	assert.Equal(t, "household", claims.Role)
	assert.Equal(t, "ecotrack", claims.Issuer)
}

func TestParseToken_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "ecotrack", 30*time.Minute)
	other := NewTokenIssuer("different-secret", "ecotrack", 30*time.Minute)

	token, err := issuer.NewAccessToken("home@example.com", "household")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "ecotrack", -time.Minute)

	token, err := issuer.NewAccessToken("home@example.com", "household")
	require.NoError(t, err)

	_, err = issuer.ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", "ecotrack", 30*time.Minute)

	_, err := issuer.ParseToken("not.a.token")
	require.Error(t, err)
}
