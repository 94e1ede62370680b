package session

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, payload string) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".sig"
}

func TestDecodeToken(t *testing.T) {
	exp := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	claims := DecodeToken(makeToken(t,
		`{"exp":1773576000,"user":{"id":4,"email":"ana@example.com","rol":"admin"}}`))

	assert.True(t, claims.ExpiresAt.Equal(exp))
	require.NotNil(t, claims.User)
	assert.Equal(t, "ana@example.com", claims.User.Email)
	assert.NotEmpty(t, claims.User.Raw)
}

func TestDecodeTokenWithoutUser(t *testing.T) {
	claims := DecodeToken(makeToken(t, `{"exp":1773576000}`))

	assert.Nil(t, claims.User)
	assert.False(t, claims.ExpiresAt.IsZero())
}

func TestDecodeTokenMalformed(t *testing.T) {
	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "tok-opaque"},
		{name: "two segments", token: "aaa.bbb"},
		{name: "payload not base64", token: "aaa.!!!.ccc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims := DecodeToken(tc.token)
			assert.Nil(t, claims.User)
			assert.True(t, claims.ExpiresAt.IsZero())
		})
	}
}

func TestTokenClaimsExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	expired := TokenClaims{ExpiresAt: now.Add(-time.Minute)}
	assert.True(t, expired.Expired(now))

	alive := TokenClaims{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, alive.Expired(now))

	noExp := TokenClaims{}
	assert.False(t, noExp.Expired(now))
}
