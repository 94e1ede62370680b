package session

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/JC2405/medicitas-client/models"
)

// TokenClaims are the pieces of a JWT access token the client cares about.
type TokenClaims struct {
	User      *models.UserProfile
	ExpiresAt time.Time
}

// DecodeToken extracts the embedded user object and expiry from a JWT access
// token without verifying the signature; verification is the backend's job.
// Malformed tokens yield zero-value claims, never an error.
func DecodeToken(token string) TokenClaims {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return TokenClaims{}
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return TokenClaims{}
	}

	var claims TokenClaims
	if exp := gjson.GetBytes(payload, "exp"); exp.Exists() {
		claims.ExpiresAt = time.Unix(exp.Int(), 0)
	}

	if userJSON := gjson.GetBytes(payload, "user").Raw; userJSON != "" {
		var user models.UserProfile
		if err := json.Unmarshal([]byte(userJSON), &user); err == nil {
			claims.User = &user
		}
	}
	return claims
}

// Expired reports whether the token carried an exp claim that is already in
// the past. Tokens without an exp claim never report expired.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
