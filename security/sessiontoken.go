package security

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session identifies an authenticated portal user.
type Session struct {
	UserID   uint   `json:"nameid"`
	Username string `json:"unique_name"`
	Role     string `json:"role"`
}

type SessionClaims struct {
	Session
	jwt.RegisteredClaims
}

// CreateSessionToken signs a session with HS256. The secret is carried
// base64-encoded in configuration.
func CreateSessionToken(session *Session, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}
	claims := SessionClaims{
		Session: *session,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "campustime",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretBytes)
}
