package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/getzep/annotext/config"
)

const JwtAlg = "HS256"

const tokenSubject = "annotext"

var ErrNoSecret = errors.New(
	"auth secret not set. Ensure ANNOTEXT_AUTH_SECRET is set in your environment",
)

func tokenAuth(cfg *config.Config) (*jwtauth.JWTAuth, error) {
	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	return jwtauth.New(JwtAlg, secret, nil), nil
}

// GenerateJWT issues a non-expiring token signed with auth.secret.
func GenerateJWT(cfg *config.Config) (string, error) {
	ta, err := tokenAuth(cfg)
	if err != nil {
		return "", err
	}

	claims := map[string]interface{}{"sub": tokenSubject}
	jwtauth.SetIssuedAt(claims, time.Now())
	_, tokenString, err := ta.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("error generating auth token: %w", err)
	}

	return tokenString, nil
}

// JWTVerifier finds and verifies a bearer token. It must be followed by
// jwtauth.Authenticator to reject requests without a valid token.
func JWTVerifier(cfg *config.Config) (func(http.Handler) http.Handler, error) {
	ta, err := tokenAuth(cfg)
	if err != nil {
		return nil, err
	}
	return jwtauth.Verifier(ta), nil
}
