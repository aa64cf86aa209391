// Package auth mints and verifies the short-lived request tokens used when
// the planner API is configured with a shared key.
package auth

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry is the lifetime of a minted request token.
const TokenExpiry = 5 * time.Minute

// audience ties tokens to the planner API.
const audience = "/api/"

// splitKey parses an "id:hexsecret" API key.
func splitKey(apiKey string) (id string, secret []byte, err error) {
	parts := strings.Split(apiKey, ":")
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("invalid api key format: expected id:secret")
	}

	secret, err = hex.DecodeString(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode secret hex: %w", err)
	}
	return parts[0], secret, nil
}

// MintToken generates a short-lived HS256 token from the API key. The key id
// travels in the "kid" header so the server can reject tokens minted with a
// different key without inspecting the signature first.
func MintToken(apiKey string) (string, error) {
	id, secret, err := splitKey(apiKey)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(TokenExpiry).Unix(),
		"aud": audience,
	})
	token.Header["kid"] = id

	return token.SignedString(secret)
}

// VerifyToken parses and validates a request token against the API key.
func VerifyToken(apiKey, tokenStr string) error {
	id, secret, err := splitKey(apiKey)
	if err != nil {
		return err
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		if kid, _ := token.Header["kid"].(string); kid != id {
			return nil, fmt.Errorf("unknown key id")
		}
		return secret, nil
	}, jwt.WithAudience(audience), jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("parsing token: %w", err)
	}

	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}
