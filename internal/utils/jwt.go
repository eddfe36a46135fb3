// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims of a game session connection token. Subject
// holds the user id the token was issued to.
type SessionClaims struct {
	GameSessionID string `json:"gs"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed HMAC-SHA256 JWT allowing userID to
// join gameSessionID.
//
// The token includes the standard issuer, subject, issued-at and expiry
// claims. All parameters are required.
func GenerateSessionToken(issuer, userID, gameSessionID string, ttl time.Duration, signKey []byte) (string, error) {
	if issuer == "" || userID == "" || gameSessionID == "" || ttl <= 0 || len(signKey) == 0 {
		return "", errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &SessionClaims{
		GameSessionID: gameSessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates the signature, issuer and expiry of a session
// token and returns its claims.
func ParseSessionToken(tokenString string, signKey []byte, issuer string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("error occurred validating session token: %w", err)
	}

	if claims.Subject == "" || claims.GameSessionID == "" {
		return nil, errors.New("session token misses subject or game session")
	}
	return claims, nil
}
