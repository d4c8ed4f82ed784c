// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedToken is returned when the token cannot be split and decoded
	// as a JWT.
	ErrMalformedToken = errors.New("malformed token")
	// ErrNoUserInToken is returned when the claims carry neither an "id" nor a
	// "sub" that parses as an integer user ID.
	ErrNoUserInToken = errors.New("token carries no user id")
)

// TokenClaims is the identity decoded from a bearer token's payload.
type TokenClaims struct {
	UserID    int64
	Name      string
	Email     string
	ExpiresAt time.Time // zero when the token has no exp claim
}

// Expired reports whether the token has an exp claim at or before now.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// DecodeClaims decodes the payload of tokenString WITHOUT verifying the
// signature. The client never holds the signing key; the server remains the
// authority and rejects forged tokens on the next request.
//
// The user ID is read from the "id" claim (number or numeric string), falling
// back to "sub". "name" and "email" are optional.
func DecodeClaims(tokenString string) (TokenClaims, error) {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser(jwt.WithJSONNumber()).ParseUnverified(strings.TrimSpace(tokenString), claims)
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	userID, ok := int64Claim(claims["id"])
	if !ok {
		sub, _ := claims.GetSubject()
		userID, ok = int64Claim(sub)
	}
	if !ok {
		return TokenClaims{}, ErrNoUserInToken
	}

	out := TokenClaims{UserID: userID}
	out.Name, _ = claims["name"].(string)
	out.Email, _ = claims["email"].(string)

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}

func int64Claim(v any) (int64, bool) {
	switch value := v.(type) {
	case json.Number:
		id, err := value.Int64()
		return id, err == nil
	case float64:
		return int64(value), true
	case string:
		if value == "" {
			return 0, false
		}
		id, err := strconv.ParseInt(value, 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}
