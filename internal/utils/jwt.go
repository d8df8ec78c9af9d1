// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-site-keeper/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 admin-session JWT.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the admin server instance
//   - Subject   (sub): the admin mode the session was opened with
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("sitekeeper", "admin_online", 12*time.Hour, "secret")
func GenerateSessionToken(issuer, mode string, tokenDuration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || mode == "" || tokenDuration <= 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   mode,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.SessionToken{Token: token, RegisteredClaims: *claims, SignedString: tokenString}, nil
}

// ValidateSessionToken verifies the signature, issuer and expiry of
// tokenString and returns the parsed token. Only HS256 is accepted.
//
// Example usage:
//
//	token, err := utils.ValidateSessionToken(raw, "secret", "sitekeeper")
//	if err != nil {
//	    // handle invalid or expired session
//	}
func ValidateSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.SessionToken, error) {
	parsed := &models.SessionToken{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	if _, err := parsed.Mode(); err != nil {
		return models.SessionToken{}, err
	}

	return *parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
