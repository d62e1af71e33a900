// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-storefront/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func testIdentity() models.Identity {
	return models.Identity{
		ID:       uuid.MustParse("8f14e45f-ceea-4e7a-9c5b-2a7c1f1d1e01"),
		Username: "alice",
		Email:    "alice@example.com",
		Role:     models.RoleSeller,
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	identity := testIdentity()

	token, err := GenerateJWTToken(issuer, identity, time.Hour, "secret-key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Claims.Issuer)
	}
	if token.Claims.Subject != identity.ID.String() {
		t.Errorf("expected subject %s, got %s", identity.ID, token.Claims.Subject)
	}
	if token.Claims.Identity() != identity {
		t.Errorf("expected identity %+v, got %+v", identity, token.Claims.Identity())
	}
	if token.String() != token.SignedString {
		t.Error("String() must return the signed string")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		identity models.Identity
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testIdentity(), time.Hour, "key"},
		{"zero duration", "iss", testIdentity(), 0, "key"},
		{"empty key", "iss", testIdentity(), time.Hour, ""},
		{"nil id", "iss", models.Identity{Username: "bob"}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.identity, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	identity := testIdentity()
	token, err := GenerateJWTToken("iss", identity, time.Hour, "key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Claims.Identity() != identity {
		t.Errorf("expected identity %+v, got %+v", identity, parsed.Claims.Identity())
	}
	if parsed.SignedString != token.SignedString {
		t.Error("expected parsed token to keep the signed string")
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, _ := GenerateJWTToken("iss", testIdentity(), time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(token.SignedString, "other-key", "iss"); err == nil {
		t.Error("expected error for wrong sign key, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, _ := GenerateJWTToken("iss", testIdentity(), time.Hour, "key")

	if _, err := ValidateAndParseJWTToken(token.SignedString, "key", "other-iss"); err == nil {
		t.Error("expected error for wrong issuer, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	claims := models.Claims{
		UserID: testIdentity().ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_MissingID(t *testing.T) {
	claims := models.Claims{
		Username: "ghost",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected error for token without id, got nil")
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", "key", "iss"); err == nil {
		t.Error("expected error for malformed token, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer   abc  ", "abc", false},
		{"empty", "", "", true},
		{"no token", "Bearer", "", true},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got: %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
