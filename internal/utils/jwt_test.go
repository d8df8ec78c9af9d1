package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	token, err := GenerateSessionToken("test-issuer", "admin_online", time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if claims.Subject != "admin_online" {
		t.Errorf("expected subject admin_online, got %s", claims.Subject)
	}
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		mode     string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "admin_local", time.Hour, "key"},
		{"empty mode", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "admin_local", 0, "key"},
		{"empty key", "iss", "admin_local", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateSessionToken(tt.issuer, tt.mode, tt.duration, tt.key); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateSessionToken_Success(t *testing.T) {
	token, err := GenerateSessionToken("iss", "admin_local", time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ValidateSessionToken(token.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	mode, err := parsed.Mode()
	if err != nil {
		t.Fatal(err)
	}
	if mode != "admin_local" {
		t.Errorf("expected admin_local, got %s", mode)
	}
	if parsed.String() != token.SignedString {
		t.Error("expected parsed token to keep its compact form")
	}
}

func TestValidateSessionToken_Rejects(t *testing.T) {
	valid, err := GenerateSessionToken("iss", "admin_local", time.Hour, "key")
	if err != nil {
		t.Fatal(err)
	}
	expired, err := GenerateSessionToken("iss", "admin_local", time.Nanosecond, "key")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Second + 10*time.Millisecond)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: "iss", Subject: "admin_online"})
	noneString, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		token string
		key   string
		iss   string
	}{
		{"wrong key", valid.SignedString, "other", "iss"},
		{"wrong issuer", valid.SignedString, "key", "other"},
		{"expired", expired.SignedString, "key", "iss"},
		{"alg none", noneString, "key", "iss"},
		{"malformed", "not.a.token", "key", "iss"},
		{"truncated", valid.SignedString[:strings.LastIndex(valid.SignedString, ".")], "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateSessionToken(tt.token, tt.key, tt.iss); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	got, err := ParseBearerToken("Bearer abc.def")
	if err != nil || got != "abc.def" {
		t.Fatalf("unexpected result %q, %v", got, err)
	}

	for _, bad := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		if _, err := ParseBearerToken(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
