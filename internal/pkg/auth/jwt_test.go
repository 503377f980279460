package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestJWTService(secret string) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       secret,
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "pleeno.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := newTestJWTService("test-secret")

	subject := TokenSubject{
		UserID:   42,
		AgencyID: 7,
		Email:    "staff@agency.test",
		Role:     "STAFF",
	}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(subject)
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("expected non-empty tokens")
	}
	if expiresIn != 3600 {
		t.Errorf("expected expiresIn 3600, got %d", expiresIn)
	}
	if refreshExpiresIn != int((720 * time.Hour).Seconds()) {
		t.Errorf("unexpected refreshExpiresIn %d", refreshExpiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected userID 42, got %d", claims.UserID)
	}
	if claims.AgencyID != 7 {
		t.Errorf("expected agencyID 7, got %d", claims.AgencyID)
	}
	if claims.Email != subject.Email {
		t.Errorf("expected email %s, got %s", subject.Email, claims.Email)
	}
	if claims.Role != "STAFF" {
		t.Errorf("expected role STAFF, got %s", claims.Role)
	}
	if claims.Issuer != "pleeno.test" {
		t.Errorf("expected issuer pleeno.test, got %s", claims.Issuer)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestJWTService("secret-one")
	other := newTestJWTService("secret-two")

	accessToken, _, _, _, err := svc.GenerateTokenPair(TokenSubject{UserID: 1, AgencyID: 1})
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  -time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "pleeno.test",
	})

	accessToken, _, _, _, err := svc.GenerateTokenPair(TokenSubject{UserID: 1, AgencyID: 1})
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	if _, err := svc.ValidateToken(accessToken); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateAndExtractClaimsRejectsEmptyToken(t *testing.T) {
	svc := newTestJWTService("test-secret")
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken failed: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("expected abc.def.ghi, got %s", token)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for empty header, got %v", err)
	}
	if _, err := ExtractBearerToken("Basic dXNlcjpwYXNz"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for non-bearer header, got %v", err)
	}
}
