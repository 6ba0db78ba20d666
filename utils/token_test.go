package utils

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "admin@example.com", "Site Admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.FullName != "Site Admin" {
		t.Errorf("FullName = %q", claims.FullName)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q", claims.Role)
	}

	wantExpiry := time.Now().Add(SessionDuration)
	if gap := claims.ExpiresAt.Time.Sub(wantExpiry); gap < -time.Minute || gap > time.Minute {
		t.Errorf("expiry %v not within a minute of %v", claims.ExpiresAt.Time, wantExpiry)
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(1, "user@example.com", "User", "customer")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA"

	if _, err := ValidateToken(tampered); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}
