package auth

import (
	"strings"
	"testing"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(42, 7, "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseAndValidate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 || claims.CompanyID != 7 || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Subject != "42" {
		t.Errorf("subject = %q", claims.Subject)
	}
}

func TestParseAndValidate_Tampered(t *testing.T) {
	token, err := GenerateAccessToken(1, 1, "member")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA"
	if _, err := ParseAndValidate(tampered); err == nil {
		t.Fatal("tampered signature accepted")
	}
}

func TestParseAndValidate_Garbage(t *testing.T) {
	if _, err := ParseAndValidate("not-a-token"); err == nil {
		t.Fatal("garbage accepted")
	}
}
