package utils

import "testing"

func TestExtractNameFromEmail(t *testing.T) {
	if got := ExtractNameFromEmail("maya@campus.edu"); got != "maya" {
		t.Errorf("Expected maya, got %s", got)
	}
	if got := ExtractNameFromEmail("no-at-sign"); got != "no-at-sign" {
		t.Errorf("Expected input returned unchanged, got %s", got)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWTToken("user-1", "maya@campus.edu")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ValidateJWTToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("Expected user-1, got %s", claims.UserID)
	}
	if claims.Email != "maya@campus.edu" {
		t.Errorf("Expected email claim, got %s", claims.Email)
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	if _, err := ValidateJWTToken("not.a.token"); err == nil {
		t.Errorf("Expected garbage token to be rejected")
	}
}

func TestGenerateSecretHashDeterministic(t *testing.T) {
	a := GenerateSecretHash("maya@campus.edu", "client", "secret")
	b := GenerateSecretHash("maya@campus.edu", "client", "secret")
	if a != b {
		t.Errorf("Secret hash must be deterministic")
	}
	if a == GenerateSecretHash("leo@campus.edu", "client", "secret") {
		t.Errorf("Different usernames must hash differently")
	}
}
