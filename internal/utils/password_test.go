package utils

import (
	"strings"
	"testing"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword("newpassword123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if hash == "newpassword123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}
}

func TestHashPassword_Empty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("expected error for empty password, got nil")
	}
}

func TestHashPassword_NotDeterministic(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// salt is embedded in the output, so two hashes of the same password differ
	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestVerifyPassword_Match(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !VerifyPassword("correct horse battery staple", hash) {
		t.Error("expected matching password to verify")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("password-one")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if VerifyPassword("password-two", hash) {
		t.Error("expected non-matching password to fail verification")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	// malformed hashes are a non-match, never an error
	if VerifyPassword("whatever", "not-a-bcrypt-hash") {
		t.Error("expected malformed hash to fail verification")
	}
}

func TestVerifyPassword_EmptyHash(t *testing.T) {
	if VerifyPassword("whatever", "") {
		t.Error("expected empty hash to fail verification")
	}
}
