package customer

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("Hash() returned the plaintext password")
	}

	if !h.Verify("correct horse battery staple", hash) {
		t.Error("Verify() = false for the correct password")
	}
	if h.Verify("wrong password", hash) {
		t.Error("Verify() = true for a wrong password")
	}
	if h.Verify("correct horse battery staple", "not-a-hash") {
		t.Error("Verify() = true for a malformed hash")
	}
}

func TestHashIsSalted(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical, want distinct salts")
	}
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	h := NewPasswordHasher()

	// bcrypt rejects inputs longer than 72 bytes.
	if _, err := h.Hash(strings.Repeat("x", 73)); err == nil {
		t.Error("Hash() of 73-byte password succeeded, want error")
	}
}
