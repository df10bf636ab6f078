package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/epicevents/crm-system/internal/core/domain"
)

func TestPasswordHasherHashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("S3cret!pass")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "S3cret!pass" {
		t.Fatal("Hash() returned the plaintext password")
	}
	if !hasher.Verify("S3cret!pass", hash) {
		t.Fatal("Verify() = false for the correct password")
	}
	if hasher.Verify("wrong-password", hash) {
		t.Fatal("Verify() = true for a wrong password")
	}
}

func TestPasswordHasherFreshSaltPerCall(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("S3cret!pass")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := hasher.Hash("S3cret!pass")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Fatal("hashing the same password twice produced identical hashes")
	}
	if !hasher.Verify("S3cret!pass", first) || !hasher.Verify("S3cret!pass", second) {
		t.Fatal("Verify() failed against one of the two hashes")
	}
}

func TestPasswordHasherRejectsOver72Bytes(t *testing.T) {
	hasher := NewPasswordHasher()

	if _, err := hasher.Hash(strings.Repeat("a", 72)); err != nil {
		t.Fatalf("Hash() rejected a 72-byte password: %v", err)
	}

	_, err := hasher.Hash(strings.Repeat("a", 73))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Hash() error = %v, want domain.ErrValidation", err)
	}
}

func TestPasswordHasherLimitCountsBytesNotRunes(t *testing.T) {
	hasher := NewPasswordHasher()

	// 25 three-byte runes: 25 characters but 75 bytes.
	long := strings.Repeat("€", 25)
	if len(long) != 75 {
		t.Fatalf("test password is %d bytes, want 75", len(long))
	}

	_, err := hasher.Hash(long)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Hash() error = %v, want domain.ErrValidation", err)
	}

	// 24 of the same runes fit within the limit.
	if _, err := hasher.Hash(strings.Repeat("€", 24)); err != nil {
		t.Fatalf("Hash() rejected a 72-byte unicode password: %v", err)
	}
}
