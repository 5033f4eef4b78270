package passgen

import (
	"strings"
	"testing"

	"OnionShare-NG/internal/errors"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("syrup-enzyme")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if !strings.HasPrefix(hash, "argon2id$") {
		t.Errorf("HashPassword() = %q; want argon2id$ prefix", hash)
	}

	if err := VerifyPassword("syrup-enzyme", hash); err != nil {
		t.Errorf("VerifyPassword(correct) error: %v", err)
	}
	if err := VerifyPassword("wrong-password", hash); !errors.Is(err, errors.ErrHashMismatch) {
		t.Errorf("VerifyPassword(wrong) error = %v; want ErrHashMismatch", err)
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	a, err := HashPassword("syrup-enzyme")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	b, err := HashPassword("syrup-enzyme")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical; salt is not random")
	}
}

func TestVerifyPasswordMalformed(t *testing.T) {
	inputs := []string{
		"",
		"argon2id",
		"argon2id$short",
		"argon2id$!!!$!!!",
		"md5$c2FsdHNhbHRzYWx0c2FsdA$c2FsdHNhbHRzYWx0c2FsdA",
		"argon2id$c2FsdA$c2FsdA", // truncated salt and key
	}

	for _, in := range inputs {
		if err := VerifyPassword("syrup-enzyme", in); !errors.Is(err, errors.ErrMalformedHash) {
			t.Errorf("VerifyPassword(%q) error = %v; want ErrMalformedHash", in, err)
		}
	}
}
