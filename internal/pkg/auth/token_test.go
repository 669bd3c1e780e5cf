package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
)

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(0)
	if hasher.cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected cost: %d", hasher.cost)
	}
}

func TestNewBcryptHasher_CustomCost(t *testing.T) {
	cost := bcrypt.MinCost
	hasher := NewBcryptHasher(cost)
	if hasher.cost != cost {
		t.Fatalf("unexpected cost: %d", hasher.cost)
	}
}

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := hasher.Compare(hash, "secret"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("expected compare error for wrong token")
	}
}

func TestBcryptHasher_Errors(t *testing.T) {
	if _, err := NewBcryptHasher(bcrypt.MinCost).Hash(""); !errors.Is(err, domainErrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token for empty input, got %v", err)
	}
	hasher := &BcryptHasher{cost: bcrypt.MaxCost + 1}
	if _, err := hasher.Hash("token"); err == nil {
		t.Fatal("expected hash error for invalid cost")
	}
}

func TestHashVerifier(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	verifier := NewHashVerifier(hash, hasher)

	if !verifier.Enabled() {
		t.Fatal("expected verifier to be enabled")
	}
	if err := verifier.Verify("s3cret"); err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	for _, token := range []string{"", "other"} {
		if err := verifier.Verify(token); !errors.Is(err, domainErrors.ErrInvalidToken) {
			t.Fatalf("expected invalid token for %q, got %v", token, err)
		}
	}
}

func TestHashVerifierMalformedHash(t *testing.T) {
	verifier := NewHashVerifier("not-a-bcrypt-hash", NewBcryptHasher(bcrypt.MinCost))
	if err := verifier.Verify("token"); !errors.Is(err, domainErrors.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestHashVerifierDisabled(t *testing.T) {
	verifier := NewHashVerifier("", NewBcryptHasher(0))
	if verifier.Enabled() {
		t.Fatal("expected verifier to be disabled")
	}
	if err := verifier.Verify(""); err != nil {
		t.Fatalf("disabled verifier should accept anything, got %v", err)
	}
}
