package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/polkiloo/ordertrack/internal/domain/errors"
)

// Hasher defines hashing strategy for API tokens.
type Hasher interface {
	Hash(token string) (string, error)
	Compare(hash string, token string) error
}

// BcryptHasher uses bcrypt to hash tokens.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher with provided cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(token string) (string, error) {
	if token == "" {
		return "", domainErrors.ErrInvalidToken
	}
	encoded, err := bcrypt.GenerateFromPassword([]byte(token), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (h *BcryptHasher) Compare(hash string, token string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token))
}

// Verifier checks bearer tokens presented by API callers.
type Verifier interface {
	Enabled() bool
	Verify(token string) error
}

// HashVerifier accepts the single token matching a stored hash.
// An empty hash disables verification.
type HashVerifier struct {
	hash   string
	hasher Hasher
}

func NewHashVerifier(hash string, hasher Hasher) *HashVerifier {
	return &HashVerifier{hash: hash, hasher: hasher}
}

func (v *HashVerifier) Enabled() bool {
	return v.hash != ""
}

// Verify returns ErrInvalidToken unless token matches the stored hash.
func (v *HashVerifier) Verify(token string) error {
	if !v.Enabled() {
		return nil
	}
	if token == "" {
		return domainErrors.ErrInvalidToken
	}
	if err := v.hasher.Compare(v.hash, token); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domainErrors.ErrInvalidToken
		}
		return errors.Join(domainErrors.ErrInvalidToken, err)
	}
	return nil
}
