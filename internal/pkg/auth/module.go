package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/ordertrack/internal/config"
)

// Module provides API token primitives via fx.
var Module = fx.Options(
	fx.Provide(newHasher),
	fx.Provide(newVerifier),
)

func newHasher() Hasher {
	return NewBcryptHasher(0)
}

type verifierParams struct {
	fx.In

	Config *config.Config
	Hasher Hasher
}

func newVerifier(p verifierParams) Verifier {
	return NewHashVerifier(p.Config.APITokenHash, p.Hasher)
}
