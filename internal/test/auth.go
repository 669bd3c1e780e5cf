package test

// VerifierStub implements bearer token verification for middleware tests.
type VerifierStub struct {
	Disabled bool
	Err      error
	Seen     *[]string
}

func (s VerifierStub) Enabled() bool {
	return !s.Disabled
}

// Verify records the token and returns the configured error.
func (s VerifierStub) Verify(token string) error {
	if s.Seen != nil {
		*s.Seen = append(*s.Seen, token)
	}
	return s.Err
}
