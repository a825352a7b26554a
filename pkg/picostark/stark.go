package picostark

import (
	"fmt"

	"github.com/picostark/picostark/internal/picostark/protocols"
)

// GenerateProof runs the prover on the fixed protocol trace and returns the
// resulting Proof. cfg is validated before use; a nil cfg is replaced with
// DefaultConfig(). The internal prover never returns a partial proof on
// failure (spec.md §7): an invariant violation is recovered here and
// reported as a *ProofError with ErrInvariant instead of propagating the
// panic to the caller.
func GenerateProof(cfg *Config) (proof *Proof, err error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if verr := cfg.Validate(); verr != nil {
		return nil, &ProofError{Code: ErrInvalidConfig, Message: "invalid configuration", Cause: verr}
	}

	defer func() {
		if r := recover(); r != nil {
			proof = nil
			err = &ProofError{Code: ErrInvariant, Message: fmt.Sprintf("prover invariant violation: %v", r)}
		}
	}()

	return protocols.Prove(cfg), nil
}

// Verify checks proof against cfg's channel parameters and returns nil if
// it is accepted. Any soundness failure (a bad Merkle inclusion or a
// failed FRI consistency equation) is reported as a *ProofError with
// ErrInvalidProof; it is never a panic, since an adversarial proof is
// expected input here, not a prover bug (spec.md §7).
func Verify(proof *Proof, cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if verr := cfg.Validate(); verr != nil {
		return &ProofError{Code: ErrInvalidConfig, Message: "invalid configuration", Cause: verr}
	}
	if proof == nil {
		return &ProofError{Code: ErrInvalidProof, Message: "proof is nil"}
	}

	if err := protocols.Verify(proof, cfg); err != nil {
		return &ProofError{Code: ErrInvalidProof, Message: "proof rejected", Cause: err}
	}
	return nil
}

// GenerateTrace exposes the fixed execution trace this protocol proves
// knowledge of, [3, 9, 13, 16], for callers that want to inspect it
// directly (e.g. tests, documentation examples).
func GenerateTrace() []BaseField {
	return protocols.GenerateTrace()
}
