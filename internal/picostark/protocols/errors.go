package protocols

import (
	"errors"
	"fmt"
)

// ErrVerificationFailed is the sentinel wrapped by every recoverable
// rejection the verifier can return: a failed Merkle inclusion check or a
// failed FRI consistency equation (spec.md §7). It is never returned by
// the prover, which treats any internal failure as an invariant
// violation (a panic) instead.
var ErrVerificationFailed = errors.New("stark proof rejected")

func verificationError(reason string) error {
	return fmt.Errorf("%w: %s", ErrVerificationFailed, reason)
}
