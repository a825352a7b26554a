// Package protocols implements the prover and verifier state machines,
// the fixed constraint/composition polynomials, and the proof shape they
// agree on.
package protocols

import "github.com/picostark/picostark/internal/picostark/core"

// GenerateTrace computes the four-element execution trace t_0=3,
// t_{i+1}=t_i^2. This is the "external collaborator" spec.md §1 calls out
// as out of scope for the protocol engine itself — a real system would
// plug in an arbitrary computation here, but this repository only ever
// proves this one fixed trace.
func GenerateTrace() []core.BaseField {
	t0 := core.NewBaseField(3)
	trace := make([]core.BaseField, 0, 4)
	trace = append(trace, t0)

	last := t0
	for i := 0; i < 3; i++ {
		last = last.Square()
		trace = append(trace, last)
	}

	return trace
}
