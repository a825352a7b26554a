package protocols

import "github.com/picostark/picostark/internal/picostark/core"

// Opening pairs an opened field element with the Merkle path that proves
// it was the committed value at a particular index.
type Opening struct {
	Value core.BaseField
	Path  core.MerklePath
}

// Proof is the external shape of a picostark STARK proof: three Merkle
// roots from the commit phase, and the four (value, path) openings plus
// one bare scalar from the single query (spec.md §3, §6). Serializing
// this to bytes is an external collaborator's job, not the protocol
// engine's (spec.md §1).
type Proof struct {
	// Commitment phase.
	TraceLDECommitment           []byte
	CompositionPolyLDECommitment []byte
	FRILayerDeg1Commitment       []byte

	// Query phase.
	TraceX              Opening // trace_lde(x)
	TraceGX             Opening // trace_lde(gx)
	CPMinusX            Opening // composition_poly_lde(-x)
	FRILayerDeg1MinusX2 Opening // fri_layer_deg_1(-x^2)

	// FRILayerDeg0 is the single value the fully-folded, degree-0
	// polynomial takes everywhere on its two-element domain. It is sent
	// as a bare scalar rather than a Merkle-committed value: once the
	// prover is honest, a degree-0 polynomial's root is already implied by
	// this one value, so committing to it would add a Merkle path without
	// adding any information the verifier doesn't already have.
	FRILayerDeg0 core.BaseField
}
