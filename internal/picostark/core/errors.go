package core

import "errors"

// Sentinel errors for invariant violations inside the field/polynomial/
// Merkle algebra. These never occur on honestly-constructed inputs; they
// exist to give prover bugs a distinguishable signature, per spec.md §7.
var (
	// ErrFieldInvariant marks a division, inverse, or log attempted on zero.
	ErrFieldInvariant = errors.New("field invariant violation")

	// ErrDomainMismatch marks a Lagrange interpolation whose domain and
	// evaluation slices differ in length.
	ErrDomainMismatch = errors.New("domain and evaluation length mismatch")

	// ErrUnsupportedGroupSize marks a CyclicGroup requested for a size
	// other than 4 or 8.
	ErrUnsupportedGroupSize = errors.New("unsupported cyclic group size")

	// ErrShortPolynomial marks an FRI fold attempted on a polynomial with
	// fewer than two coefficients (a constant, which cannot be split into
	// even/odd parts).
	ErrShortPolynomial = errors.New("polynomial has fewer than two coefficients")

	// ErrEmptyLeaves marks a Merkle tree construction over zero leaves.
	ErrEmptyLeaves = errors.New("merkle tree requires at least one leaf")

	// ErrLeafCountNotPowerOfTwo marks a Merkle tree whose leaf count is not
	// a power of two.
	ErrLeafCountNotPowerOfTwo = errors.New("merkle leaf count must be a power of two")

	// ErrIndexOutOfRange marks an out-of-bounds Merkle path request.
	ErrIndexOutOfRange = errors.New("merkle index out of range")
)
