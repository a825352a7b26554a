package protocols

import (
	"fmt"

	"github.com/picostark/picostark/internal/picostark/core"
	"github.com/picostark/picostark/internal/picostark/utils"
)

// Prove runs the full prover state machine of spec.md §4.7 and returns the
// resulting Proof. There is no partial proof: every error this function's
// helpers can return reflects a prover-side bug (a wrong domain size, a
// fold on a constant polynomial, a wrong commitment count), never
// something an adversarial verifier input could trigger, so they are
// treated as invariant violations and surfaced as panics rather than
// threaded through a Go error return (spec.md §7).
func Prove(cfg *utils.Config) *Proof {
	channel := utils.NewChannel(cfg)

	// Step 2: the trace is an external collaborator; we just call it.
	trace := GenerateTrace()

	traceDomain := core.TraceDomain().Elements
	ldeDomain := core.LDEDomain().Elements

	// Step 3: interpolate the trace over D_trace.
	traceInterpolant := must(core.LagrangeInterpolate(traceDomain, trace))

	// Step 4-5: evaluate over D_lde, commit.
	traceLDE := traceInterpolant.EvalDomain(ldeDomain)
	traceTree := must(core.NewMerkleTree(traceLDE))
	channel.Commit(traceTree.Root())

	// Step 6: draw alpha0, alpha1; build the composition polynomial.
	alpha0 := channel.RandomElement()
	alpha1 := channel.RandomElement()
	compositionPoly := CompositionPolynomial(alpha0, alpha1)

	// Step 7-8: evaluate over D_lde, commit.
	cpLDE := compositionPoly.EvalDomain(ldeDomain)
	cpTree := must(core.NewMerkleTree(cpLDE))
	channel.Commit(cpTree.Root())

	// Step 9-10: draw beta1, fold to L1, evaluate over D1 = D_lde[0:4]^2, commit.
	beta1 := channel.RandomElement()
	l1Poly := must(compositionPoly.FoldFRI(beta1))
	d1Domain := SquareDomain(ldeDomain[:4])
	l1Evals := l1Poly.EvalDomain(d1Domain)
	l1Tree := must(core.NewMerkleTree(l1Evals))
	channel.Commit(l1Tree.Root())

	// Step 11: draw beta0, fold to L0, check it is truly constant.
	beta0 := channel.RandomElement()
	l0Poly := must(l1Poly.FoldFRI(beta0))
	d0Domain := SquareDomain(d1Domain[:2])
	l0At0 := l0Poly.Eval(d0Domain[0])
	l0At1 := l0Poly.Eval(d0Domain[1])
	if !l0At0.Equal(l0At1) {
		panic(fmt.Sprintf("picostark: FRI layer deg 0 is not constant across its domain: %s != %s", l0At0, l0At1))
	}

	// Step 12: draw the query index, constrained so idx+2 < len(D_lde).
	idx := int(channel.RandomInteger(uint8(len(ldeDomain) - 2)))

	// Step 13: emit the four openings and the bare scalar.
	traceXOpening := openAt(traceLDE, traceTree, idx)
	traceGXOpening := openAt(traceLDE, traceTree, idx+2)

	cpMinusXIndex := NegationShift(idx, len(ldeDomain))
	cpMinusXOpening := openAt(cpLDE, cpTree, cpMinusXIndex)

	l1Index := (idx%len(d1Domain) + len(d1Domain)/2) % len(d1Domain)
	l1MinusXOpening := openAt(l1Evals, l1Tree, l1Index)

	// Step 14: exactly three commitments must have been absorbed.
	if channel.CommitmentCount() != 3 {
		panic(fmt.Sprintf("picostark: expected 3 absorbed commitments, got %d", channel.CommitmentCount()))
	}

	return &Proof{
		TraceLDECommitment:           traceTree.Root(),
		CompositionPolyLDECommitment: cpTree.Root(),
		FRILayerDeg1Commitment:       l1Tree.Root(),
		TraceX:                       traceXOpening,
		TraceGX:                      traceGXOpening,
		CPMinusX:                     cpMinusXOpening,
		FRILayerDeg1MinusX2:          l1MinusXOpening,
		FRILayerDeg0:                 l0At0,
	}
}

// openAt builds the Opening for values[index], path-proved against tree.
func openAt(values []core.BaseField, tree *core.MerkleTree, index int) Opening {
	path := must(tree.Path(index))
	return Opening{Value: values[index], Path: path}
}

// must panics on a non-nil error, converting an internal invariant
// violation into the panic-class failure spec.md §7 calls for.
func must[T any](value T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("picostark: invariant violation: %v", err))
	}
	return value
}
