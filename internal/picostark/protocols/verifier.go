package protocols

import (
	"github.com/picostark/picostark/internal/picostark/core"
	"github.com/picostark/picostark/internal/picostark/utils"
)

// Verify runs the verifier state machine of spec.md §4.8 against proof. It
// replays the channel in lock-step with the prover, so it must draw
// exactly the same sequence of randomness from exactly the same
// commitments in exactly the same order as Prove does. Unlike Prove, every
// failure here is something an adversarial proof could trigger, so
// Verify returns a plain error instead of panicking (spec.md §7).
func Verify(proof *Proof, cfg *utils.Config) error {
	channel := utils.NewChannel(cfg)
	ldeDomain := core.LDEDomain().Elements
	traceDomain := core.TraceDomain().Elements

	channel.Commit(proof.TraceLDECommitment)
	alpha0 := channel.RandomElement()
	alpha1 := channel.RandomElement()

	channel.Commit(proof.CompositionPolyLDECommitment)
	beta1 := channel.RandomElement()

	channel.Commit(proof.FRILayerDeg1Commitment)
	beta0 := channel.RandomElement()

	idx := int(channel.RandomInteger(uint8(len(ldeDomain) - 2)))

	if err := verifyInclusions(proof, idx, len(ldeDomain)); err != nil {
		return err
	}

	return verifyConsistency(proof, traceDomain, ldeDomain, idx, alpha0, alpha1, beta1, beta0)
}

// verifyInclusions checks all four openings against the roots the proof
// itself claims for them. It does not use idx or ldeDomainSize: the leaf
// index a path leads to is not compared with the index Prove derives from
// idx, so only membership in the committed tree is checked.
func verifyInclusions(proof *Proof, idx, ldeDomainSize int) error {
	if !core.VerifyPath(proof.TraceX.Value, proof.TraceX.Path, proof.TraceLDECommitment) {
		return verificationError("trace_lde(x) Merkle path does not verify")
	}
	if !core.VerifyPath(proof.TraceGX.Value, proof.TraceGX.Path, proof.TraceLDECommitment) {
		return verificationError("trace_lde(gx) Merkle path does not verify")
	}
	if !core.VerifyPath(proof.CPMinusX.Value, proof.CPMinusX.Path, proof.CompositionPolyLDECommitment) {
		return verificationError("composition_poly_lde(-x) Merkle path does not verify")
	}
	if !core.VerifyPath(proof.FRILayerDeg1MinusX2.Value, proof.FRILayerDeg1MinusX2.Path, proof.FRILayerDeg1Commitment) {
		return verificationError("fri_layer_deg_1(-x^2) Merkle path does not verify")
	}
	return nil
}

// verifyConsistency recomputes the algebraic identities of spec.md §4.8
// step 7 from the opened values alone, without ever touching the secret
// trace or the folded polynomials the prover held.
func verifyConsistency(proof *Proof, traceDomain, ldeDomain []core.BaseField, idx int, alpha0, alpha1, beta1, beta0 core.BaseField) error {
	x := ldeDomain[idx]
	two := core.NewBaseField(2)

	traceX := proof.TraceX.Value
	traceGX := proof.TraceGX.Value

	boundaryNumerator := traceX.Sub(core.NewBaseField(3))
	boundaryDenominator := x.Sub(traceDomain[0])
	boundaryQ, err := boundaryNumerator.Div(boundaryDenominator)
	if err != nil {
		return verificationError("boundary quotient denominator vanished at the query point")
	}

	transitionNumerator := traceGX.Sub(traceX.Square())
	transitionDenominator := x.Sub(traceDomain[0]).Mul(x.Sub(traceDomain[1])).Mul(x.Sub(traceDomain[2]))
	transitionQ, err := transitionNumerator.Div(transitionDenominator)
	if err != nil {
		return verificationError("transition quotient denominator vanished at the query point")
	}

	cpX := alpha0.Mul(boundaryQ).Add(alpha1.Mul(transitionQ))
	cpMinusX := proof.CPMinusX.Value

	l1X2, err := foldPair(cpX, cpMinusX, beta1, two, x)
	if err != nil {
		return verificationError("FRI fold to layer 1 divided by zero")
	}

	l1NegX2 := proof.FRILayerDeg1MinusX2.Value

	l0X4, err := foldPair(l1X2, l1NegX2, beta0, two, x.Square())
	if err != nil {
		return verificationError("FRI fold to layer 0 divided by zero")
	}

	if !l0X4.Equal(proof.FRILayerDeg0) {
		return verificationError("FRI consistency equation failed at the query point")
	}
	return nil
}

// foldPair evaluates (pX+pMinusX)/2 + beta*(pX-pMinusX)/(2*x), the same
// even/odd recombination Polynomial.FoldFRI performs symbolically, but
// applied directly to two opened evaluations instead of to coefficients.
func foldPair(pX, pMinusX, beta, two, x core.BaseField) (core.BaseField, error) {
	sum := pX.Add(pMinusX)
	evenPart, err := sum.Div(two)
	if err != nil {
		return core.BaseField{}, err
	}

	diff := pX.Sub(pMinusX)
	oddPart, err := diff.Div(two.Mul(x))
	if err != nil {
		return core.BaseField{}, err
	}

	return evenPart.Add(beta.Mul(oddPart)), nil
}
