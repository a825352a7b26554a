package protocols

import (
	"testing"

	"github.com/picostark/picostark/internal/picostark/core"
)

// TestVerifyQuotientConstants checks the hand-derived boundary and
// transition quotient constants actually match the trace they were
// derived from.
func TestVerifyQuotientConstants(t *testing.T) {
	if err := VerifyQuotientConstants(); err != nil {
		t.Fatalf("VerifyQuotientConstants failed: %v", err)
	}
}

// TestCompositionPolynomialIsLinear checks CP is linear in its two
// coefficients, which the prover and verifier both rely on implicitly.
func TestCompositionPolynomialIsLinear(t *testing.T) {
	alpha0 := core.NewBaseField(5)
	alpha1 := core.NewBaseField(11)

	cp := CompositionPolynomial(alpha0, alpha1)
	boundary := BoundaryQuotient()
	transition := TransitionQuotient()

	x := core.NewBaseField(2)
	want := alpha0.Mul(boundary.Eval(x)).Add(alpha1.Mul(transition.Eval(x)))
	got := cp.Eval(x)
	if !got.Equal(want) {
		t.Errorf("CP(%s) = %s, expected %s", x, got, want)
	}
}
