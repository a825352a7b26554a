package protocols

import (
	"fmt"

	"github.com/picostark/picostark/internal/picostark/core"
)

// BoundaryQuotient returns Q_bdry(x) = (t(x) - 3) / (x - 1), hand-derived
// for this specific trace (spec.md §4.6). It is not computed symbolically
// at runtime; VerifyQuotientConstants checks it against the trace
// interpolant independently.
func BoundaryQuotient() *core.Polynomial {
	return core.NewPolynomial([]core.BaseField{
		core.NewBaseField(14),
		core.NewBaseField(15),
		core.NewBaseField(13),
	})
}

// TransitionQuotient returns Q_trans(x) = (t(gx) - t(x)^2) /
// ((x-1)(x-13)(x-16)), hand-derived for this specific trace.
func TransitionQuotient() *core.Polynomial {
	return core.NewPolynomial([]core.BaseField{
		core.NewBaseField(16),
		core.NewBaseField(9),
		core.NewBaseField(12),
		core.NewBaseField(1),
	})
}

// CompositionPolynomial returns CP(x) = alpha0*Q_bdry(x) + alpha1*Q_trans(x),
// a random linear combination of the two constraint quotients under
// channel-drawn coefficients. Its algebraic degree is at most 3.
func CompositionPolynomial(alpha0, alpha1 core.BaseField) *core.Polynomial {
	boundary := BoundaryQuotient().ScalarMul(alpha0)
	transition := TransitionQuotient().ScalarMul(alpha1)
	return boundary.Add(transition)
}

// VerifyQuotientConstants independently checks the hand-derived constants
// in BoundaryQuotient and TransitionQuotient against the actual trace
// interpolant, by evaluating both sides of the quotient identities at a
// point outside D_trace. Spec.md §4.6 and §9 require this: the constants
// were derived by hand for this one trace, and an implementation must not
// trust them blindly.
func VerifyQuotientConstants() error {
	trace := GenerateTrace()
	domain := core.TraceDomain().Elements

	interpolant, err := core.LagrangeInterpolate(domain, trace)
	if err != nil {
		return fmt.Errorf("interpolating trace: %w", err)
	}

	// A point outside D_trace = [1, 13, 16, 4].
	x := core.NewBaseField(2)

	if err := checkBoundaryIdentity(interpolant, domain, x); err != nil {
		return err
	}
	if err := checkTransitionIdentity(interpolant, domain, x); err != nil {
		return err
	}
	return nil
}

func checkBoundaryIdentity(interpolant *core.Polynomial, domain []core.BaseField, x core.BaseField) error {
	numerator := interpolant.Eval(x).Sub(core.NewBaseField(3))
	denominator := x.Sub(domain[0])
	want, err := numerator.Div(denominator)
	if err != nil {
		return fmt.Errorf("boundary identity denominator vanished: %w", err)
	}
	got := BoundaryQuotient().Eval(x)
	if !want.Equal(got) {
		return fmt.Errorf("boundary quotient constant mismatch: derived %s, hand-coded constant evaluates to %s", want, got)
	}
	return nil
}

func checkTransitionIdentity(interpolant *core.Polynomial, domain []core.BaseField, x core.BaseField) error {
	g := domain[1] // trace-domain generator, 13
	gx := g.Mul(x)

	numerator := interpolant.Eval(gx).Sub(interpolant.Eval(x).Square())
	denominator := x.Sub(domain[0]).Mul(x.Sub(domain[1])).Mul(x.Sub(domain[2]))
	want, err := numerator.Div(denominator)
	if err != nil {
		return fmt.Errorf("transition identity denominator vanished: %w", err)
	}
	got := TransitionQuotient().Eval(x)
	if !want.Equal(got) {
		return fmt.Errorf("transition quotient constant mismatch: derived %s, hand-coded constant evaluates to %s", want, got)
	}
	return nil
}
