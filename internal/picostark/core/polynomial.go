package core

import "fmt"

// Polynomial is a dense univariate polynomial over BaseField:
// coefficients[i] is the coefficient of x^i. The zero polynomial is
// represented as Coefficients: [0]; length is always at least one.
//
// Multiplication is not followed by trailing-zero normalization, so
// Degree() may over-report the true algebraic degree after a
// multiplication that happens to zero out leading terms. This is safe for
// the fixed workloads in this protocol (nothing in the protocol calls
// Degree; Mul sizes its output from the coefficient counts) but means a
// product must not be compared coefficient-by-coefficient with another
// polynomial; compare by evaluating both at a point outside every domain
// in use instead.
type Polynomial struct {
	Coefficients []BaseField
}

// NewPolynomial wraps a coefficient slice. An empty slice is invalid;
// callers that mean "the zero polynomial" should use ZeroPolynomial.
func NewPolynomial(coefficients []BaseField) *Polynomial {
	if len(coefficients) == 0 {
		panic("core: polynomial must have at least one coefficient")
	}
	cp := make([]BaseField, len(coefficients))
	copy(cp, coefficients)
	return &Polynomial{Coefficients: cp}
}

// ZeroPolynomial returns the polynomial p(x) = 0.
func ZeroPolynomial() *Polynomial {
	return &Polynomial{Coefficients: []BaseField{Zero()}}
}

// OnePolynomial returns the polynomial p(x) = 1.
func OnePolynomial() *Polynomial {
	return &Polynomial{Coefficients: []BaseField{One()}}
}

// Degree returns len(Coefficients)-1. See the type doc comment for the
// normalization caveat.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Eval evaluates p(x) = sum a_i * x^i by naive summation.
func (p *Polynomial) Eval(x BaseField) BaseField {
	result := Zero()
	for i, a := range p.Coefficients {
		result = result.Add(a.Mul(x.Exp(i)))
	}
	return result
}

// EvalDomain evaluates p at every point of domain, in order.
func (p *Polynomial) EvalDomain(domain []BaseField) []BaseField {
	out := make([]BaseField, len(domain))
	for i, x := range domain {
		out[i] = p.Eval(x)
	}
	return out
}

// LagrangeInterpolate returns the unique polynomial of degree < len(domain)
// that takes on the given values at the given (distinct) domain points,
// using the basis form L_j(x) = y_j * prod_{k!=j} (x - x_k)/(x_j - x_k).
func LagrangeInterpolate(domain, values []BaseField) (*Polynomial, error) {
	if len(domain) != len(values) {
		return nil, fmt.Errorf("%w: domain has %d points, values has %d", ErrDomainMismatch, len(domain), len(values))
	}

	result := ZeroPolynomial()
	for j := range domain {
		basis := OnePolynomial()
		denom := One()
		for k := range domain {
			if k == j {
				continue
			}
			// (x - x_k)
			basis = basis.Mul(NewPolynomial([]BaseField{domain[k].Neg(), One()}))
			denom = denom.Mul(domain[j].Sub(domain[k]))
		}
		invDenom, err := denom.Inv()
		if err != nil {
			// Unreachable for a distinct domain: denom is a product of
			// nonzero differences.
			return nil, fmt.Errorf("lagrange interpolation: %w", err)
		}
		coeff := values[j].Mul(invDenom)
		result = result.Add(basis.ScalarMul(coeff))
	}
	return result, nil
}

// Add returns p + q, coefficientwise, padded to the longer operand's length.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	n := len(p.Coefficients)
	if len(q.Coefficients) > n {
		n = len(q.Coefficients)
	}
	out := make([]BaseField, n)
	for i := 0; i < n; i++ {
		var a, b BaseField
		if i < len(p.Coefficients) {
			a = p.Coefficients[i]
		}
		if i < len(q.Coefficients) {
			b = q.Coefficients[i]
		}
		out[i] = a.Add(b)
	}
	return &Polynomial{Coefficients: out}
}

// Sub returns p - q, coefficientwise, padded to the longer operand's length.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	n := len(p.Coefficients)
	if len(q.Coefficients) > n {
		n = len(q.Coefficients)
	}
	out := make([]BaseField, n)
	for i := 0; i < n; i++ {
		var a, b BaseField
		if i < len(p.Coefficients) {
			a = p.Coefficients[i]
		}
		if i < len(q.Coefficients) {
			b = q.Coefficients[i]
		}
		out[i] = a.Sub(b)
	}
	return &Polynomial{Coefficients: out}
}

// Mul returns p * q via convolution. The result has
// len(p)+len(q)-1 coefficients, which may include trailing zeros; see the
// type doc comment.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	out := make([]BaseField, len(p.Coefficients)+len(q.Coefficients)-1)
	for i := range out {
		out[i] = Zero()
	}
	for i, a := range p.Coefficients {
		for j, b := range q.Coefficients {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return &Polynomial{Coefficients: out}
}

// ScalarMul returns c * p, i.e. multiplication by the degree-0 polynomial c.
func (p *Polynomial) ScalarMul(c BaseField) *Polynomial {
	out := make([]BaseField, len(p.Coefficients))
	for i, a := range p.Coefficients {
		out[i] = a.Mul(c)
	}
	return &Polynomial{Coefficients: out}
}

// ScalarDiv returns p / c, i.e. multiplication by c's field inverse.
// Division by a zero scalar is an invariant violation.
func (p *Polynomial) ScalarDiv(c BaseField) (*Polynomial, error) {
	inv, err := c.Inv()
	if err != nil {
		return nil, fmt.Errorf("polynomial scalar division: %w", err)
	}
	return p.ScalarMul(inv), nil
}

// FoldFRI performs one FRI folding step. Given p(x) = p_even(x^2) +
// x*p_odd(x^2), it returns p_even + beta*p_odd, built by splitting the
// coefficient array into even- and odd-indexed subsequences. Requires at
// least two coefficients (a constant polynomial has no odd part to fold);
// violating this is a prover-side invariant violation, since the prover
// controls when folding happens.
func (p *Polynomial) FoldFRI(beta BaseField) (*Polynomial, error) {
	if len(p.Coefficients) < 2 {
		return nil, fmt.Errorf("%w: cannot FRI-fold a constant polynomial", ErrShortPolynomial)
	}

	halfLen := (len(p.Coefficients) + 1) / 2
	out := make([]BaseField, halfLen)
	for i := range out {
		evenCoeff := Zero()
		if 2*i < len(p.Coefficients) {
			evenCoeff = p.Coefficients[2*i]
		}
		oddCoeff := Zero()
		if 2*i+1 < len(p.Coefficients) {
			oddCoeff = p.Coefficients[2*i+1]
		}
		out[i] = evenCoeff.Add(beta.Mul(oddCoeff))
	}
	return &Polynomial{Coefficients: out}, nil
}
