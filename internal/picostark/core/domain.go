package core

import "fmt"

// CyclicGroup is an ordered sequence of BaseField elements: successive
// powers of a generator, optionally shifted by a coset representative.
// Elements[i] = shift * generator^i.
type CyclicGroup struct {
	Generator BaseField
	Elements  []BaseField
}

// Powers returns [shift*g^0, shift*g^1, ..., shift*g^(n-1)].
func Powers(g BaseField, n int, shift BaseField) []BaseField {
	out := make([]BaseField, n)
	current := shift
	for i := 0; i < n; i++ {
		out[i] = current
		current = current.Mul(g)
	}
	return out
}

// NewCyclicGroup returns the order-n subgroup for n in {4, 8}. For n=8 the
// result is the coset shifted by 3 — i.e. D_lde directly, not the plain
// order-8 subgroup — since that coset is the only size-8 domain this
// protocol ever uses. Any other size is an input error.
func NewCyclicGroup(n int) (*CyclicGroup, error) {
	switch n {
	case 4:
		generator := NewBaseField(13)
		return &CyclicGroup{
			Generator: generator,
			Elements:  Powers(generator, 4, One()),
		}, nil
	case 8:
		generator := NewBaseField(9)
		shift := NewBaseField(3)
		return &CyclicGroup{
			Generator: generator,
			Elements:  Powers(generator, 8, shift),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d (only 4 and 8 are supported)", ErrUnsupportedGroupSize, n)
	}
}

// TraceDomain returns D_trace = [1, 13, 16, 4], the order-4 subgroup
// generated by 13. It supplies the interpolation nodes for the execution
// trace and the boundary/transition quotient denominators.
func TraceDomain() *CyclicGroup {
	d, err := NewCyclicGroup(4)
	if err != nil {
		panic(err) // unreachable: 4 is always supported
	}
	return d
}

// LDEDomain returns D_lde, the coset of the order-8 subgroup generated by
// 9, shifted by 3. It is disjoint from D_trace, which is what makes
// querying the low-degree extension at LDE points reveal nothing about the
// trace domain itself.
func LDEDomain() *CyclicGroup {
	d, err := NewCyclicGroup(8)
	if err != nil {
		panic(err) // unreachable: 8 is always supported
	}
	return d
}

// UnshiftedOrder8Subgroup returns the plain order-8 multiplicative
// subgroup [1, 9, 13, 15, 16, 8, 4, 2] generated by 9 — i.e. D_lde without
// its coset shift. It is not used by the protocol itself (the protocol
// only ever needs the shifted coset D_lde), but documents the algebraic
// relationship g = w^2 between the trace-domain generator g=13 and the
// order-8 generator w=9, exercised by domain_test.go.
func UnshiftedOrder8Subgroup() []BaseField {
	return Powers(NewBaseField(9), 8, One())
}
