package protocols

import "github.com/picostark/picostark/internal/picostark/core"

// SquareDomain returns {x^2 : x in domain}. Each FRI folding step halves
// the domain by squaring it: the domain for the folded polynomial L_{i+1}
// is the square of the domain for L_i (spec.md §4.2, §4.7 step 9).
func SquareDomain(domain []core.BaseField) []core.BaseField {
	out := make([]core.BaseField, len(domain))
	for i, x := range domain {
		out[i] = x.Square()
	}
	return out
}

// NegationShift returns the index of -x within a domain of the given
// size, given x's own index, for domains where negation is implemented by
// shifting the index by half the domain's length (true of every domain in
// this protocol: D_lde has size 8, so -D_lde[i] = D_lde[(i+4) mod 8]; the
// first FRI layer's domain has size 4, so -D1[i] = D1[(i+2) mod 4]).
func NegationShift(index, domainSize int) int {
	return (index + domainSize/2) % domainSize
}
