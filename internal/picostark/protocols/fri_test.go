package protocols

import (
	"testing"

	"github.com/picostark/picostark/internal/picostark/core"
)

// TestSquareDomain checks D1 = D_lde[:4]^2 matches the hand-derived values.
func TestSquareDomain(t *testing.T) {
	lde := core.LDEDomain().Elements
	d1 := SquareDomain(lde[:4])
	want := []uint8{9, 15, 8, 2}
	if len(d1) != len(want) {
		t.Fatalf("D1 has %d elements, expected %d", len(d1), len(want))
	}
	for i, w := range want {
		if d1[i].Uint8() != w {
			t.Errorf("D1[%d] = %s, expected %d", i, d1[i], w)
		}
	}
}

// TestSquareDomainToD0 checks D0 = D1[:2]^2 matches the hand-derived values.
func TestSquareDomainToD0(t *testing.T) {
	lde := core.LDEDomain().Elements
	d1 := SquareDomain(lde[:4])
	d0 := SquareDomain(d1[:2])
	want := []uint8{13, 4}
	if len(d0) != len(want) {
		t.Fatalf("D0 has %d elements, expected %d", len(d0), len(want))
	}
	for i, w := range want {
		if d0[i].Uint8() != w {
			t.Errorf("D0[%d] = %s, expected %d", i, d0[i], w)
		}
	}
}

// TestNegationShift checks the shift-by-half-domain trick actually finds
// each element's negation in D_lde.
func TestNegationShift(t *testing.T) {
	lde := core.LDEDomain().Elements
	for i, x := range lde {
		negIdx := NegationShift(i, len(lde))
		if !lde[negIdx].Equal(x.Neg()) {
			t.Errorf("D_lde[NegationShift(%d)] = %s, expected -%s = %s", i, lde[negIdx], x, x.Neg())
		}
	}
}
