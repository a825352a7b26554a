package protocols

import (
	"testing"

	"github.com/picostark/picostark/internal/picostark/core"
)

// TestGenerateTrace checks the fixed trace is exactly [3, 9, 13, 16].
func TestGenerateTrace(t *testing.T) {
	trace := GenerateTrace()
	want := []uint8{3, 9, 13, 16}
	if len(trace) != len(want) {
		t.Fatalf("trace has %d elements, expected %d", len(trace), len(want))
	}
	for i, w := range want {
		if trace[i].Uint8() != w {
			t.Errorf("trace[%d] = %s, expected %d", i, trace[i], w)
		}
	}
}

// TestGenerateTraceSatisfiesSquaring checks each step is the square of the
// previous one, independent of the hand-written constant table above.
func TestGenerateTraceSatisfiesSquaring(t *testing.T) {
	trace := GenerateTrace()
	if !trace[0].Equal(core.NewBaseField(3)) {
		t.Fatalf("trace[0] = %s, expected 3", trace[0])
	}
	for i := 1; i < len(trace); i++ {
		if !trace[i].Equal(trace[i-1].Square()) {
			t.Errorf("trace[%d] = %s, expected %s (square of trace[%d])", i, trace[i], trace[i-1].Square(), i-1)
		}
	}
}
