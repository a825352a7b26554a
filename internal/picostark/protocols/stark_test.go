package protocols

import (
	"testing"

	"github.com/picostark/picostark/internal/picostark/core"
	"github.com/picostark/picostark/internal/picostark/utils"
)

// TestProveVerifyRoundTrip checks an honestly generated proof is accepted.
func TestProveVerifyRoundTrip(t *testing.T) {
	cfg := utils.DefaultConfig()
	proof := Prove(cfg)
	if err := Verify(proof, cfg); err != nil {
		t.Fatalf("Verify rejected an honest proof: %v", err)
	}
}

// TestVerifyRejectsTamperedCommitment checks flipping a commitment byte
// causes rejection (at the Merkle-inclusion step, since the trace openings'
// paths no longer lead to the tampered root).
func TestVerifyRejectsTamperedCommitment(t *testing.T) {
	cfg := utils.DefaultConfig()
	proof := Prove(cfg)

	tampered := *proof
	tamperedRoot := make([]byte, len(proof.TraceLDECommitment))
	copy(tamperedRoot, proof.TraceLDECommitment)
	tamperedRoot[0] ^= 0xFF
	tampered.TraceLDECommitment = tamperedRoot

	if err := Verify(&tampered, cfg); err == nil {
		t.Fatal("Verify accepted a proof with a tampered commitment")
	}
}

// TestVerifyRejectsTamperedOpening checks a wrong opened value causes
// rejection.
func TestVerifyRejectsTamperedOpening(t *testing.T) {
	cfg := utils.DefaultConfig()
	proof := Prove(cfg)

	tampered := *proof
	tampered.TraceX.Value = tampered.TraceX.Value.Add(core.One())

	if err := Verify(&tampered, cfg); err == nil {
		t.Fatal("Verify accepted a proof with a tampered opening")
	}
}

// TestVerifyRejectsTamperedFinalScalar checks a wrong FRILayerDeg0 causes
// rejection of the consistency equation.
func TestVerifyRejectsTamperedFinalScalar(t *testing.T) {
	cfg := utils.DefaultConfig()
	proof := Prove(cfg)

	tampered := *proof
	tampered.FRILayerDeg0 = tampered.FRILayerDeg0.Add(core.One())

	if err := Verify(&tampered, cfg); err == nil {
		t.Fatal("Verify accepted a proof with a tampered final FRI scalar")
	}
}

// TestVerifyRejectsWrongSalt checks a verifier using a different salt
// cannot replay the prover's transcript and rejects the proof.
func TestVerifyRejectsWrongSalt(t *testing.T) {
	proveCfg := utils.DefaultConfig()
	proof := Prove(proveCfg)

	verifyCfg := utils.DefaultConfig().WithSalt(0x99)
	if err := Verify(proof, verifyCfg); err == nil {
		t.Fatal("Verify accepted a proof under a mismatched salt")
	}
}
