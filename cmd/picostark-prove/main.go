// Command picostark-prove generates a picostark proof and immediately
// verifies it, printing the result. It takes no input: the protocol
// proves knowledge of one fixed trace, so there is nothing to read from
// stdin the way a general-purpose prover would expect.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/picostark/picostark/pkg/picostark"
)

func main() {
	cfg := picostark.DefaultConfig()

	logStderr("generating proof...")
	proof, err := picostark.GenerateProof(cfg)
	if err != nil {
		fatal(fmt.Sprintf("proof generation failed: %v", err))
	}

	logStderr("trace_lde commitment:            " + hex.EncodeToString(proof.TraceLDECommitment))
	logStderr("composition_poly_lde commitment: " + hex.EncodeToString(proof.CompositionPolyLDECommitment))
	logStderr("fri_layer_deg_1 commitment:      " + hex.EncodeToString(proof.FRILayerDeg1Commitment))

	logStderr("verifying proof...")
	if err := picostark.Verify(proof, cfg); err != nil {
		fatal(fmt.Sprintf("proof rejected: %v", err))
	}

	fmt.Println("OK")
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "picostark:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
