// Package picostark is a minimal, fully-concrete zkSTARK prover and
// verifier: a single fixed computation (a four-element trace of repeated
// squaring starting from 3, over GF(17)) proved with two FRI folds, a
// single query, and no interactivity.
//
// It exists to make the STARK pipeline — arithmetization, low-degree
// extension, Merkle commitment, Fiat-Shamir, FRI folding, and the final
// query — traceable end to end with no moving parts left abstract: there
// is one trace length, one field, one FRI query, and every constant in
// the arithmetization is written out as a literal in
// internal/picostark/protocols.
//
// # Quick start
//
//	cfg := picostark.DefaultConfig()
//	proof, err := picostark.GenerateProof(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := picostark.Verify(proof, cfg); err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture
//
//   - pkg/picostark: public API (this package)
//   - internal/picostark/core: field, polynomial, domain, Merkle tree, hashing
//   - internal/picostark/utils: Fiat-Shamir channel, Config
//   - internal/picostark/protocols: the trace, the constraint system, FRI,
//     and the prover/verifier state machines
//
// # Non-goals
//
// This package does not choose a field size or security level, does not
// serialize proofs to bytes, and does not run more than one FRI query. It
// proves one fixed, tiny computation; it is a teaching artifact, not a
// production proving system.
package picostark
