package utils

import "fmt"

// Config carries the protocol's ambient parameters: the Fiat-Shamir salt
// and the hash function name. Keeping these in a Config rather than
// inlined constants means the channel's salt is parameterized explicitly,
// in the style of the teacher's own utils.Config. The Merkle tree takes no
// Config, and HashFunction is only checked by Validate: hashing is always
// BLAKE3.
type Config struct {
	// Salt seeds the channel's initial digest. Both prover and verifier
	// must use the same value (spec.md §4.5).
	Salt byte

	// HashFunction names the hash used for the channel transcript and the
	// Merkle tree. Only "blake3" is supported; spec.md §6 is explicit that
	// a non-BLAKE3 hash breaks compatibility.
	HashFunction string
}

// DefaultConfig returns the protocol's fixed parameters: salt 0x2A,
// BLAKE3 hashing.
func DefaultConfig() *Config {
	return &Config{
		Salt:         0x2A,
		HashFunction: "blake3",
	}
}

// Validate checks that the configuration names a supported hash function.
func (c *Config) Validate() error {
	if c.HashFunction != "blake3" {
		return fmt.Errorf("unsupported hash function %q: only \"blake3\" is implemented", c.HashFunction)
	}
	return nil
}

// WithSalt returns a copy of c with a different salt. Used by tests to
// confirm that two channels with different salts diverge immediately.
func (c *Config) WithSalt(salt byte) *Config {
	clone := *c
	clone.Salt = salt
	return &clone
}

// Clone returns a copy of c.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
