package picostark

import (
	"github.com/picostark/picostark/internal/picostark/core"
	"github.com/picostark/picostark/internal/picostark/protocols"
	"github.com/picostark/picostark/internal/picostark/utils"
)

// BaseField is the protocol's fixed finite field, GF(17).
type BaseField = core.BaseField

// Proof is a complete picostark STARK proof: three Merkle commitments and
// the openings and scalar produced by the protocol's single FRI query.
type Proof = protocols.Proof

// Opening pairs a claimed field value with the Merkle path that proves it
// was the committed value at its index.
type Opening = protocols.Opening

// Config holds the protocol's channel parameters: the Fiat-Shamir salt and
// the named hash function.
type Config = utils.Config

// DefaultConfig returns the protocol's default configuration: salt 0x2A,
// hash function "blake3".
func DefaultConfig() *Config {
	return utils.DefaultConfig()
}
