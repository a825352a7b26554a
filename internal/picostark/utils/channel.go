package utils

import (
	"encoding/binary"

	"github.com/picostark/picostark/internal/picostark/core"
)

// Channel implements the Fiat-Shamir transform: it replaces the
// interactive verifier with a hash-derived transcript, so prover and
// verifier can walk through identical (commit, draw) steps independently
// and arrive at the same challenges (spec.md §4.5).
type Channel struct {
	hash        []byte
	counter     uint64
	commitments [][]byte
}

// NewChannel initializes a channel from cfg's salt: H = hash(salt).
func NewChannel(cfg *Config) *Channel {
	return &Channel{
		hash:        core.HashBytes([]byte{cfg.Salt}),
		counter:     0,
		commitments: make([][]byte, 0, 4),
	}
}

// Commit absorbs a commitment (typically a Merkle root) into the
// transcript: appends it to the commitment list and updates
// H <- hash(H || commitment).
func (c *Channel) Commit(commitment []byte) {
	c.commitments = append(c.commitments, commitment)
	buf := make([]byte, 0, len(c.hash)+len(commitment))
	buf = append(buf, c.hash...)
	buf = append(buf, commitment...)
	c.hash = core.HashBytes(buf)
}

// RandomElement draws a field element: the first 4 bytes of H are read as
// a little-endian signed int32, reduced into BaseField, then the state is
// rehashed so a second consecutive draw (with no intervening commit)
// yields an independent value.
func (c *Channel) RandomElement() core.BaseField {
	raw := int32(binary.LittleEndian.Uint32(c.hash[0:4]))
	element := core.NewBaseField(int(raw))
	c.rehashAfterDraw()
	return element
}

// RandomInteger draws an integer in [0, upper): the first
// byte of H, reduced mod upper. The modulo introduces a small bias,
// acceptable for this pedagogical construction (spec.md §9) but not for
// security-critical reuse.
func (c *Channel) RandomInteger(upper uint8) uint8 {
	result := c.hash[0] % upper
	c.rehashAfterDraw()
	return result
}

// rehashAfterDraw updates H <- hash(H || counter_le_bytes) and increments
// the counter, so successive draws diverge even without an intervening
// commit.
func (c *Channel) rehashAfterDraw() {
	counterBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(counterBytes, c.counter)

	buf := make([]byte, 0, len(c.hash)+len(counterBytes))
	buf = append(buf, c.hash...)
	buf = append(buf, counterBytes...)
	c.hash = core.HashBytes(buf)

	c.counter++
}

// Finalize returns the ordered list of absorbed commitments.
func (c *Channel) Finalize() [][]byte {
	return c.commitments
}

// CommitmentCount reports how many commitments have been absorbed so far.
func (c *Channel) CommitmentCount() int {
	return len(c.commitments)
}
