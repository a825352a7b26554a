package utils

import (
	"bytes"
	"testing"
)

// TestChannelDeterminism checks two channels with identical commit
// sequences and identical configs draw identical challenges, since the
// prover and verifier must reconstruct the same transcript independently.
func TestChannelDeterminism(t *testing.T) {
	cfg := DefaultConfig()

	run := func() (elements []int, integers []uint8) {
		ch := NewChannel(cfg)
		ch.Commit([]byte("commitment-one"))
		elements = append(elements, int(ch.RandomElement().Uint8()))
		elements = append(elements, int(ch.RandomElement().Uint8()))
		ch.Commit([]byte("commitment-two"))
		integers = append(integers, ch.RandomInteger(6))
		return
	}

	elementsA, integersA := run()
	elementsB, integersB := run()

	for i := range elementsA {
		if elementsA[i] != elementsB[i] {
			t.Errorf("element %d diverged: %d != %d", i, elementsA[i], elementsB[i])
		}
	}
	for i := range integersA {
		if integersA[i] != integersB[i] {
			t.Errorf("integer %d diverged: %d != %d", i, integersA[i], integersB[i])
		}
	}
}

// TestChannelSaltDiverges checks two channels with different salts start
// from different initial states.
func TestChannelSaltDiverges(t *testing.T) {
	chA := NewChannel(DefaultConfig().WithSalt(0x01))
	chB := NewChannel(DefaultConfig().WithSalt(0x02))

	if bytes.Equal(chA.hash, chB.hash) {
		t.Error("channels with different salts started with the same state")
	}
}

// TestChannelCommitChangesState checks Commit actually mutates the digest.
func TestChannelCommitChangesState(t *testing.T) {
	ch := NewChannel(DefaultConfig())
	before := append([]byte(nil), ch.hash...)
	ch.Commit([]byte("a root"))
	if bytes.Equal(before, ch.hash) {
		t.Error("Commit did not change the channel's state")
	}
}

// TestChannelCommitmentCount checks Finalize and CommitmentCount agree on
// the number and order of absorbed commitments.
func TestChannelCommitmentCount(t *testing.T) {
	ch := NewChannel(DefaultConfig())
	ch.Commit([]byte("one"))
	ch.Commit([]byte("two"))
	ch.Commit([]byte("three"))

	if ch.CommitmentCount() != 3 {
		t.Errorf("CommitmentCount() = %d, expected 3", ch.CommitmentCount())
	}
	commitments := ch.Finalize()
	if len(commitments) != 3 {
		t.Fatalf("Finalize() returned %d commitments, expected 3", len(commitments))
	}
	if string(commitments[0]) != "one" || string(commitments[2]) != "three" {
		t.Error("Finalize() did not preserve commitment order")
	}
}

// TestRandomElementAdvancesState checks a draw rehashes the channel's
// state, so consecutive draws with no intervening commit read different
// digests.
func TestRandomElementAdvancesState(t *testing.T) {
	ch := NewChannel(DefaultConfig())
	before := append([]byte(nil), ch.hash...)
	a := ch.RandomElement()
	if bytes.Equal(before, ch.hash) {
		t.Error("RandomElement did not change the channel's state")
	}
	b := ch.RandomElement()
	if a.Equal(b) {
		t.Log("consecutive draws collided; not necessarily a bug, but worth noting")
	}
}
