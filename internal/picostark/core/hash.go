package core

import "lukechampine.com/blake3"

// DigestSize is the BLAKE3 output length used throughout the protocol
// (Merkle node hashes and the channel's transcript digest).
const DigestSize = 32

// hashBytes computes the 32-byte BLAKE3 digest of data.
func hashBytes(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}

// HashBytes exposes the BLAKE3 digest for consumers outside this package
// (the Fiat-Shamir channel, which hashes its own transcript state).
func HashBytes(data []byte) []byte {
	return hashBytes(data)
}

// hashLeaf hashes the canonical one-byte encoding of a field element.
func hashLeaf(v BaseField) []byte {
	return hashBytes([]byte{v.Byte()})
}

// hashPair hashes the concatenation left || right, used to build internal
// Merkle nodes and to replay a Merkle inclusion path.
func hashPair(left, right []byte) []byte {
	buf := make([]byte, 0, len(left)+len(right))
	buf = append(buf, left...)
	buf = append(buf, right...)
	return hashBytes(buf)
}
