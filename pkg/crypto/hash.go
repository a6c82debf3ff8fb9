// Package crypto provides the hash and key primitives used by seedctl.
package crypto

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// HashSize is the length of a SHA-256 digest.
const HashSize = chainhash.HashSize

// ChecksumSize is the length of a Base58Check checksum.
const ChecksumSize = 4

// Hash computes a SHA-256 hash of the input data.
func Hash(data []byte) [HashSize]byte {
	return chainhash.HashH(data)
}

// DoubleHash computes Hash(Hash(data)).
func DoubleHash(data []byte) [HashSize]byte {
	return chainhash.DoubleHashH(data)
}

// HashConcat hashes the concatenation of a and b.
func HashConcat(a, b []byte) [HashSize]byte {
	buf := make([]byte, 0, len(a)+len(b))
	buf = append(buf, a...)
	buf = append(buf, b...)
	h := Hash(buf)
	Zero(buf)
	return h
}

// Checksum returns the first four bytes of DoubleHash(data).
func Checksum(data []byte) [ChecksumSize]byte {
	h := DoubleHash(data)
	var sum [ChecksumSize]byte
	copy(sum[:], h[:ChecksumSize])
	return sum
}

// Hash160 computes RIPEMD160(SHA256(data)).
func Hash160(data []byte) []byte {
	return btcutil.Hash160(data)
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
