package export

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Klingon-tech/seedctl/pkg/crypto"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Sealed export layout:
// magic(8) | salt(32) | memory(4) | iterations(4) | parallelism(1) | nonce(24) | ciphertext
const (
	SaltSize   = 32
	headerSize = len(sealMagic) + SaltSize + 4 + 4 + 1
)

var sealMagic = [8]byte{'S', 'E', 'E', 'D', 'C', 'T', 'L', 1}

// MaxSealMemory caps the Argon2id memory accepted from a sealed header (1 GiB).
const MaxSealMemory = 1 << 20

var (
	ErrNotSealed     = errors.New("data is not a sealed export")
	ErrEmptyPassword = errors.New("empty password")
	ErrBadSealParams = errors.New("invalid seal parameters")
)

// SealParams holds Argon2id parameters.
type SealParams struct {
	Memory      uint32 // in KiB
	Iterations  uint32
	Parallelism uint8
}

// DefaultSealParams returns recommended Argon2id parameters.
func DefaultSealParams() SealParams {
	return SealParams{
		Memory:      64 * 1024, // 64 MB
		Iterations:  3,
		Parallelism: 4,
	}
}

// Validate rejects parameters argon2.IDKey cannot run with and memory above
// MaxSealMemory.
func (p SealParams) Validate() error {
	switch {
	case p.Iterations == 0:
		return fmt.Errorf("%w: zero iterations", ErrBadSealParams)
	case p.Parallelism == 0:
		return fmt.Errorf("%w: zero parallelism", ErrBadSealParams)
	case p.Memory > MaxSealMemory:
		return fmt.Errorf("%w: memory %d KiB exceeds %d KiB", ErrBadSealParams, p.Memory, MaxSealMemory)
	}
	return nil
}

// deriveKey uses Argon2id to derive a 32-byte encryption key from password and salt.
func deriveKey(password, salt []byte, params SealParams) []byte {
	return argon2.IDKey(
		password,
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		chacha20poly1305.KeySize,
	)
}

// IsSealed reports whether data starts with the sealed export header.
func IsSealed(data []byte) bool {
	return len(data) >= len(sealMagic) && bytes.Equal(data[:len(sealMagic)], sealMagic[:])
}

// Seal encrypts data with password using Argon2id + XChaCha20-Poly1305.
// The header is authenticated as associated data.
func Seal(data, password []byte, params SealParams) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	key := deriveKey(password, salt, params)
	defer crypto.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	header := make([]byte, 0, headerSize)
	header = append(header, sealMagic[:]...)
	header = append(header, salt...)
	header = binary.LittleEndian.AppendUint32(header, params.Memory)
	header = binary.LittleEndian.AppendUint32(header, params.Iterations)
	header = append(header, params.Parallelism)

	out := make([]byte, 0, headerSize+len(nonce)+len(data)+aead.Overhead())
	out = append(out, header...)
	out = append(out, nonce...)
	out = aead.Seal(out, nonce, data, header)
	return out, nil
}

// Open decrypts data produced by Seal.
func Open(sealed, password []byte) ([]byte, error) {
	if !IsSealed(sealed) {
		return nil, ErrNotSealed
	}
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	nonceSize := chacha20poly1305.NonceSizeX
	minSize := headerSize + nonceSize + chacha20poly1305.Overhead
	if len(sealed) < minSize {
		return nil, fmt.Errorf("sealed data too short: %d bytes, need at least %d", len(sealed), minSize)
	}

	off := len(sealMagic)
	salt := sealed[off : off+SaltSize]
	off += SaltSize
	params := SealParams{
		Memory:      binary.LittleEndian.Uint32(sealed[off:]),
		Iterations:  binary.LittleEndian.Uint32(sealed[off+4:]),
		Parallelism: sealed[off+8],
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	header := sealed[:headerSize]
	nonce := sealed[headerSize : headerSize+nonceSize]
	ciphertext := sealed[headerSize+nonceSize:]

	key := deriveKey(password, salt, params)
	defer crypto.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}
