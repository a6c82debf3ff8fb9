package wallet

import (
	"fmt"

	"github.com/Klingon-tech/seedctl/pkg/crypto"
	"github.com/tyler-smith/go-bip32"
)

// HardenedOffset is added to an index for hardened derivation.
const HardenedOffset = bip32.FirstHardenedChild

// Fingerprint identifies a key by the first four bytes of HASH160(pubkey).
type Fingerprint [4]byte

// String returns the fingerprint as 8 lowercase hex digits.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x", f[0], f[1], f[2], f[3])
}

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key *bip32.Key
}

// NewMasterKey creates a master HD key from a 64-byte seed.
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return &HDKey{key: master}, nil
}

// DeriveChild derives a child key at the given index.
// For hardened derivation, add HardenedOffset to the index.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %s: %w", formatIndex(index), err)
	}
	return &HDKey{key: child}, nil
}

// DerivePath derives a key along a sequence of indices.
func (k *HDKey) DerivePath(indices ...uint32) (*HDKey, error) {
	current := k
	for _, idx := range indices {
		child, err := current.DeriveChild(idx)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// PrivateKeyBytes returns the raw 32-byte private key.
// Returns nil if this is a public-only key.
func (k *HDKey) PrivateKeyBytes() []byte {
	if !k.key.IsPrivate {
		return nil
	}
	// Some bip32 versions keep a leading 0x00 on private keys.
	raw := k.key.Key
	if len(raw) == 33 && raw[0] == 0 {
		return raw[1:]
	}
	return raw
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	if !k.key.IsPrivate {
		return k.key.Key
	}
	return k.key.PublicKey().Key
}

// Fingerprint returns the fingerprint of this key's public key.
// The master fingerprint is the key origin of every descriptor.
func (k *HDKey) Fingerprint() Fingerprint {
	var fp Fingerprint
	copy(fp[:], crypto.Hash160(k.PublicKeyBytes()))
	return fp
}

// ParentFingerprint returns the fingerprint stored in the serialized key.
func (k *HDKey) ParentFingerprint() Fingerprint {
	var fp Fingerprint
	copy(fp[:], k.key.FingerPrint)
	return fp
}

// Payload returns the 78-byte BIP-32 serialization without checksum.
func (k *HDKey) Payload() ([]byte, error) {
	raw, err := k.key.Serialize()
	if err != nil {
		return nil, fmt.Errorf("serialize key: %w", err)
	}
	defer crypto.Zero(raw)
	if len(raw) < ExtendedKeySize {
		return nil, fmt.Errorf("%w: serialized %d bytes", ErrMalformedExtendedKey, len(raw))
	}
	out := make([]byte, ExtendedKeySize)
	copy(out, raw[:ExtendedKeySize])
	return out, nil
}

// Encode returns the key Base58Check encoded with the given version.
func (k *HDKey) Encode(version Version) (string, error) {
	payload, err := k.Payload()
	if err != nil {
		return "", err
	}
	defer crypto.Zero(payload)
	return Reencode(payload, version)
}

// String returns the standard xprv/xpub encoding.
func (k *HDKey) String() string {
	return k.key.B58Serialize()
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// Neuter returns a public-key-only copy (for watch-only wallets).
func (k *HDKey) Neuter() *HDKey {
	if !k.key.IsPrivate {
		return k
	}
	return &HDKey{key: k.key.PublicKey()}
}

// Zero wipes the key material held by k. The key is unusable afterwards.
func (k *HDKey) Zero() {
	if k == nil || k.key == nil {
		return
	}
	crypto.Zero(k.key.Key)
	crypto.Zero(k.key.ChainCode)
}

func formatIndex(index uint32) string {
	if index >= HardenedOffset {
		return fmt.Sprintf("%d'", index-HardenedOffset)
	}
	return fmt.Sprintf("%d", index)
}
