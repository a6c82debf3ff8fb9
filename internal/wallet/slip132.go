package wallet

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/Klingon-tech/seedctl/pkg/crypto"
	"github.com/btcsuite/btcd/btcutil/base58"
)

// ExtendedKeySize is the length of a serialized BIP-32 key without checksum:
// version(4) depth(1) parent fingerprint(4) child number(4) chain code(32) key(33).
const ExtendedKeySize = 78

var ErrMalformedExtendedKey = errors.New("malformed extended key")

// Version is the 4-byte prefix of a serialized extended key.
type Version [4]byte

// SLIP-132 version prefixes.
var (
	VersionXprv = Version{0x04, 0x88, 0xad, 0xe4}
	VersionXpub = Version{0x04, 0x88, 0xb2, 0x1e}
	VersionYprv = Version{0x04, 0x9d, 0x78, 0x78}
	VersionYpub = Version{0x04, 0x9d, 0x7c, 0xb2}
	VersionZprv = Version{0x04, 0xb2, 0x43, 0x0c}
	VersionZpub = Version{0x04, 0xb2, 0x47, 0x46}

	VersionTprv = Version{0x04, 0x35, 0x83, 0x94}
	VersionTpub = Version{0x04, 0x35, 0x87, 0xcf}
	VersionUprv = Version{0x04, 0x4a, 0x4e, 0x28}
	VersionUpub = Version{0x04, 0x4a, 0x52, 0x62}
	VersionVprv = Version{0x04, 0x5f, 0x18, 0xbc}
	VersionVpub = Version{0x04, 0x5f, 0x1c, 0xf6}
)

// VersionFromUint32 builds a Version from its big-endian integer form.
func VersionFromUint32(v uint32) Version {
	var out Version
	binary.BigEndian.PutUint32(out[:], v)
	return out
}

// Uint32 returns the big-endian integer form.
func (v Version) Uint32() uint32 {
	return binary.BigEndian.Uint32(v[:])
}

// String returns the version as hex.
func (v Version) String() string {
	return "0x" + hex.EncodeToString(v[:])
}

// Reencode writes version over the first four bytes of a 78-byte extended key
// payload and returns the Base58Check encoding. The input is not modified.
func Reencode(payload []byte, version Version) (string, error) {
	if len(payload) != ExtendedKeySize {
		return "", fmt.Errorf("%w: payload is %d bytes, want %d",
			ErrMalformedExtendedKey, len(payload), ExtendedKeySize)
	}
	buf := make([]byte, ExtendedKeySize+crypto.ChecksumSize)
	copy(buf, payload)
	copy(buf[:4], version[:])
	sum := crypto.Checksum(buf[:ExtendedKeySize])
	copy(buf[ExtendedKeySize:], sum[:])
	out := base58.Encode(buf)
	crypto.Zero(buf)
	return out, nil
}

// ReencodeString decodes a Base58Check extended key and re-encodes it with
// version.
func ReencodeString(key string, version Version) (string, error) {
	_, payload, err := DecodeExtendedKey(key)
	if err != nil {
		return "", err
	}
	defer crypto.Zero(payload)
	return Reencode(payload, version)
}

// DecodeExtendedKey decodes a Base58Check extended key, verifies its checksum
// and returns the version and the full 78-byte payload (version included).
func DecodeExtendedKey(key string) (Version, []byte, error) {
	var version Version
	raw := base58.Decode(key)
	if len(raw) != ExtendedKeySize+crypto.ChecksumSize {
		return version, nil, fmt.Errorf("%w: decoded %d bytes, want %d",
			ErrMalformedExtendedKey, len(raw), ExtendedKeySize+crypto.ChecksumSize)
	}
	payload, sum := raw[:ExtendedKeySize], raw[ExtendedKeySize:]
	want := crypto.Checksum(payload)
	if !bytes.Equal(sum, want[:]) {
		return version, nil, fmt.Errorf("%w: bad checksum", ErrMalformedExtendedKey)
	}
	copy(version[:], payload[:4])
	return version, payload, nil
}
