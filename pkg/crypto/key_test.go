package crypto

import (
	"bytes"
	"testing"
)

func TestPrivateKeyFromBytes(t *testing.T) {
	secret := make([]byte, 32)
	secret[31] = 1

	key, err := PrivateKeyFromBytes(secret)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes() error: %v", err)
	}

	// 1*G is the generator point.
	want := mustHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	if !bytes.Equal(key.PublicKey(), want) {
		t.Errorf("PublicKey() = %x, want %x", key.PublicKey(), want)
	}
}

func TestPrivateKeyFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		secret []byte
	}{
		{"empty", []byte{}},
		{"too short", make([]byte, 31)},
		{"too long", make([]byte, 33)},
		{"zero", make([]byte, 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PrivateKeyFromBytes(tt.secret); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCompressPubKey(t *testing.T) {
	compressed := mustHex(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	uncompressed := mustHex(t, "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"+
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")

	for _, in := range [][]byte{compressed, uncompressed} {
		got, err := CompressPubKey(in)
		if err != nil {
			t.Fatalf("CompressPubKey() error: %v", err)
		}
		if !bytes.Equal(got, compressed) {
			t.Errorf("CompressPubKey() = %x, want %x", got, compressed)
		}
	}

	if _, err := CompressPubKey(make([]byte, 33)); err == nil {
		t.Error("expected error for invalid point")
	}
}
