package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	return b
}

func TestHash(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty input",
			input: []byte{},
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:  "hello",
			input: []byte("hello"),
			want:  "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hash(tt.input)
			if !bytes.Equal(got[:], mustHex(t, tt.want)) {
				t.Errorf("Hash(%q) = %x, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDoubleHash(t *testing.T) {
	first := Hash([]byte("hello"))
	want := Hash(first[:])
	got := DoubleHash([]byte("hello"))
	if got != want {
		t.Errorf("DoubleHash() = %x, want %x", got, want)
	}
}

func TestHashConcat(t *testing.T) {
	a := []byte("dice")
	b := []byte("random")
	got := HashConcat(a, b)
	want := Hash([]byte("dicerandom"))
	if got != want {
		t.Errorf("HashConcat() = %x, want %x", got, want)
	}
	if string(a) != "dice" || string(b) != "random" {
		t.Error("HashConcat must not modify its inputs")
	}
}

func TestChecksum(t *testing.T) {
	data := []byte("extended key payload")
	full := DoubleHash(data)
	sum := Checksum(data)
	if !bytes.Equal(sum[:], full[:4]) {
		t.Errorf("Checksum() = %x, want %x", sum, full[:4])
	}
}

func TestHash160(t *testing.T) {
	got := Hash160([]byte{})
	want := mustHex(t, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb")
	if !bytes.Equal(got, want) {
		t.Errorf("Hash160(empty) = %x, want %x", got, want)
	}
}

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %d after Zero, want 0", i, v)
		}
	}
}
