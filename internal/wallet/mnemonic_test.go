package wallet

import (
	"errors"
	"strings"
	"testing"
)

func TestNewMnemonic_ZeroEntropy(t *testing.T) {
	m, err := NewMnemonic(make([]byte, Entropy128Size))
	if err != nil {
		t.Fatalf("NewMnemonic() error: %v", err)
	}
	if m.String() != abandonAbout {
		t.Errorf("mnemonic = %q, want %q", m.String(), abandonAbout)
	}
	if m.Len() != 12 {
		t.Errorf("word count = %d, want 12", m.Len())
	}

	indices := m.Indices()
	for i := 0; i < 11; i++ {
		if indices[i] != 0 {
			t.Errorf("index[%d] = %d, want 0", i, indices[i])
		}
	}
	// "about" is word 4 of the list (0-based 3).
	if indices[11] != 3 {
		t.Errorf("index[11] = %d, want 3", indices[11])
	}
}

func TestNewMnemonic_256(t *testing.T) {
	m, err := NewMnemonic(make([]byte, Entropy256Size))
	if err != nil {
		t.Fatalf("NewMnemonic() error: %v", err)
	}
	words := m.Words()
	if len(words) != 24 {
		t.Fatalf("word count = %d, want 24", len(words))
	}
	if words[23] != "art" {
		t.Errorf("last word = %q, want %q", words[23], "art")
	}
}

func TestNewMnemonic_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 15, 20, 24, 28, 33, 64} {
		_, err := NewMnemonic(make([]byte, n))
		if !errors.Is(err, ErrInvalidEntropyLength) {
			t.Errorf("NewMnemonic(%d bytes) error = %v, want ErrInvalidEntropyLength", n, err)
		}
	}
}

func TestMnemonic_WordsCopy(t *testing.T) {
	m, _ := NewMnemonic(make([]byte, Entropy128Size))
	words := m.Words()
	words[0] = "zoo"
	if strings.HasPrefix(m.String(), "zoo") {
		t.Error("Words() should return a copy")
	}
}

func TestParseMnemonic(t *testing.T) {
	if _, err := ParseMnemonic(abandonAbout); err != nil {
		t.Errorf("ParseMnemonic() error: %v", err)
	}
	bad := strings.Repeat("abandon ", 12)
	if _, err := ParseMnemonic(bad); !errors.Is(err, ErrInvalidMnemonic) {
		t.Errorf("ParseMnemonic(bad checksum) error = %v, want ErrInvalidMnemonic", err)
	}
}

func TestValidateMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		valid    bool
	}{
		{
			name:     "valid 24-word BIP-39",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
			valid:    true,
		},
		{
			name:     "valid 12-word BIP-39",
			mnemonic: abandonAbout,
			valid:    true,
		},
		{
			name:     "empty string",
			mnemonic: "",
			valid:    false,
		},
		{
			name:     "random words",
			mnemonic: "not a valid mnemonic phrase at all",
			valid:    false,
		},
		{
			name:     "wrong checksum",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			valid:    false,
		},
		{
			name:     "single word",
			mnemonic: "abandon",
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateMnemonic(tt.mnemonic); got != tt.valid {
				t.Errorf("ValidateMnemonic() = %v, want %v", got, tt.valid)
			}
		})
	}
}
