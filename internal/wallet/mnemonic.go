// Package wallet derives BIP-39 mnemonics, BIP-32 account keys, SLIP-132
// extended key encodings, output descriptors and addresses.
package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// Entropy sizes accepted for mnemonic generation.
const (
	Entropy128Size = 16
	Entropy256Size = 32
)

var (
	ErrInvalidEntropyLength = errors.New("invalid entropy length")
	ErrInvalidMnemonic      = errors.New("invalid mnemonic")
)

// Mnemonic is a BIP-39 word sequence with a valid checksum.
type Mnemonic struct {
	words   []string
	indices []int
}

// NewMnemonic encodes 16 or 32 bytes of entropy as a 12 or 24 word mnemonic.
func NewMnemonic(entropy []byte) (*Mnemonic, error) {
	if len(entropy) != Entropy128Size && len(entropy) != Entropy256Size {
		return nil, fmt.Errorf("%w: %d bytes (must be %d or %d)",
			ErrInvalidEntropyLength, len(entropy), Entropy128Size, Entropy256Size)
	}
	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("generate mnemonic: %w", err)
	}
	return ParseMnemonic(phrase)
}

// ParseMnemonic validates a mnemonic phrase (word count, words, checksum).
func ParseMnemonic(phrase string) (*Mnemonic, error) {
	if !ValidateMnemonic(phrase) {
		return nil, ErrInvalidMnemonic
	}
	words := strings.Fields(phrase)
	indices := make([]int, len(words))
	for i, w := range words {
		idx, ok := bip39.GetWordIndex(w)
		if !ok {
			return nil, fmt.Errorf("%w: unknown word %q", ErrInvalidMnemonic, w)
		}
		indices[i] = idx
	}
	return &Mnemonic{words: words, indices: indices}, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// Words returns a copy of the mnemonic words.
func (m *Mnemonic) Words() []string {
	out := make([]string, len(m.words))
	copy(out, m.words)
	return out
}

// Indices returns the 0-based wordlist position of each word.
func (m *Mnemonic) Indices() []int {
	out := make([]int, len(m.indices))
	copy(out, m.indices)
	return out
}

// Len returns the number of words.
func (m *Mnemonic) Len() int {
	return len(m.words)
}

// String returns the space separated phrase.
func (m *Mnemonic) String() string {
	return strings.Join(m.words, " ")
}
