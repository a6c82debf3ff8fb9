// Package entropy turns dice rolls into mnemonic entropy.
package entropy

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"
)

// BitsPerDie is the entropy of one fair six-sided die, log2(6).
var BitsPerDie = math.Log2(6)

// Supported mnemonic strengths.
const (
	Bits128 = 128
	Bits256 = 256
)

var (
	ErrInvalidDieSymbol    = errors.New("invalid die symbol")
	ErrUnsupportedBits     = errors.New("unsupported entropy size")
	ErrInsufficientEntropy = errors.New("insufficient entropy")
)

// DiceSequence is an ordered list of die results, each in 1..6.
type DiceSequence []uint8

// ParseDice reads a sequence of digits 1-6. Whitespace is ignored.
func ParseDice(s string) (DiceSequence, error) {
	dice := make(DiceSequence, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r < '1' || r > '6' {
			// Position counts symbols, not bytes or whitespace.
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidDieSymbol, r, len(dice)+1)
		}
		dice = append(dice, uint8(r-'0'))
	}
	return dice, nil
}

// Validate checks that every symbol is in 1..6.
func (d DiceSequence) Validate() error {
	for i, v := range d {
		if v < 1 || v > 6 {
			return fmt.Errorf("%w %d at position %d", ErrInvalidDieSymbol, v, i+1)
		}
	}
	return nil
}

// Bits returns the entropy carried by the sequence.
func (d DiceSequence) Bits() float64 {
	return float64(len(d)) * BitsPerDie
}

// String renders the sequence as digits.
func (d DiceSequence) String() string {
	var sb strings.Builder
	sb.Grow(len(d))
	for _, v := range d {
		sb.WriteByte('0' + v)
	}
	return sb.String()
}

// Zero overwrites the sequence.
func (d DiceSequence) Zero() {
	for i := range d {
		d[i] = 0
	}
}

// ValidateBits checks that bits is a supported mnemonic strength.
func ValidateBits(bits int) error {
	if bits != Bits128 && bits != Bits256 {
		return fmt.Errorf("%w: %d bits (must be %d or %d)", ErrUnsupportedBits, bits, Bits128, Bits256)
	}
	return nil
}

// RequiredSymbols returns the minimum number of dice needed to reach bits of
// entropy: ceil(bits / log2(6)).
func RequiredSymbols(bits int) int {
	return int(math.Ceil(float64(bits) / BitsPerDie))
}

// RandomDice draws count uniform dice from r.
// Bytes >= 252 are rejected so that every face has equal probability.
func RandomDice(r io.Reader, count int) (DiceSequence, error) {
	dice := make(DiceSequence, 0, count)
	buf := make([]byte, count)
	for len(dice) < count {
		need := buf[:count-len(dice)]
		if _, err := io.ReadFull(r, need); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
		}
		for _, b := range need {
			if b < 252 {
				dice = append(dice, b%6+1)
			}
		}
	}
	for i := range buf {
		buf[i] = 0
	}
	return dice, nil
}
