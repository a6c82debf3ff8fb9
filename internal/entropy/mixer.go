package entropy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/Klingon-tech/seedctl/pkg/crypto"
)

// ErrRandomnessUnavailable is returned when the system randomness source fails.
var ErrRandomnessUnavailable = errors.New("system randomness unavailable")

// Mode selects how entropy is produced from dice.
type Mode int

const (
	// Deterministic uses the dice digest alone.
	Deterministic Mode = iota
	// Hybrid combines the dice digest with system randomness.
	Hybrid
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Deterministic:
		return "deterministic"
	case Hybrid:
		return "hybrid"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// InputMethod is how the dice sequence was obtained.
type InputMethod string

const (
	// InputAuto means dice were generated by the program.
	InputAuto InputMethod = "auto"
	// InputManual means dice were entered by the user.
	InputManual InputMethod = "manual"
)

// ModeForInput returns the entropy mode implied by the input method.
// Generated dice are always mixed with system randomness; manually entered
// dice are used alone so the result can be reproduced.
func ModeForInput(m InputMethod) Mode {
	if m == InputManual {
		return Deterministic
	}
	return Hybrid
}

// Mixer derives fixed-length entropy from dice.
type Mixer struct {
	rand io.Reader
}

// NewMixer creates a Mixer reading system randomness from r.
// A nil reader selects crypto/rand.
func NewMixer(r io.Reader) *Mixer {
	if r == nil {
		r = rand.Reader
	}
	return &Mixer{rand: r}
}

// Mix hashes dice into bits/8 bytes of entropy.
//
// The dice digest is SHA-256 over the raw symbol values. In Hybrid mode,
// 32 bytes of system randomness are read once and the result is
// SHA-256(digest || random). The digest is truncated, never re-hashed.
func (m *Mixer) Mix(dice DiceSequence, mode Mode, bits int) ([]byte, error) {
	if err := ValidateBits(bits); err != nil {
		return nil, err
	}
	if err := dice.Validate(); err != nil {
		return nil, err
	}
	if need := RequiredSymbols(bits); len(dice) < need {
		return nil, fmt.Errorf("%w: %d provided, minimum %d", ErrInsufficientEntropy, len(dice), need)
	}

	digest := crypto.Hash(dice)

	switch mode {
	case Deterministic:
	case Hybrid:
		random := make([]byte, crypto.HashSize)
		if _, err := io.ReadFull(m.rand, random); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
		}
		combined := crypto.HashConcat(digest[:], random)
		crypto.Zero(random)
		crypto.Zero(digest[:])
		digest = combined
	default:
		return nil, fmt.Errorf("unknown entropy mode %d", int(mode))
	}

	out := make([]byte, bits/8)
	copy(out, digest[:])
	crypto.Zero(digest[:])
	return out, nil
}
