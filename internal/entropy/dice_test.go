package entropy

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestRequiredSymbols(t *testing.T) {
	tests := []struct {
		bits int
		want int
	}{
		{Bits128, 50},
		{Bits256, 100},
	}

	for _, tt := range tests {
		got := RequiredSymbols(tt.bits)
		if got != tt.want {
			t.Errorf("RequiredSymbols(%d) = %d, want %d", tt.bits, got, tt.want)
		}
		if float64(got)*BitsPerDie < float64(tt.bits) {
			t.Errorf("RequiredSymbols(%d) = %d does not reach %d bits", tt.bits, got, tt.bits)
		}
		if float64(got-1)*BitsPerDie >= float64(tt.bits) {
			t.Errorf("RequiredSymbols(%d) = %d is not minimal", tt.bits, got)
		}
	}
}

func TestParseDice(t *testing.T) {
	dice, err := ParseDice("1234 56\n61")
	if err != nil {
		t.Fatalf("ParseDice() error: %v", err)
	}
	want := DiceSequence{1, 2, 3, 4, 5, 6, 6, 1}
	if !bytes.Equal(dice, want) {
		t.Errorf("ParseDice() = %v, want %v", dice, want)
	}
	if dice.String() != "12345661" {
		t.Errorf("String() = %q, want %q", dice.String(), "12345661")
	}
}

func TestParseDice_Invalid(t *testing.T) {
	for _, in := range []string{"1230", "127", "12a", "1-2"} {
		_, err := ParseDice(in)
		if !errors.Is(err, ErrInvalidDieSymbol) {
			t.Errorf("ParseDice(%q) error = %v, want ErrInvalidDieSymbol", in, err)
		}
	}
}

func TestParseDice_ErrorPosition(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12x", "position 3"},
		{"1 2 3 0", "position 4"},
		// Multi-byte spaces are skipped and not counted.
		{"1\u00a02\u30003x", "position 4"},
	}
	for _, tt := range tests {
		_, err := ParseDice(tt.in)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("ParseDice(%q) error = %v, want %s", tt.in, err, tt.want)
		}
	}
}

func TestDiceSequence_Validate(t *testing.T) {
	if err := (DiceSequence{1, 6, 3}).Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
	if err := (DiceSequence{1, 0}).Validate(); !errors.Is(err, ErrInvalidDieSymbol) {
		t.Errorf("Validate() error = %v, want ErrInvalidDieSymbol", err)
	}
	if err := (DiceSequence{7}).Validate(); !errors.Is(err, ErrInvalidDieSymbol) {
		t.Errorf("Validate() error = %v, want ErrInvalidDieSymbol", err)
	}
}

func TestValidateBits(t *testing.T) {
	for _, bits := range []int{Bits128, Bits256} {
		if err := ValidateBits(bits); err != nil {
			t.Errorf("ValidateBits(%d) error: %v", bits, err)
		}
	}
	for _, bits := range []int{0, 160, 192, 512} {
		if err := ValidateBits(bits); !errors.Is(err, ErrUnsupportedBits) {
			t.Errorf("ValidateBits(%d) error = %v, want ErrUnsupportedBits", bits, err)
		}
	}
}

func TestRandomDice(t *testing.T) {
	// 252..255 are rejected; 0 -> 1, 5 -> 6, 251 -> 6.
	src := bytes.NewReader([]byte{252, 0, 255, 5, 251, 6, 253, 254, 100})
	dice, err := RandomDice(src, 5)
	if err != nil {
		t.Fatalf("RandomDice() error: %v", err)
	}
	want := DiceSequence{1, 6, 6, 1, 5}
	if !bytes.Equal(dice, want) {
		t.Errorf("RandomDice() = %v, want %v", dice, want)
	}
}

func TestRandomDice_SystemSource(t *testing.T) {
	dice, err := RandomDice(NewMixer(nil).rand, RequiredSymbols(Bits256))
	if err != nil {
		t.Fatalf("RandomDice() error: %v", err)
	}
	if len(dice) != 100 {
		t.Fatalf("len = %d, want 100", len(dice))
	}
	if err := dice.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestRandomDice_SourceFails(t *testing.T) {
	_, err := RandomDice(iotest.ErrReader(errors.New("boom")), 10)
	if !errors.Is(err, ErrRandomnessUnavailable) {
		t.Errorf("error = %v, want ErrRandomnessUnavailable", err)
	}
}

func TestDiceSequence_Zero(t *testing.T) {
	dice, _ := ParseDice(strings.Repeat("6", 10))
	dice.Zero()
	for i, v := range dice {
		if v != 0 {
			t.Fatalf("dice[%d] = %d after Zero", i, v)
		}
	}
}
