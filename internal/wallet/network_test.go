package wallet

import (
	"errors"
	"testing"
)

func TestParseNetwork(t *testing.T) {
	tests := map[string]Network{
		"mainnet":  Mainnet,
		"bitcoin":  Mainnet,
		"Testnet":  Testnet,
		"testnet3": Testnet,
	}
	for in, want := range tests {
		got, err := ParseNetwork(in)
		if err != nil {
			t.Fatalf("ParseNetwork(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseNetwork(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseNetwork("regtest"); !errors.Is(err, ErrUnknownNetwork) {
		t.Errorf("error = %v, want ErrUnknownNetwork", err)
	}
}

func TestNetwork_Info(t *testing.T) {
	if Mainnet.String() != "bitcoin" || Mainnet.CoinType() != 0 || Mainnet.Params().Name != "mainnet" {
		t.Errorf("unexpected mainnet info: %s %d %s", Mainnet, Mainnet.CoinType(), Mainnet.Params().Name)
	}
	if Testnet.String() != "testnet" || Testnet.CoinType() != 1 || Testnet.Params().Name != "testnet3" {
		t.Errorf("unexpected testnet info: %s %d %s", Testnet, Testnet.CoinType(), Testnet.Params().Name)
	}
	if Network(9).Valid() {
		t.Error("Network(9) should be invalid")
	}
}

func TestParseScriptType(t *testing.T) {
	tests := map[string]ScriptType{
		"bip44":  BIP44,
		"44":     BIP44,
		"legacy": BIP44,
		"BIP49":  BIP49,
		"nested": BIP49,
		"bip84":  BIP84,
		"native": BIP84,
	}
	for in, want := range tests {
		got, err := ParseScriptType(in)
		if err != nil {
			t.Fatalf("ParseScriptType(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseScriptType(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseScriptType("bip86"); !errors.Is(err, ErrUnknownScriptType) {
		t.Errorf("error = %v, want ErrUnknownScriptType", err)
	}
}

func TestScriptType_Identifiers(t *testing.T) {
	want := map[ScriptType]string{BIP44: "bip44", BIP49: "bip49", BIP84: "bip84"}
	for s, name := range want {
		if s.String() != name {
			t.Errorf("String() = %s, want %s", s, name)
		}
		if s.Purpose() != uint32(s) {
			t.Errorf("Purpose() = %d", s.Purpose())
		}
		if s.Label() == "" {
			t.Errorf("%s has no label", s)
		}
	}
	if ScriptType(86).Valid() {
		t.Error("purpose 86 should be invalid")
	}
}
