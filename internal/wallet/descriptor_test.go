package wallet

import (
	"errors"
	"testing"
)

func TestKeyOrigin(t *testing.T) {
	fp := Fingerprint{0x73, 0xc5, 0xda, 0x0a}
	tests := []struct {
		purpose, coin uint32
		want          string
	}{
		{84, 0, "[73c5da0a/84h/0h/0h]"},
		{49, 1, "[73c5da0a/49h/1h/0h]"},
		{44, 0, "[73c5da0a/44h/0h/0h]"},
	}
	for _, tt := range tests {
		if got := KeyOrigin(fp, tt.purpose, tt.coin); got != tt.want {
			t.Errorf("KeyOrigin() = %s, want %s", got, tt.want)
		}
	}

	if got := KeyOrigin(Fingerprint{0, 0, 0, 1}, 84, 0); got != "[00000001/84h/0h/0h]" {
		t.Errorf("KeyOrigin() = %s, fingerprint must keep leading zeros", got)
	}
}

func TestDescriptor(t *testing.T) {
	origin := "[73c5da0a/84h/0h/0h]"
	key := "xpubEXAMPLE"

	tests := []struct {
		script ScriptType
		branch uint32
		want   string
	}{
		{BIP84, ChangeExternal, "wpkh([73c5da0a/84h/0h/0h]xpubEXAMPLE/0/*)"},
		{BIP84, ChangeInternal, "wpkh([73c5da0a/84h/0h/0h]xpubEXAMPLE/1/*)"},
		{BIP49, ChangeExternal, "sh(wpkh([73c5da0a/84h/0h/0h]xpubEXAMPLE/0/*))"},
		{BIP49, ChangeInternal, "sh(wpkh([73c5da0a/84h/0h/0h]xpubEXAMPLE/1/*))"},
		{BIP44, ChangeExternal, "pkh([73c5da0a/84h/0h/0h]xpubEXAMPLE/0/*)"},
		{BIP44, ChangeInternal, "pkh([73c5da0a/84h/0h/0h]xpubEXAMPLE/1/*)"},
	}

	for _, tt := range tests {
		got, err := Descriptor(tt.script, origin, key, tt.branch)
		if err != nil {
			t.Fatalf("Descriptor() error: %v", err)
		}
		if got != tt.want {
			t.Errorf("Descriptor(%s, %d) = %s, want %s", tt.script, tt.branch, got, tt.want)
		}
	}
}

func TestDescriptor_Invalid(t *testing.T) {
	if _, err := Descriptor(BIP84, "", "xpub", 2); !errors.Is(err, ErrInvalidBranch) {
		t.Errorf("error = %v, want ErrInvalidBranch", err)
	}
	if _, err := Descriptor(ScriptType(0), "", "xpub", 0); !errors.Is(err, ErrUnknownScriptType) {
		t.Errorf("error = %v, want ErrUnknownScriptType", err)
	}
}

func TestAccountDescriptors(t *testing.T) {
	acct := testAccount(t, BIP84, Mainnet)
	xpub, err := acct.StandardPublic()
	if err != nil {
		t.Fatalf("StandardPublic() error: %v", err)
	}

	d, err := AccountDescriptors(acct)
	if err != nil {
		t.Fatalf("AccountDescriptors() error: %v", err)
	}
	wantReceive := "wpkh([73c5da0a/84h/0h/0h]" + xpub + "/0/*)"
	wantChange := "wpkh([73c5da0a/84h/0h/0h]" + xpub + "/1/*)"
	if d.Receive != wantReceive {
		t.Errorf("receive = %s, want %s", d.Receive, wantReceive)
	}
	if d.Change != wantChange {
		t.Errorf("change = %s, want %s", d.Change, wantChange)
	}
}
