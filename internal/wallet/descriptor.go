package wallet

import (
	"errors"
	"fmt"
)

var ErrInvalidBranch = errors.New("invalid branch")

// KeyOrigin renders the descriptor key origin [fingerprint/purposeh/coinh/0h].
func KeyOrigin(fp Fingerprint, purpose, coinType uint32) string {
	return fmt.Sprintf("[%s/%dh/%dh/%dh]", fp, purpose, coinType, AccountIndex)
}

// Descriptor renders the output descriptor for one branch of an account:
// pkh(...) for BIP44, sh(wpkh(...)) for BIP49 and wpkh(...) for BIP84.
func Descriptor(script ScriptType, keyOrigin, accountKey string, branch uint32) (string, error) {
	if !script.Valid() {
		return "", fmt.Errorf("%w %d", ErrUnknownScriptType, uint32(script))
	}
	if branch != ChangeExternal && branch != ChangeInternal {
		return "", fmt.Errorf("%w %d (must be %d or %d)", ErrInvalidBranch, branch, ChangeExternal, ChangeInternal)
	}
	key := fmt.Sprintf("%s%s/%d/*", keyOrigin, accountKey, branch)
	return fmt.Sprintf(script.info().descriptor, key), nil
}

// Descriptors holds the receive and change descriptors of an account.
type Descriptors struct {
	Receive string
	Change  string
}

// AccountDescriptors renders both branch descriptors using the standard
// xpub/tpub encoding of the account key.
func AccountDescriptors(a *Account) (Descriptors, error) {
	xpub, err := a.StandardPublic()
	if err != nil {
		return Descriptors{}, err
	}
	origin := a.KeyOrigin()
	receive, err := Descriptor(a.Script, origin, xpub, ChangeExternal)
	if err != nil {
		return Descriptors{}, err
	}
	change, err := Descriptor(a.Script, origin, xpub, ChangeInternal)
	if err != nil {
		return Descriptors{}, err
	}
	return Descriptors{Receive: receive, Change: change}, nil
}
