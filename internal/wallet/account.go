package wallet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Klingon-tech/seedctl/pkg/crypto"
)

// AccountIndex is the only account derived.
const AccountIndex = 0

// Branches below an account key.
const (
	// ChangeExternal is for receiving addresses.
	ChangeExternal = 0

	// ChangeInternal is for change addresses.
	ChangeInternal = 1
)

var ErrDerivation = errors.New("key derivation failed")

// KeyPath is the account path m/purpose'/coin_type'/0'.
type KeyPath struct {
	Purpose  uint32
	CoinType uint32
}

// NewKeyPath returns the account path for a script type and network.
func NewKeyPath(script ScriptType, network Network) KeyPath {
	return KeyPath{Purpose: script.Purpose(), CoinType: network.CoinType()}
}

// Indices returns the hardened derivation indices.
func (p KeyPath) Indices() []uint32 {
	return []uint32{
		HardenedOffset + p.Purpose,
		HardenedOffset + p.CoinType,
		HardenedOffset + AccountIndex,
	}
}

// String renders the path as m/84'/0'/0'.
func (p KeyPath) String() string {
	return fmt.Sprintf("m/%d'/%d'/%d'", p.Purpose, p.CoinType, AccountIndex)
}

// Child renders the path of a branch/index below the account.
func (p KeyPath) Child(branch, index uint32) string {
	return fmt.Sprintf("%s/%d/%d", p, branch, index)
}

// Account is the key pair at an account path. It owns its key material;
// call Zero once the encoded keys have been consumed.
type Account struct {
	Script      ScriptType
	Network     Network
	Path        KeyPath
	Fingerprint Fingerprint // master key fingerprint

	priv *HDKey
	pub  *HDKey
}

// DeriveAccount derives m/purpose'/coin_type'/0' from the master key.
func DeriveAccount(master *HDKey, script ScriptType, network Network) (*Account, error) {
	if !script.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownScriptType, uint32(script))
	}
	if !network.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownNetwork, int(network))
	}
	if !master.IsPrivate() || master.Depth() != 0 {
		return nil, fmt.Errorf("%w: account derivation needs the private master key", ErrDerivation)
	}

	path := NewKeyPath(script, network)
	priv, err := master.DerivePath(path.Indices()...)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrDerivation, path, err)
	}
	acct := &Account{
		Script:      script,
		Network:     network,
		Path:        path,
		Fingerprint: master.Fingerprint(),
		priv:        priv,
		pub:         priv.Neuter(),
	}
	if err := acct.verify(); err != nil {
		acct.Zero()
		return nil, err
	}
	return acct, nil
}

// verify checks that the public key matches the private scalar.
func (a *Account) verify() error {
	key, err := crypto.PrivateKeyFromBytes(a.priv.PrivateKeyBytes())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDerivation, err)
	}
	defer key.Zero()
	if !bytes.Equal(key.PublicKey(), a.pub.PublicKeyBytes()) {
		return fmt.Errorf("%w: public key does not match private key", ErrDerivation)
	}
	return nil
}

// PublicKey returns the public-only account key.
func (a *Account) PublicKey() *HDKey {
	return a.pub
}

// StandardPublic returns the xpub (or tpub) encoding, as used in descriptors.
func (a *Account) StandardPublic() (string, error) {
	return a.pub.Encode(BIP44.PublicVersion(a.Network))
}

// StandardPrivate returns the xprv (or tprv) encoding.
func (a *Account) StandardPrivate() (string, error) {
	return a.priv.Encode(BIP44.PrivateVersion(a.Network))
}

// ExtendedPublic returns the SLIP-132 public encoding for the script type
// (xpub, ypub, zpub, or tpub, upub, vpub on testnet).
func (a *Account) ExtendedPublic() (string, error) {
	return a.pub.Encode(a.Script.PublicVersion(a.Network))
}

// ExtendedPrivate returns the SLIP-132 private encoding for the script type.
func (a *Account) ExtendedPrivate() (string, error) {
	return a.priv.Encode(a.Script.PrivateVersion(a.Network))
}

// KeyOrigin returns the descriptor key origin for this account.
func (a *Account) KeyOrigin() string {
	return KeyOrigin(a.Fingerprint, a.Path.Purpose, a.Path.CoinType)
}

// Zero wipes the account keys.
func (a *Account) Zero() {
	a.priv.Zero()
	a.pub.Zero()
}
