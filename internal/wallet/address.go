package wallet

import (
	"fmt"

	"github.com/Klingon-tech/seedctl/pkg/crypto"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
)

// DefaultAddressCount is the number of receive addresses shown.
const DefaultAddressCount = 10

// DerivedAddress is an address at account/branch/index.
type DerivedAddress struct {
	Index   uint32
	Path    string
	Address string
}

// AddressFromPubKey renders a compressed public key as an address of the
// given script type.
func AddressFromPubKey(pub []byte, script ScriptType, network Network) (string, error) {
	compressed, err := crypto.CompressPubKey(pub)
	if err != nil {
		return "", err
	}
	params := network.Params()
	hash := crypto.Hash160(compressed)

	var addr btcutil.Address
	switch script {
	case BIP44:
		addr, err = btcutil.NewAddressPubKeyHash(hash, params)
	case BIP49:
		var wpkh *btcutil.AddressWitnessPubKeyHash
		wpkh, err = btcutil.NewAddressWitnessPubKeyHash(hash, params)
		if err != nil {
			break
		}
		var redeem []byte
		redeem, err = txscript.PayToAddrScript(wpkh)
		if err != nil {
			break
		}
		addr, err = btcutil.NewAddressScriptHash(redeem, params)
	case BIP84:
		addr, err = btcutil.NewAddressWitnessPubKeyHash(hash, params)
	default:
		return "", fmt.Errorf("%w %d", ErrUnknownScriptType, uint32(script))
	}
	if err != nil {
		return "", fmt.Errorf("encode %s address: %w", script, err)
	}
	return addr.EncodeAddress(), nil
}

// DeriveAddresses derives count addresses at branch/0..count-1 below the
// account public key. Only public derivation is used.
func DeriveAddresses(a *Account, branch, count uint32) ([]DerivedAddress, error) {
	if branch != ChangeExternal && branch != ChangeInternal {
		return nil, fmt.Errorf("%w %d", ErrInvalidBranch, branch)
	}
	branchKey, err := a.PublicKey().DeriveChild(branch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDerivation, err)
	}
	out := make([]DerivedAddress, 0, count)
	for i := uint32(0); i < count; i++ {
		child, err := branchKey.DeriveChild(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDerivation, err)
		}
		addr, err := AddressFromPubKey(child.PublicKeyBytes(), a.Script, a.Network)
		if err != nil {
			return nil, err
		}
		out = append(out, DerivedAddress{
			Index:   i,
			Path:    a.Path.Child(branch, i),
			Address: addr,
		})
	}
	return out, nil
}
