package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

var (
	ErrUnknownNetwork    = errors.New("unknown network")
	ErrUnknownScriptType = errors.New("unknown script type")
)

// Network selects the Bitcoin network and its BIP-44 coin type.
type Network int

const (
	Mainnet Network = iota
	Testnet
)

type networkInfo struct {
	name     string // export identifier
	coinType uint32
	params   *chaincfg.Params
}

var networks = map[Network]networkInfo{
	Mainnet: {name: "bitcoin", coinType: 0, params: &chaincfg.MainNetParams},
	Testnet: {name: "testnet", coinType: 1, params: &chaincfg.TestNet3Params},
}

// ParseNetwork accepts "mainnet", "bitcoin", "testnet" or "testnet3".
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mainnet", "bitcoin", "main":
		return Mainnet, nil
	case "testnet", "testnet3", "test":
		return Testnet, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownNetwork, s)
	}
}

func (n Network) info() networkInfo {
	info, ok := networks[n]
	if !ok {
		panic(fmt.Sprintf("wallet: invalid network %d", int(n)))
	}
	return info
}

// Valid reports whether n is a known network.
func (n Network) Valid() bool {
	_, ok := networks[n]
	return ok
}

// String returns the export identifier ("bitcoin" or "testnet").
func (n Network) String() string {
	if !n.Valid() {
		return fmt.Sprintf("network(%d)", int(n))
	}
	return n.info().name
}

// CoinType returns the unhardened BIP-44 coin type.
func (n Network) CoinType() uint32 {
	return n.info().coinType
}

// Params returns the chain parameters used for address encoding.
func (n Network) Params() *chaincfg.Params {
	return n.info().params
}

// ScriptType is the BIP-43 purpose of an account.
type ScriptType uint32

const (
	BIP44 ScriptType = 44 // Legacy P2PKH
	BIP49 ScriptType = 49 // Nested SegWit P2SH-P2WPKH
	BIP84 ScriptType = 84 // Native SegWit P2WPKH
)

type scriptInfo struct {
	name        string // export identifier
	label       string
	descriptor  string // format with key expression
	mainnetPriv Version
	mainnetPub  Version
	testnetPriv Version
	testnetPub  Version
}

var scriptTypes = map[ScriptType]scriptInfo{
	BIP44: {
		name:        "bip44",
		label:       "Legacy (BIP44)",
		descriptor:  "pkh(%s)",
		mainnetPriv: VersionXprv,
		mainnetPub:  VersionXpub,
		testnetPriv: VersionTprv,
		testnetPub:  VersionTpub,
	},
	BIP49: {
		name:        "bip49",
		label:       "Nested SegWit (BIP49)",
		descriptor:  "sh(wpkh(%s))",
		mainnetPriv: VersionYprv,
		mainnetPub:  VersionYpub,
		testnetPriv: VersionUprv,
		testnetPub:  VersionUpub,
	},
	BIP84: {
		name:        "bip84",
		label:       "Native SegWit (BIP84)",
		descriptor:  "wpkh(%s)",
		mainnetPriv: VersionZprv,
		mainnetPub:  VersionZpub,
		testnetPriv: VersionVprv,
		testnetPub:  VersionVpub,
	},
}

// ScriptTypes lists the supported script types in menu order.
var ScriptTypes = []ScriptType{BIP84, BIP49, BIP44}

// ParseScriptType accepts "bip44", "44", "legacy", "bip49", "nested",
// "bip84", "native" and similar spellings.
func ParseScriptType(s string) (ScriptType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bip44", "44", "legacy", "pkh", "p2pkh":
		return BIP44, nil
	case "bip49", "49", "nested", "nested-segwit", "sh-wpkh", "p2sh-p2wpkh":
		return BIP49, nil
	case "bip84", "84", "native", "native-segwit", "segwit", "wpkh", "p2wpkh":
		return BIP84, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownScriptType, s)
	}
}

func (s ScriptType) info() scriptInfo {
	info, ok := scriptTypes[s]
	if !ok {
		panic(fmt.Sprintf("wallet: invalid script type %d", uint32(s)))
	}
	return info
}

// Valid reports whether s is a supported purpose.
func (s ScriptType) Valid() bool {
	_, ok := scriptTypes[s]
	return ok
}

// Purpose returns the unhardened BIP-43 purpose.
func (s ScriptType) Purpose() uint32 {
	return uint32(s)
}

// String returns the export identifier ("bip44", "bip49" or "bip84").
func (s ScriptType) String() string {
	if !s.Valid() {
		return fmt.Sprintf("purpose(%d)", uint32(s))
	}
	return s.info().name
}

// Label returns a human readable name.
func (s ScriptType) Label() string {
	return s.info().label
}

// PrivateVersion returns the SLIP-132 private key version for the network.
func (s ScriptType) PrivateVersion(n Network) Version {
	if n == Testnet {
		return s.info().testnetPriv
	}
	return s.info().mainnetPriv
}

// PublicVersion returns the SLIP-132 public key version for the network.
func (s ScriptType) PublicVersion(n Network) Version {
	if n == Testnet {
		return s.info().testnetPub
	}
	return s.info().mainnetPub
}
