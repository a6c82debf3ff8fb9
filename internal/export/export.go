// Package export builds the wallet export record and writes it to disk,
// optionally sealed with a password.
package export

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Klingon-tech/seedctl/internal/generator"
	klog "github.com/Klingon-tech/seedctl/internal/log"
	"github.com/Klingon-tech/seedctl/internal/wallet"
)

var (
	ErrPlaintextPrivateKey = errors.New("refusing to write a private key unencrypted")
	ErrInconsistentExport  = errors.New("inconsistent export")
)

// SoftwareInfo identifies the program that produced an export.
type SoftwareInfo struct {
	Name       string `json:"name"`
	Version    string `json:"version"`
	Repository string `json:"repository"`
}

// KeyOrigin is the master fingerprint and account derivation path.
type KeyOrigin struct {
	Fingerprint    string `json:"fingerprint"`
	DerivationPath string `json:"derivation_path"`
}

// Keys holds the account keys. AccountXprv is null for watch-only exports.
type Keys struct {
	AccountXpub string  `json:"account_xpub"`
	AccountXprv *string `json:"account_xprv"`
}

// Descriptors holds the receive and change output descriptors.
type Descriptors struct {
	Receive string `json:"receive"`
	Change  string `json:"change"`
}

// WalletExport is the record handed to wallet software.
type WalletExport struct {
	Software    SoftwareInfo `json:"software"`
	Network     string       `json:"network"`
	ScriptType  string       `json:"script_type"`
	KeyOrigin   KeyOrigin    `json:"key_origin"`
	WatchOnly   bool         `json:"watch_only"`
	Keys        Keys         `json:"keys"`
	Descriptors Descriptors  `json:"descriptors"`
}

// FromResult builds the export record of a generated wallet.
func FromResult(res *generator.Result, sw SoftwareInfo) *WalletExport {
	rec := &WalletExport{
		Software:   sw,
		Network:    res.Network.String(),
		ScriptType: res.Script.String(),
		KeyOrigin: KeyOrigin{
			Fingerprint:    res.Fingerprint.String(),
			DerivationPath: res.Path,
		},
		WatchOnly: res.WatchOnly || res.AccountPrivate == "",
		Keys: Keys{
			AccountXpub: res.AccountPublic,
		},
		Descriptors: Descriptors{
			Receive: res.Descriptors.Receive,
			Change:  res.Descriptors.Change,
		},
	}
	if !rec.WatchOnly {
		xprv := res.AccountPrivate
		rec.Keys.AccountXprv = &xprv
	}
	return rec
}

// HasPrivateKey reports whether the record carries the account private key.
func (w *WalletExport) HasPrivateKey() bool {
	return w.Keys.AccountXprv != nil
}

// Marshal returns the record as indented JSON.
func (w *WalletExport) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// WriteFile writes the record to path. With a non-empty password the JSON is
// sealed; a record holding a private key is only written sealed.
func WriteFile(path string, rec *WalletExport, password []byte, params SealParams) error {
	data, err := rec.Marshal()
	if err != nil {
		return err
	}

	logger := klog.WithComponent("export")

	sealed := len(password) > 0
	if sealed {
		if data, err = Seal(data, password, params); err != nil {
			return fmt.Errorf("seal export: %w", err)
		}
	} else if rec.HasPrivateKey() {
		return ErrPlaintextPrivateKey
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	ev := logger.Info().
		Str("path", path).
		Bool("sealed", sealed).
		Bool("watch_only", rec.WatchOnly)
	if sealed {
		ev = ev.Uint32("argon2_memory_kib", params.Memory).
			Uint32("argon2_iterations", params.Iterations).
			Uint8("argon2_parallelism", params.Parallelism)
	}
	ev.Msg("Export written")
	return nil
}

// ReadFile reads a record written by WriteFile. The password is only used
// when the file is sealed.
func ReadFile(path string, password []byte) (*WalletExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	sealed := IsSealed(data)
	if sealed {
		if data, err = Open(data, password); err != nil {
			return nil, err
		}
	}

	var rec WalletExport
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}

	logger := klog.WithComponent("export")
	logger.Debug().
		Str("path", path).
		Bool("sealed", sealed).
		Msg("Export read")
	return &rec, nil
}

// Verify checks that the record is self-consistent: the account key decodes
// with the version of its network and script type, and both descriptors
// rebuild from the key origin and that key.
func (w *WalletExport) Verify() error {
	network, err := wallet.ParseNetwork(w.Network)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistentExport, err)
	}
	script, err := wallet.ParseScriptType(w.ScriptType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistentExport, err)
	}

	version, _, err := wallet.DecodeExtendedKey(w.Keys.AccountXpub)
	if err != nil {
		return fmt.Errorf("%w: account_xpub: %v", ErrInconsistentExport, err)
	}
	if want := script.PublicVersion(network); version != want {
		return fmt.Errorf("%w: account_xpub is %s, want %s", ErrInconsistentExport, version, want)
	}
	if w.WatchOnly == w.HasPrivateKey() {
		return fmt.Errorf("%w: watch_only=%t with account_xprv present=%t",
			ErrInconsistentExport, w.WatchOnly, w.HasPrivateKey())
	}

	fpBytes, err := hex.DecodeString(w.KeyOrigin.Fingerprint)
	if err != nil || len(fpBytes) != 4 {
		return fmt.Errorf("%w: fingerprint %q", ErrInconsistentExport, w.KeyOrigin.Fingerprint)
	}
	var fp wallet.Fingerprint
	copy(fp[:], fpBytes)
	if want := wallet.NewKeyPath(script, network).String(); w.KeyOrigin.DerivationPath != want {
		return fmt.Errorf("%w: derivation path %s, want %s", ErrInconsistentExport, w.KeyOrigin.DerivationPath, want)
	}

	standard, err := wallet.ReencodeString(w.Keys.AccountXpub, wallet.BIP44.PublicVersion(network))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInconsistentExport, err)
	}
	origin := wallet.KeyOrigin(fp, script.Purpose(), network.CoinType())
	for branch, got := range map[uint32]string{
		wallet.ChangeExternal: w.Descriptors.Receive,
		wallet.ChangeInternal: w.Descriptors.Change,
	} {
		want, err := wallet.Descriptor(script, origin, standard, branch)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("%w: descriptor for branch %d is %s, want %s", ErrInconsistentExport, branch, got, want)
		}
	}
	return nil
}
