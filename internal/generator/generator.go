// Package generator runs the dice-to-wallet pipeline: entropy mixing,
// mnemonic and seed, account derivation, key encodings, descriptors and
// receive addresses.
package generator

import (
	cryptorand "crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/Klingon-tech/seedctl/internal/entropy"
	"github.com/Klingon-tech/seedctl/internal/wallet"
	"github.com/Klingon-tech/seedctl/pkg/crypto"
	"github.com/rs/zerolog"
)

var ErrInvalidRequest = errors.New("invalid request")

// Request holds the inputs collected by the caller.
type Request struct {
	Bits       int
	Input      entropy.InputMethod
	Dice       entropy.DiceSequence // required for manual input, generated for auto
	Passphrase string
	Network    wallet.Network
	Script     wallet.ScriptType

	// AddressCount is the number of receive addresses; 0 means the default.
	AddressCount uint32

	// WatchOnly omits the account private key from the result.
	WatchOnly bool
}

// Result is the complete wallet material of one run.
type Result struct {
	Mode        entropy.Mode
	Dice        string
	Words       []string
	Indices     []int // 0-based wordlist positions
	Network     wallet.Network
	Script      wallet.ScriptType
	Path        string
	Fingerprint wallet.Fingerprint
	KeyOrigin   string
	WatchOnly   bool

	AccountPublic  string // SLIP-132 encoding for the script type
	AccountPrivate string // empty when WatchOnly
	StandardPublic string // xpub/tpub as used in descriptors

	Descriptors wallet.Descriptors
	Addresses   []wallet.DerivedAddress
}

// Generator runs the pipeline. A Generator keeps no key material between
// calls.
type Generator struct {
	rand  io.Reader
	mixer *entropy.Mixer
	log   zerolog.Logger
}

// New creates a Generator. rand is the system randomness source used for
// generated dice and hybrid mixing; nil selects crypto/rand.
func New(rand io.Reader, log zerolog.Logger) *Generator {
	if rand == nil {
		rand = cryptorand.Reader
	}
	return &Generator{rand: rand, mixer: entropy.NewMixer(rand), log: log}
}

// RollDice generates the minimum number of dice for bits from the system
// randomness source.
func (g *Generator) RollDice(bits int) (entropy.DiceSequence, error) {
	if err := entropy.ValidateBits(bits); err != nil {
		return nil, err
	}
	return entropy.RandomDice(g.rand, entropy.RequiredSymbols(bits))
}

// Generate runs every stage. On error no Result is returned.
func (g *Generator) Generate(req Request) (*Result, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}

	dice := req.Dice
	if req.Input == entropy.InputAuto && len(dice) == 0 {
		rolled, err := g.RollDice(req.Bits)
		if err != nil {
			return nil, err
		}
		dice = rolled
		defer dice.Zero()
	}
	mode := entropy.ModeForInput(req.Input)

	g.log.Debug().
		Int("bits", req.Bits).
		Int("dice", len(dice)).
		Int("required", entropy.RequiredSymbols(req.Bits)).
		Str("mode", mode.String()).
		Msg("Mixing entropy")

	ent, err := g.mixer.Mix(dice, mode, req.Bits)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(ent)

	res, err := g.derive(ent, req)
	if err != nil {
		return nil, err
	}
	res.Mode = mode
	res.Dice = dice.String()
	return res, nil
}

// FromEntropy runs every stage after mixing on a caller-supplied entropy
// buffer of 16 or 32 bytes. Req.Bits, Input and Dice are ignored.
func (g *Generator) FromEntropy(ent []byte, req Request) (*Result, error) {
	req.Bits = len(ent) * 8
	req.Input = entropy.InputAuto
	if err := validate(&req); err != nil {
		if errors.Is(err, entropy.ErrUnsupportedBits) {
			return nil, fmt.Errorf("%w: %d bytes", wallet.ErrInvalidEntropyLength, len(ent))
		}
		return nil, err
	}
	return g.derive(ent, req)
}

func (g *Generator) derive(ent []byte, req Request) (*Result, error) {
	mnemonic, err := wallet.NewMnemonic(ent)
	if err != nil {
		return nil, err
	}

	seed, err := mnemonic.Seed(req.Passphrase)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(seed)

	master, err := wallet.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wallet.ErrDerivation, err)
	}
	defer master.Zero()

	acct, err := wallet.DeriveAccount(master, req.Script, req.Network)
	if err != nil {
		return nil, err
	}
	defer acct.Zero()

	g.log.Debug().
		Str("path", acct.Path.String()).
		Str("fingerprint", acct.Fingerprint.String()).
		Msg("Derived account")

	res := &Result{
		Words:       mnemonic.Words(),
		Indices:     mnemonic.Indices(),
		Network:     req.Network,
		Script:      req.Script,
		Path:        acct.Path.String(),
		Fingerprint: acct.Fingerprint,
		KeyOrigin:   acct.KeyOrigin(),
		WatchOnly:   req.WatchOnly,
	}

	if res.AccountPublic, err = acct.ExtendedPublic(); err != nil {
		return nil, err
	}
	if res.StandardPublic, err = acct.StandardPublic(); err != nil {
		return nil, err
	}
	if !req.WatchOnly {
		if res.AccountPrivate, err = acct.ExtendedPrivate(); err != nil {
			return nil, err
		}
	}
	if res.Descriptors, err = wallet.AccountDescriptors(acct); err != nil {
		return nil, err
	}
	if res.Addresses, err = wallet.DeriveAddresses(acct, wallet.ChangeExternal, req.AddressCount); err != nil {
		return nil, err
	}

	g.log.Info().
		Str("network", req.Network.String()).
		Str("script_type", req.Script.String()).
		Int("words", len(res.Words)).
		Int("addresses", len(res.Addresses)).
		Bool("watch_only", req.WatchOnly).
		Msg("Wallet generated")

	return res, nil
}

func validate(req *Request) error {
	if err := entropy.ValidateBits(req.Bits); err != nil {
		return err
	}
	switch req.Input {
	case entropy.InputAuto:
	case entropy.InputManual:
		if len(req.Dice) == 0 {
			return fmt.Errorf("%w: manual input requires dice", ErrInvalidRequest)
		}
	default:
		return fmt.Errorf("%w: unknown input method %q", ErrInvalidRequest, req.Input)
	}
	if !req.Network.Valid() {
		return fmt.Errorf("%w %d", wallet.ErrUnknownNetwork, int(req.Network))
	}
	if !req.Script.Valid() {
		return fmt.Errorf("%w %d", wallet.ErrUnknownScriptType, uint32(req.Script))
	}
	if req.AddressCount == 0 {
		req.AddressCount = wallet.DefaultAddressCount
	}
	return nil
}
