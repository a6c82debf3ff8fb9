// seedctl generates Bitcoin wallet material (BIP39 mnemonic, account keys,
// output descriptors and receive addresses) from dice rolls, offline.
package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Klingon-tech/seedctl/config"
	"github.com/Klingon-tech/seedctl/internal/entropy"
	"github.com/Klingon-tech/seedctl/internal/export"
	"github.com/Klingon-tech/seedctl/internal/generator"
	"github.com/Klingon-tech/seedctl/internal/log"
	"github.com/Klingon-tech/seedctl/internal/netcheck"
	"github.com/Klingon-tech/seedctl/internal/wallet"
	"github.com/Klingon-tech/seedctl/pkg/crypto"
)

func main() {
	flags := config.ParseFlags()

	switch {
	case flags.Help:
		config.PrintUsage()
		return
	case flags.Version:
		fmt.Println(config.VersionString())
		return
	case flags.About:
		printAbout(os.Stdout)
		return
	case flags.InitConfig:
		path := flags.Config
		if path == "" {
			path = config.DefaultConfigFile()
		}
		if err := os.MkdirAll(config.DefaultConfigDir(), 0700); err != nil {
			fatal("create config dir: %v", err)
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			fatal("write config: %v", err)
		}
		fmt.Printf("Config written: %s\n", path)
		return
	case flags.CheckExport != "":
		if err := checkExport(flags.CheckExport, newUI(os.Stdin, os.Stdout), os.Stdout); err != nil {
			fatal("%v", err)
		}
		return
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fatal("%v", err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init log: %v", err)
	}

	u := newUI(os.Stdin, os.Stdout)
	if err := run(cfg, u, os.Stdout, rand.Reader); err != nil {
		if errors.Is(err, netcheck.ErrOnline) {
			fmt.Fprintf(os.Stderr, "\n%s\n%s\n", alert("[ SECURITY ABORT ]"),
				warn("This program MUST be used offline / air-gapped.\nDisable Wi-Fi, Ethernet, VPNs and try again."))
		}
		printFooter(os.Stderr)
		fatal("%v", err)
	}
}

// run collects the missing options, generates the wallet and prints it.
// Key material is printed only once every generation stage has succeeded.
func run(cfg *config.Config, u *ui, out io.Writer, random io.Reader) error {
	printBanner(out, true)

	if cfg.OfflineCheck {
		if err := netcheck.New(log.CLI).EnsureOffline(); err != nil {
			return err
		}
	}

	if !cfg.Batch {
		printSecurityCard(out)
		ok, err := u.confirm("I have read and understood all the recommendations above.", false)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("user did not confirm reading the recommendations")
		}
		if err := askOptions(cfg, u); err != nil {
			return err
		}
	}

	gen := generator.New(random, log.Generator)

	req := generator.Request{
		Bits:         cfg.Bits,
		Input:        cfg.InputMethod(),
		Network:      cfg.WalletNetwork(),
		Script:       cfg.WalletScriptType(),
		AddressCount: uint32(cfg.Addresses),
		WatchOnly:    cfg.WatchOnly,
	}
	fmt.Fprintf(out, "%s %d bits\n", bold("Selected entropy:"), req.Bits)

	dice, err := collectDice(cfg, u, gen)
	if err != nil {
		return err
	}
	defer dice.Zero()
	req.Dice = dice

	fmt.Fprintf(out, "%s %s\n\n", warn("DICE USED:"), dice)
	if !cfg.Batch {
		ok, err := u.confirm("Please confirm that the above information is correct.", true)
		if err != nil {
			return err
		}
		if !ok {
			return errAborted
		}
	}

	passphrase, err := readPassphrase(cfg, u)
	if err != nil {
		return err
	}
	req.Passphrase = string(passphrase)
	crypto.Zero(passphrase)

	res, err := gen.Generate(req)
	if err != nil {
		return err
	}

	printResult(out, res)

	rec := export.FromResult(res, export.SoftwareInfo{
		Name:       config.Name,
		Version:    config.Version,
		Repository: config.Repository,
	})
	data, err := rec.Marshal()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n%s\n", bold("Export JSON:"), data)

	if cfg.Export.File != "" {
		if err := writeExport(cfg, u, rec); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s %s\n", good("Export written:"), cfg.Export.File)
	}

	fmt.Fprintf(out, "\n%s\n", header(strings.Repeat("-", 60)))
	printFooter(out)
	return nil
}

// askOptions prompts for every wallet option not preset by file or flags.
func askOptions(cfg *config.Config, u *ui) error {
	if !cfg.IsPreset(config.KeyBits) {
		choice, err := u.choose("[ Mnemonic size (seed) ]", []string{"12 words (128 bits)", "24 words (256 bits)"}, 0)
		if err != nil {
			return err
		}
		cfg.Bits = []int{entropy.Bits128, entropy.Bits256}[choice]
	}
	if !cfg.IsPreset(config.KeyInput) {
		choice, err := u.choose("[ Dice (1-6) ]", []string{"Auto (random)", "Manual (inform sequence)"}, 0)
		if err != nil {
			return err
		}
		cfg.Input = []string{config.InputAuto, config.InputManual}[choice]
	}
	if !cfg.IsPreset(config.KeyNetwork) {
		choice, err := u.choose("Network", []string{"Bitcoin (Mainnet)", "Bitcoin (Testnet)"}, 0)
		if err != nil {
			return err
		}
		cfg.Network = []config.NetworkType{config.Mainnet, config.Testnet}[choice]
	}
	if !cfg.IsPreset(config.KeyScriptType) {
		labels := make([]string, len(wallet.ScriptTypes))
		for i, s := range wallet.ScriptTypes {
			labels[i] = s.Label()
		}
		labels[0] += " (recommended)"
		choice, err := u.choose("Address type", labels, 0)
		if err != nil {
			return err
		}
		cfg.ScriptType = wallet.ScriptTypes[choice].String()
	}
	if !cfg.IsPreset(config.KeyWatchOnly) {
		show, err := u.confirm("Show the account private key?", false)
		if err != nil {
			return err
		}
		cfg.WatchOnly = !show
	}
	return config.Validate(cfg)
}

// collectDice returns the dice given on the command line, read from the
// user, or rolled from system randomness.
func collectDice(cfg *config.Config, u *ui, gen *generator.Generator) (entropy.DiceSequence, error) {
	if cfg.InputMethod() == entropy.InputAuto {
		return gen.RollDice(cfg.Bits)
	}

	var (
		dice entropy.DiceSequence
		err  error
	)
	if cfg.Dice != "" {
		dice, err = entropy.ParseDice(cfg.Dice)
	} else {
		dice, err = u.readDice(cfg.Bits)
	}
	if err != nil {
		return nil, err
	}
	if need := entropy.RequiredSymbols(cfg.Bits); len(dice) < need {
		dice.Zero()
		return nil, fmt.Errorf("%w: %d provided, minimum %d", entropy.ErrInsufficientEntropy, len(dice), need)
	}
	return dice, nil
}

func readPassphrase(cfg *config.Config, u *ui) ([]byte, error) {
	if cfg.PassphraseFile != "" {
		data, err := os.ReadFile(cfg.PassphraseFile)
		if err != nil {
			return nil, fmt.Errorf("read passphrase file: %w", err)
		}
		return []byte(strings.TrimRight(string(data), "\r\n")), nil
	}
	if cfg.Batch {
		return nil, nil
	}
	return u.readSecret(warn("[Optional] Passphrase (enter = empty): "))
}

func writeExport(cfg *config.Config, u *ui, rec *export.WalletExport) error {
	var password []byte
	if cfg.Export.Encrypt || rec.HasPrivateKey() {
		pass, err := u.readSecret("Export password: ")
		if err != nil {
			return err
		}
		confirm, err := u.readSecret("Confirm password: ")
		if err != nil {
			return err
		}
		if string(pass) != string(confirm) {
			return errors.New("passwords do not match")
		}
		crypto.Zero(confirm)
		password = pass
		defer crypto.Zero(password)
	}
	return export.WriteFile(cfg.Export.File, rec, password, export.DefaultSealParams())
}

// ── Error helper ────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
