package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Help        bool
	Version     bool
	About       bool
	InitConfig  bool
	CheckExport string

	Config string

	// Wallet
	Network        string
	ScriptType     string
	Bits           int
	Input          string
	Dice           string
	Addresses      int
	WatchOnly      bool
	PassphraseFile string

	// Export
	ExportFile string
	Encrypt    bool

	// Security
	OfflineCheck bool
	Batch        bool

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args
	Args []string

	// Explicitly-set bool flags (for true/false overrides).
	SetWatchOnly    bool
	SetEncrypt      bool
	SetOfflineCheck bool
	SetBatch        bool
	SetLogJSON      bool
}

// ParseFlags parses os.Args. It exits on a parse error.
func ParseFlags() *Flags {
	f, err := ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage()
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return f
}

// ParseArgs parses command-line arguments.
func ParseArgs(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet(Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "V", false, "Show version (shorthand)")
	fs.BoolVar(&f.About, "about", false, "Show project information")
	fs.BoolVar(&f.InitConfig, "init-config", false, "Write an example config file and exit")
	fs.StringVar(&f.CheckExport, "check-export", "", "Verify an export file and print its summary")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	// Wallet
	fs.StringVar(&f.Network, "network", "", "Network (mainnet or testnet)")
	testnet := fs.Bool("testnet", false, "Use testnet (shorthand for --network=testnet)")
	fs.StringVar(&f.ScriptType, "script-type", "", "Script type (bip84, bip49 or bip44)")
	fs.IntVar(&f.Bits, "bits", 0, "Mnemonic strength in bits (128 or 256)")
	fs.StringVar(&f.Input, "input", "", "Dice input (auto or manual)")
	fs.StringVar(&f.Dice, "dice", "", "Dice sequence for manual input (digits 1-6)")
	fs.IntVar(&f.Addresses, "addresses", 0, "Number of receive addresses to show")
	fs.BoolVar(&f.WatchOnly, "watch-only", true, "Leave the account private key out")
	fs.StringVar(&f.PassphraseFile, "passphrase-file", "", "Read the BIP-39 passphrase from a file")

	// Export
	fs.StringVar(&f.ExportFile, "export", "", "Write the export JSON to a file")
	fs.BoolVar(&f.Encrypt, "encrypt", false, "Encrypt the export file with a password")

	// Security
	fs.BoolVar(&f.OfflineCheck, "offline-check", false, "Refuse to run while a network interface is up")
	fs.BoolVar(&f.Batch, "batch", false, "Skip prompts, use config and flag values")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *testnet {
		f.Network = string(Testnet)
	}
	f.SetWatchOnly = isFlagSet(fs, "watch-only")
	f.SetEncrypt = isFlagSet(fs, "encrypt")
	f.SetOfflineCheck = isFlagSet(fs, "offline-check")
	f.SetBatch = isFlagSet(fs, "batch")
	f.SetLogJSON = isFlagSet(fs, "log-json")

	f.Args = fs.Args()
	if len(f.Args) > 0 {
		return nil, fmt.Errorf("unexpected argument %q", f.Args[0])
	}

	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	// Wallet
	if f.Network != "" {
		cfg.Network = NetworkType(strings.ToLower(f.Network))
		cfg.markPreset(KeyNetwork)
	}
	if f.ScriptType != "" {
		cfg.ScriptType = strings.ToLower(f.ScriptType)
		cfg.markPreset(KeyScriptType)
	}
	if f.Bits != 0 {
		cfg.Bits = f.Bits
		cfg.markPreset(KeyBits)
	}
	if f.Input != "" {
		cfg.Input = strings.ToLower(f.Input)
		cfg.markPreset(KeyInput)
	}
	if f.Dice != "" {
		cfg.Dice = f.Dice
		// Dice on the command line imply manual input.
		if f.Input == "" {
			cfg.Input = InputManual
			cfg.markPreset(KeyInput)
		}
	}
	if f.Addresses != 0 {
		cfg.Addresses = f.Addresses
	}
	if f.SetWatchOnly {
		cfg.WatchOnly = f.WatchOnly
		cfg.markPreset(KeyWatchOnly)
	}
	if f.PassphraseFile != "" {
		cfg.PassphraseFile = f.PassphraseFile
	}

	// Export
	if f.ExportFile != "" {
		cfg.Export.File = f.ExportFile
	}
	if f.SetEncrypt {
		cfg.Export.Encrypt = f.Encrypt
	}

	// Security
	if f.SetOfflineCheck {
		cfg.OfflineCheck = f.OfflineCheck
	}
	if f.SetBatch {
		cfg.Batch = f.Batch
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func printUsage() {
	usage := `seedctl - offline Bitcoin wallet generator from dice entropy

Usage:
  seedctl [options]
  seedctl --help

Commands:
  --help, -h        Show this help message
  --version, -V     Show version information
  --about           Show project information
  --init-config     Write an example config file and exit
  --check-export    Verify an export file (sealed or plain) and print
                    its summary

Wallet Options:
  --network         Network: mainnet (default) or testnet
  --testnet         Shorthand for --network=testnet
  --script-type     bip84 (native SegWit, default), bip49 (nested SegWit),
                    bip44 (legacy)
  --bits            Mnemonic strength: 128 (12 words) or 256 (24 words)
  --input           Dice input: auto (generated + system randomness) or
                    manual (entered dice only, reproducible)
  --dice            Dice sequence (digits 1-6), implies --input=manual
  --addresses       Receive addresses to show (default: 10)
  --watch-only      Leave the account private key out (default: true)
  --passphrase-file Read the BIP-39 passphrase from a file

Export Options:
  --export          Write the export JSON to a file
  --encrypt         Encrypt the export file (required with --watch-only=false)

Security Options:
  --offline-check   Refuse to run while a network interface is up
  --batch           Skip the security card and all prompts

Logging Options:
  --log-level       Log level: debug, info, warn (default), error
  --log-file        Log file path
  --log-json        Output logs as JSON

Config:
  --config, -c      Config file path (default: ~/.seedctl/seedctl.conf)

Examples:
  # Interactive
  seedctl

  # Reproduce a wallet from 50 manually rolled dice
  seedctl --batch --dice=<50 digits> --script-type=bip84

  # 24 words on testnet, export the watch-only record
  seedctl --testnet --bits=256 --export=wallet.json
`
	fmt.Print(usage)
}

// PrintUsage prints the help text.
func PrintUsage() {
	printUsage()
}

// Load loads configuration with the following precedence:
// 1. Default values
// 2. Config file
// 3. Command-line flags
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	configPath := f.Config
	if configPath == "" {
		configPath = DefaultConfigFile()
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}

	// Apply flags (highest precedence)
	ApplyFlags(cfg, f)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
