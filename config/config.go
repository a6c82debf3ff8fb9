// Package config handles seedctl configuration.
//
// Settings come from three layers, lowest precedence first: built-in
// defaults, an optional seedctl.conf file, and command-line flags. Any
// wallet option set by the file or a flag is taken as given; the remaining
// ones are asked for interactively unless batch mode is on.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// NetworkType identifies mainnet or testnet.
type NetworkType string

const (
	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
)

// InputMethod values.
const (
	InputAuto   = "auto"
	InputManual = "manual"
)

// Keys of the wallet options that can be preset. They are also the config
// file keys.
const (
	KeyNetwork    = "network"
	KeyScriptType = "script_type"
	KeyBits       = "bits"
	KeyInput      = "input"
	KeyWatchOnly  = "watch_only"
)

// Config holds the options of one seedctl run.
type Config struct {
	// Wallet
	Network    NetworkType `conf:"network"`
	ScriptType string      `conf:"script_type"` // bip44, bip49 or bip84
	Bits       int         `conf:"bits"`        // 128 or 256
	Input      string      `conf:"input"`       // auto or manual
	Addresses  int         `conf:"addresses"`
	WatchOnly  bool        `conf:"watch_only"`

	// Dice supplied on the command line (manual input only, not persisted).
	Dice string

	// PassphraseFile holds the BIP-39 passphrase; read instead of prompting.
	PassphraseFile string `conf:"passphrase_file"`

	// Export
	Export ExportConfig

	// Security
	OfflineCheck bool `conf:"offline_check"`

	// Batch skips the security card and all prompts.
	Batch bool `conf:"batch"`

	// Logging
	Log LogConfig

	// Preset records the wallet options set by the file or flags.
	Preset map[string]bool
}

// ExportConfig holds export file settings.
type ExportConfig struct {
	File    string `conf:"export.file"`
	Encrypt bool   `conf:"export.encrypt"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// IsPreset reports whether a wallet option was set by the file or a flag.
func (c *Config) IsPreset(key string) bool {
	return c.Preset[key]
}

func (c *Config) markPreset(key string) {
	if c.Preset == nil {
		c.Preset = make(map[string]bool)
	}
	c.Preset[key] = true
}

// DefaultConfigDir returns the platform-specific configuration directory.
//
//	Linux:   ~/.seedctl
//	macOS:   ~/Library/Application Support/seedctl
//	Windows: %APPDATA%\seedctl
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seedctl"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "seedctl")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "seedctl")
		}
		return filepath.Join(home, "AppData", "Roaming", "seedctl")
	default:
		return filepath.Join(home, ".seedctl")
	}
}

// DefaultConfigFile returns the default config file path.
func DefaultConfigFile() string {
	return filepath.Join(DefaultConfigDir(), "seedctl.conf")
}
