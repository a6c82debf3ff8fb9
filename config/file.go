package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads configuration values from a .conf file.
// A missing file yields no values.
// Format: key = value (one per line, # for comments)
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse key = value
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a config value by key.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	// Wallet
	case KeyNetwork:
		cfg.Network = NetworkType(strings.ToLower(value))
		cfg.markPreset(KeyNetwork)
	case KeyScriptType:
		cfg.ScriptType = strings.ToLower(value)
		cfg.markPreset(KeyScriptType)
	case KeyBits:
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Bits = n
		cfg.markPreset(KeyBits)
	case KeyInput:
		cfg.Input = strings.ToLower(value)
		cfg.markPreset(KeyInput)
	case "addresses":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Addresses = n
	case KeyWatchOnly:
		cfg.WatchOnly = parseBool(value)
		cfg.markPreset(KeyWatchOnly)
	case "passphrase_file":
		cfg.PassphraseFile = value

	// Export
	case "export.file":
		cfg.Export.File = value
	case "export.encrypt":
		cfg.Export.Encrypt = parseBool(value)

	// Security
	case "offline_check":
		cfg.OfflineCheck = parseBool(value)
	case "batch":
		cfg.Batch = parseBool(value)

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// WriteDefaultConfig writes a commented example configuration file.
func WriteDefaultConfig(path string) error {
	content := `# seedctl configuration
#
# Wallet options set here are not asked for interactively.
# Leave them commented out to be prompted.

# Network: mainnet or testnet
# network = mainnet

# Script type: bip84 (native SegWit), bip49 (nested SegWit), bip44 (legacy)
# script_type = bip84

# Mnemonic strength: 128 (12 words) or 256 (24 words)
# bits = 128

# Dice input: auto (generated, mixed with system randomness)
#             manual (entered, reproducible)
# input = auto

# Receive addresses to show
addresses = 10

# Leave the account private key out of the output and export
# watch_only = true

# Read the BIP-39 passphrase from a file instead of prompting
# passphrase_file =

# ============================================================================
# Export
# ============================================================================

# Write the export JSON to a file
# export.file = wallet.json

# Encrypt the export file with a password (required when it holds a private key)
# export.encrypt = false

# ============================================================================
# Security
# ============================================================================

# Refuse to run while a network interface is up
offline_check = false

# ============================================================================
# Logging
# ============================================================================

log.level = warn
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0600)
}
