package config

import (
	"fmt"
	"strings"

	"github.com/Klingon-tech/seedctl/internal/entropy"
	"github.com/Klingon-tech/seedctl/internal/wallet"
)

// MaxAddresses bounds the number of receive addresses shown.
const MaxAddresses = 1000

// Validate checks the config for obvious mistakes and normalizes spellings.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	network, err := wallet.ParseNetwork(string(cfg.Network))
	if err != nil {
		return fmt.Errorf("network must be %q or %q", Mainnet, Testnet)
	}
	if network == wallet.Testnet {
		cfg.Network = Testnet
	} else {
		cfg.Network = Mainnet
	}

	script, err := wallet.ParseScriptType(cfg.ScriptType)
	if err != nil {
		return fmt.Errorf("script_type must be bip44, bip49 or bip84")
	}
	cfg.ScriptType = script.String()

	if err := entropy.ValidateBits(cfg.Bits); err != nil {
		return fmt.Errorf("bits: %w", err)
	}

	switch cfg.Input {
	case InputAuto:
		if cfg.Dice != "" {
			return fmt.Errorf("dice can only be given with input=%s", InputManual)
		}
	case InputManual:
		if cfg.Dice != "" {
			if _, err := entropy.ParseDice(cfg.Dice); err != nil {
				return fmt.Errorf("dice: %w", err)
			}
		}
	default:
		return fmt.Errorf("input must be %q or %q", InputAuto, InputManual)
	}

	if cfg.Addresses < 1 || cfg.Addresses > MaxAddresses {
		return fmt.Errorf("addresses must be in range [1, %d]", MaxAddresses)
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}

	if cfg.Batch && cfg.Input == InputManual && cfg.Dice == "" {
		return fmt.Errorf("batch mode with input=%s requires dice", InputManual)
	}

	return nil
}

// WalletNetwork returns the validated network.
func (c *Config) WalletNetwork() wallet.Network {
	if c.Network == Testnet {
		return wallet.Testnet
	}
	return wallet.Mainnet
}

// WalletScriptType returns the validated script type.
func (c *Config) WalletScriptType() wallet.ScriptType {
	script, err := wallet.ParseScriptType(c.ScriptType)
	if err != nil {
		return wallet.BIP84
	}
	return script
}

// InputMethod returns the dice input method.
func (c *Config) InputMethod() entropy.InputMethod {
	if c.Input == InputManual {
		return entropy.InputManual
	}
	return entropy.InputAuto
}
