package config

// DefaultAddresses is the number of receive addresses shown.
const DefaultAddresses = 10

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Network:    Mainnet,
		ScriptType: "bip84",
		Bits:       128,
		Input:      InputAuto,
		Addresses:  DefaultAddresses,
		WatchOnly:  true,
		Log: LogConfig{
			// Logs share the terminal with wallet output.
			Level: "warn",
			JSON:  false,
		},
	}
}
