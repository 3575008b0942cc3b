package cmd

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// replConfig is the optional TOML configuration for the REPL, read from
// --config or ~/.azalea.toml.
type replConfig struct {
	Prompt  string   `toml:"prompt"`
	History string   `toml:"history"`
	Preload []string `toml:"preload"`
}

func defaultConfig() replConfig {
	home, _ := os.UserHomeDir()
	return replConfig{
		Prompt:  "az> ",
		History: filepath.Join(home, ".azalea_history"),
	}
}

// loadConfig merges the config file (if any) over the defaults. A missing
// file is not an error; a malformed one is reported and ignored.
func loadConfig(path string) replConfig {
	cfg := defaultConfig()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg
		}
		path = filepath.Join(home, ".azalea.toml")
	}
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		printError("bad config "+path, err)
		return defaultConfig()
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "az> "
	}
	if cfg.History == "" {
		cfg.History = defaultConfig().History
	}
	return cfg
}
