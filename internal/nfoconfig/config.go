// Package nfoconfig loads operator-tunable settings for the exercisers
// built around the nfo package (cmd/nfossh; cmd/nfocat takes its
// settings from command-line flags instead). The core nfo
// package itself takes no config dependency; these knobs exist only for
// the surfaces wrapped around it.
package nfoconfig

import (
	"encoding/json"
	"os"
)

// SSHConfig configures the cmd/nfossh door.
type SSHConfig struct {
	ListenAddr   string `json:"listen_addr"`
	HostKeyPath  string `json:"host_key_path"`
	ServedDir    string `json:"served_dir"`
	RescanCron   string `json:"rescan_cron"`
	DebugLogging bool   `json:"debug_logging"`
}

// Config is the root document loaded from a JSON config file.
type Config struct {
	SSH SSHConfig `json:"ssh"`
}

// Default returns the built-in configuration used when no config file
// is supplied.
func Default() Config {
	return Config{
		SSH: SSHConfig{
			ListenAddr:  ":2222",
			HostKeyPath: "nfossh_host_key",
			ServedDir:   ".",
			RescanCron:  "0 * * * *",
		},
	}
}

// Load reads and unmarshals a JSON config file, overlaying it onto
// Default().
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
