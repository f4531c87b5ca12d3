// Package config loads the optional TOML presentation config shared by
// the cmd/ entry points: non-functional preferences only, since the wire
// formats of the codec package are fixed regardless of configuration.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// StateNaming selects how the states of a regex-compiled DFA
// (cmd/fltregex2dfa) are labeled on output. Determinized and minimized
// automata always use subset-concatenation labels and ignore it.
type StateNaming string

const (
	// StateNamingDiscovery labels states q0, q1, ... in the order the
	// regex compiler's worklist discovers them. This is the default and
	// matches the wire format's examples.
	StateNamingDiscovery StateNaming = "discovery"

	// StateNamingPositions labels states after their underlying position
	// sets, e.g. "{1,2,3}", for readers who want to see the subset
	// construction's bookkeeping directly.
	StateNamingPositions StateNaming = "positions"
)

// Config is the optional --config FILE payload. The zero Config is valid
// and behaves like Default, which sets StateNaming to
// StateNamingDiscovery and Pretty to false.
type Config struct {
	StateNaming StateNaming `toml:"state_naming"`
	Pretty      bool        `toml:"pretty"`
}

// Default returns the configuration used when no --config flag is given.
func Default() Config {
	return Config{StateNaming: StateNamingDiscovery}
}

// Load reads and decodes the TOML config at path. A missing file is
// reported as the os.Stat error, returned together with Default's
// values; callers that want "absent file means defaults" can check
// os.IsNotExist on it.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
