// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package config parses the node's command-line flags into a runtime Config
// plus the resolved chaincfg.Params for the selected network, following the
// same github.com/jessevdk/go-flags struct-tag convention every dcrd-lineage
// daemon uses for its flat flags/INI config surface. The configfile option
// is recorded in Config but the file itself is not read.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"github.com/varta/vartad/chaincfg"
)

const (
	defaultConfigFilename = "vartad.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
)

// Config holds the command-line options recognized by the node.
// The stake_min_age/modifier_interval overrides exist for test networks
// and local development only — shipping them for mainnet would let a
// misconfigured node silently diverge from consensus.
type Config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir     string `short:"b" long:"datadir" description:"Directory to store data"`
	TestNet     bool   `long:"testnet" description:"Use the test network"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level: trace, debug, info, warn, error, critical"`

	StakeMinAgeOverride      int64 `long:"stakeminageoverride" description:"Override stake_min_age in seconds (testnet only)"`
	ModifierIntervalOverride int64 `long:"modifierintervaloverride" description:"Override modifier_interval in seconds (testnet only)"`
}

func defaultConfig() *Config {
	return &Config{
		ConfigFile: defaultConfigFilename,
		DataDir:    defaultDataDirname,
		DebugLevel: defaultLogLevel,
	}
}

// Load parses os.Args into a Config and resolves the chaincfg.Params for
// the selected network. It is a thin wrapper around LoadArgs for the
// common case; tests call LoadArgs directly with an explicit argument list.
func Load() (*Config, *chaincfg.Params, []string, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs parses args into a Config and resolves the chaincfg.Params for
// the selected network, applying any development-only parameter overrides.
// It returns the leftover non-flag arguments alongside the parsed config.
func LoadArgs(args []string) (*Config, *chaincfg.Params, []string, error) {
	cfg := defaultConfig()
	parser := flags.NewParser(cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, nil, err
	}

	if cfg.ShowVersion {
		fmt.Println("vartad")
		os.Exit(0)
	}

	params := chaincfg.MainNetParams()
	if cfg.TestNet {
		params = chaincfg.TestNetParams()

		if cfg.StakeMinAgeOverride > 0 {
			params.StakeMinAge = cfg.StakeMinAgeOverride
		}
		if cfg.ModifierIntervalOverride > 0 {
			params.ModifierInterval = cfg.ModifierIntervalOverride
		}
	} else if cfg.StakeMinAgeOverride > 0 || cfg.ModifierIntervalOverride > 0 {
		return nil, nil, nil, errors.New("config: consensus parameter overrides are only permitted on testnet")
	}

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)

	return cfg, params, remainingArgs, nil
}

func cleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}
