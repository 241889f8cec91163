// Copyright (c) 2025 The Varta developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, params, remaining, err := LoadArgs(nil)
	if err != nil {
		t.Fatalf("LoadArgs(nil): %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("remaining = %v, want none", remaining)
	}
	if cfg.DebugLevel != defaultLogLevel {
		t.Errorf("DebugLevel = %q, want %q", cfg.DebugLevel, defaultLogLevel)
	}
	if params.Name != "mainnet" {
		t.Errorf("params.Name = %q, want mainnet", params.Name)
	}
}

func TestLoadArgsTestNetSelectsTestNetParams(t *testing.T) {
	_, params, _, err := LoadArgs([]string{"--testnet"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if params.Name != "testnet" {
		t.Errorf("params.Name = %q, want testnet", params.Name)
	}
}

func TestLoadArgsOverridesOnlyApplyOnTestNet(t *testing.T) {
	_, params, _, err := LoadArgs([]string{"--testnet", "--stakeminageoverride=42"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if params.StakeMinAge != 42 {
		t.Errorf("StakeMinAge = %d, want 42", params.StakeMinAge)
	}
}

func TestLoadArgsRejectsOverrideOnMainNet(t *testing.T) {
	_, _, _, err := LoadArgs([]string{"--stakeminageoverride=42"})
	if err == nil {
		t.Fatal("expected an error when overriding consensus parameters on mainnet")
	}
}

func TestCleanAndExpandPathEmpty(t *testing.T) {
	if got := cleanAndExpandPath(""); got != "" {
		t.Errorf("cleanAndExpandPath(\"\") = %q, want empty", got)
	}
}

func TestCleanAndExpandPathCleansRelativeDots(t *testing.T) {
	got := cleanAndExpandPath("./data/../data/blocks")
	want := "data/blocks"
	if got != want {
		t.Errorf("cleanAndExpandPath() = %q, want %q", got, want)
	}
}
