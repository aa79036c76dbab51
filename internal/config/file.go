package config

// This file loads the optional gcfg config file. Layout:
//
//	[inspect]
//	command   = 3dinfo
//	verb-flag = -verb
//	timeout   = 30s
//
//	[output]
//	format = plain
//	color  = auto
//
//	[log]
//	file    = /var/log/subbrik.log
//	verbose = true
//
// Unset variables leave the current Config values alone; verbose can
// only be switched on from the file.

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/gcfg.v1"
)

// ConfigEnv names the environment variable consulted when --config is not given.
const ConfigEnv = "SUBBRIK_CONFIG"

type fileConfig struct {
	Inspect struct {
		Command  string
		VerbFlag string `gcfg:"verb-flag"`
		Timeout  string
	}
	Output struct {
		Format string
		Color  string
	}
	Log struct {
		File    string
		Verbose bool
	}
}

// LoadFile reads the gcfg file at path into cfg.
func LoadFile(cfg *Config, path string) error {
	var fc fileConfig
	if err := gcfg.ReadFileInto(&fc, path); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if err := fc.apply(cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// LoadString parses gcfg text into cfg. Exported for tests and for
// embedding a config without a file.
func LoadString(cfg *Config, text string) error {
	var fc fileConfig
	if err := gcfg.ReadStringInto(&fc, text); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return fc.apply(cfg)
}

func (fc *fileConfig) apply(cfg *Config) error {
	if fc.Inspect.Command != "" {
		cfg.InspectCommand = fc.Inspect.Command
	}
	if fc.Inspect.VerbFlag != "" {
		cfg.InspectVerbFlag = fc.Inspect.VerbFlag
	}
	if fc.Inspect.Timeout != "" {
		d, err := time.ParseDuration(strings.TrimSpace(fc.Inspect.Timeout))
		if err != nil {
			return fmt.Errorf("inspect.timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if fc.Output.Format != "" {
		v := formatValue{&cfg.Format}
		if err := v.Set(fc.Output.Format); err != nil {
			return fmt.Errorf("output.format: %w", err)
		}
	}
	if fc.Output.Color != "" {
		v := colorModeValue{&cfg.ColorMode}
		if err := v.Set(fc.Output.Color); err != nil {
			return fmt.Errorf("output.color: %w", err)
		}
	}
	if fc.Log.File != "" {
		cfg.LogFile = fc.Log.File
	}
	if fc.Log.Verbose {
		cfg.Verbose = true
	}
	return nil
}
