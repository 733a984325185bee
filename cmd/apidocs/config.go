// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// defaultConfigFile is loaded when present and no --config flag is given.
	defaultConfigFile = "apidocs.yaml"
	// envPrefix selects environment variables overriding file configuration.
	envPrefix = "APIDOCS_"
)

// runConfig is the effective configuration of one run after layering
// defaults, the optional config file, APIDOCS_* environment variables and
// explicit CLI flags, in that order of precedence.
type runConfig struct {
	Template      string            `koanf:"template"`
	Output        string            `koanf:"output"`
	Report        string            `koanf:"report"`
	DocsDir       string            `koanf:"docs_dir"`
	ValidateOnly  bool              `koanf:"validate_only"`
	Verbose       bool              `koanf:"verbose"`
	Variables     map[string]string `koanf:"variables"`
	VariablesFile string            `koanf:"variables_file"`

	// VariablesJSON is the raw --variables flag value; it never comes from
	// the config file.
	VariablesJSON string
}

// loadRunConfig layers configuration sources and applies CLI flag overrides.
func loadRunConfig(options *cliOptions) (runConfig, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"template": "docs/templates/api-docs-template.md",
		"output":   "docs/api/endpoints.md",
		"report":   "docs/validation-report.json",
		"docs_dir": "docs/api",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return runConfig{}, fmt.Errorf("load default configuration: %w", err)
	}

	if err := loadConfigFile(k, options.ConfigPath); err != nil {
		return runConfig{}, err
	}

	if err := k.Load(envprovider.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return runConfig{}, fmt.Errorf("load environment configuration: %w", err)
	}

	var cfg runConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return runConfig{}, fmt.Errorf("unmarshal configuration: %w", err)
	}

	applyFlagOverrides(&cfg, options)
	return cfg, nil
}

// loadConfigFile loads the YAML config file. An explicitly selected file must
// load; the default file is optional and skipped when absent.
func loadConfigFile(k *koanf.Koanf, path string) error {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = defaultConfigFile
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load config file %q: %w", path, err)
	}

	return nil
}

// applyFlagOverrides gives explicit CLI flags the highest precedence.
func applyFlagOverrides(cfg *runConfig, options *cliOptions) {
	if options.Template != "" {
		cfg.Template = options.Template
	}

	if options.Output != "" {
		cfg.Output = options.Output
	}

	if options.Report != "" {
		cfg.Report = options.Report
	}

	if options.DocsDir != "" {
		cfg.DocsDir = options.DocsDir
	}

	if options.VariablesFile != "" {
		cfg.VariablesFile = options.VariablesFile
	}

	cfg.ValidateOnly = cfg.ValidateOnly || options.ValidateOnly
	cfg.Verbose = cfg.Verbose || options.Verbose
	cfg.VariablesJSON = options.Variables
}
