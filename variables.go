// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

package apidocs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultVersion is substituted for {{version}} when the caller provides no value.
	DefaultVersion = "1.0.0"
	// DefaultBaseURL is substituted for {{base_url}} when the caller provides no value.
	DefaultBaseURL = "https://api.smart-medical.example.com/v1"
)

// ParseVariablesJSON decodes a JSON object string of placeholder values.
// Non-string values are flattened to their default string form.
func ParseVariablesJSON(raw string) (map[string]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseVariables, err)
	}

	return stringifyVariables(decoded), nil
}

// LoadVariablesFile decodes placeholder values from a YAML or JSON file.
// YAML is a superset of JSON, so one decoder covers both formats.
func LoadVariablesFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrParseVariables, path, err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %w", ErrParseVariables, path, err)
	}

	return stringifyVariables(decoded), nil
}

// MergeVariables layers caller-supplied values over generation defaults.
// The defaults cover generated_date, version and base_url.
func MergeVariables(overrides map[string]string, now time.Time) map[string]string {
	merged := map[string]string{
		"generated_date": now.Format("2006-01-02 15:04:05"),
		"version":        DefaultVersion,
		"base_url":       DefaultBaseURL,
	}

	for name, value := range overrides {
		merged[name] = value
	}

	return merged
}

// SubstituteVariables replaces every {{name}} occurrence with its value.
// Placeholders without a matching value are left verbatim, so substitution
// is idempotent on fully resolved text.
func SubstituteVariables(text string, vars map[string]string) string {
	for name, value := range vars {
		text = strings.ReplaceAll(text, "{{"+name+"}}", value)
	}

	return text
}

// stringifyVariables flattens decoded values into plain strings.
func stringifyVariables(decoded map[string]any) map[string]string {
	if decoded == nil {
		return nil
	}

	vars := make(map[string]string, len(decoded))
	for name, value := range decoded {
		switch typed := value.(type) {
		case string:
			vars[name] = typed
		default:
			vars[name] = fmt.Sprint(typed)
		}
	}

	return vars
}
