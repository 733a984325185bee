// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

package apidocs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// APIName identifies the documented API in the machine-readable specification.
const APIName = "Smart Medical System API"

// endpointHeaderPattern matches "#### METHOD /path [description]" lines.
var endpointHeaderPattern = regexp.MustCompile(`^####\s+(GET|POST|PUT|DELETE|PATCH|HEAD|OPTIONS)\s+(\S+)\s*(.*)$`)

// ExampleBlock is one fenced example captured inside an endpoint section.
type ExampleBlock struct {
	// Type is the fence language tag, currently always "http".
	Type string `json:"type"`
	// Content is the verbatim fence body without the fence lines.
	Content string `json:"content"`
}

// Endpoint is one documented API operation.
type Endpoint struct {
	Method      string         `json:"method"`
	Path        string         `json:"path"`
	Description string         `json:"description"`
	Examples    []ExampleBlock `json:"examples"`
}

// ErrorCode is one row of the error codes table.
type ErrorCode struct {
	Code        string `json:"code"`
	Meaning     string `json:"meaning"`
	Description string `json:"description"`
}

// APISpec is the coarse machine-readable API specification derived from the template.
type APISpec struct {
	APIName        string      `json:"api_name"`
	Version        string      `json:"version"`
	BaseURL        string      `json:"base_url"`
	Authentication string      `json:"authentication"`
	Endpoints      []Endpoint  `json:"endpoints"`
	ErrorCodes     []ErrorCode `json:"error_codes"`
	GeneratedAt    string      `json:"generated_at"`
}

// BuildAPISpec scans the template and assembles the machine-readable
// specification: endpoint records from "#### METHOD /path" headers with
// their http examples, error codes from the status table, and the first
// line of the authentication section.
func BuildAPISpec(tpl *Template, now time.Time) APISpec {
	return APISpec{
		APIName:        APIName,
		Version:        DefaultVersion,
		BaseURL:        DefaultBaseURL,
		Authentication: authenticationSummary(tpl.Content),
		Endpoints:      ParseEndpoints(tpl.Content),
		ErrorCodes:     parseErrorCodes(sectionSpan(tpl.Content, "## Error Codes")),
		GeneratedAt:    now.Format(time.RFC3339),
	}
}

// WriteAPISpec serializes spec as indented JSON into dir/api-specification.json.
func WriteAPISpec(log zerolog.Logger, spec APISpec, dir string) (string, error) {
	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeSpec, err)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrCreateOutputDir, dir, err)
	}

	path := filepath.Join(dir, "api-specification.json")
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}

	log.Debug().Str("path", path).Int("endpoints", len(spec.Endpoints)).Msg("api specification written")
	return path, nil
}

// ParseEndpoints scans template text line by line and collects endpoint records.
//
// A "#### METHOD /path [description]" line opens a new endpoint, force-closing
// the previous one; an example never spans two endpoints. Inside an endpoint's
// scope a fence opened with ```http is captured verbatim up to its closing
// fence as one example. End of input closes the last open endpoint.
func ParseEndpoints(text string) []Endpoint {
	var (
		endpoints []Endpoint
		current   *Endpoint
	)

	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")

		if match := endpointHeaderPattern.FindStringSubmatch(line); match != nil {
			if current != nil {
				endpoints = append(endpoints, *current)
			}

			current = &Endpoint{
				Method:      match[1],
				Path:        match[2],
				Description: strings.TrimSpace(match[3]),
				Examples:    []ExampleBlock{},
			}

			continue
		}

		if current == nil || strings.TrimSpace(line) != "```http" {
			continue
		}

		var body []string
		for i++; i < len(lines); i++ {
			fenceLine := strings.TrimRight(lines[i], "\r")
			if strings.TrimSpace(fenceLine) == "```" {
				break
			}

			body = append(body, fenceLine)
		}

		current.Examples = append(current.Examples, ExampleBlock{
			Type:    "http",
			Content: strings.Join(body, "\n"),
		})
	}

	if current != nil {
		endpoints = append(endpoints, *current)
	}

	return endpoints
}

// authenticationSummary returns the first non-empty line of the
// authentication section, or an empty string when the section is absent.
func authenticationSummary(text string) string {
	for _, line := range strings.Split(sectionSpan(text, "## Authentication"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return line
		}
	}

	return ""
}

// parseErrorCodes collects rows of a markdown table whose first cell is a
// numeric status code.
func parseErrorCodes(section string) []ErrorCode {
	codes := []ErrorCode{}
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "|") {
			continue
		}

		cells := splitTableRow(line)
		if len(cells) < 2 || !isNumeric(cells[0]) {
			continue
		}

		code := ErrorCode{Code: cells[0], Meaning: cells[1]}
		if len(cells) > 2 {
			code.Description = cells[2]
		}

		codes = append(codes, code)
	}

	return codes
}

// splitTableRow splits one "| a | b | c |" line into trimmed cell values.
func splitTableRow(line string) []string {
	parts := strings.Split(strings.Trim(line, "|"), "|")
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, strings.TrimSpace(part))
	}

	return cells
}

// isNumeric reports whether value is a non-empty digit string.
func isNumeric(value string) bool {
	if value == "" {
		return false
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
