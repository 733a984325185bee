// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

package apidocs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestParseEndpointsTwoEndpointsOneExample(t *testing.T) {
	t.Parallel()

	text := "#### GET /patients list patients\n" +
		fence + "http\n" +
		"GET /patients\n" +
		fence + "\n" +
		"#### POST /patients create\n"

	endpoints := ParseEndpoints(text)
	if len(endpoints) != 2 {
		t.Fatalf("endpoints = %+v, want two", endpoints)
	}

	first := endpoints[0]
	if first.Method != "GET" || first.Path != "/patients" || first.Description != "list patients" {
		t.Fatalf("first endpoint = %+v", first)
	}

	if len(first.Examples) != 1 {
		t.Fatalf("first endpoint examples = %+v, want one", first.Examples)
	}

	if first.Examples[0].Type != "http" || first.Examples[0].Content != "GET /patients" {
		t.Fatalf("example = %+v", first.Examples[0])
	}

	second := endpoints[1]
	if second.Method != "POST" || second.Path != "/patients" || second.Description != "create" {
		t.Fatalf("second endpoint = %+v", second)
	}

	if len(second.Examples) != 0 {
		t.Fatalf("second endpoint examples = %+v, want none", second.Examples)
	}
}

func TestParseEndpointsHeaderForceClosesOpenFenceScope(t *testing.T) {
	t.Parallel()

	// The example belongs to the endpoint it appears under; the next ####
	// header always opens a fresh record.
	text := strings.Join([]string{
		"#### DELETE /patients/{id} remove",
		fence + "http",
		"DELETE /patients/42",
		fence,
		"#### PATCH /patients/{id}",
		fence + "http",
		"PATCH /patients/42",
		fence,
	}, "\n")

	endpoints := ParseEndpoints(text)
	if len(endpoints) != 2 {
		t.Fatalf("endpoints = %+v, want two", endpoints)
	}

	if len(endpoints[0].Examples) != 1 || len(endpoints[1].Examples) != 1 {
		t.Fatalf("examples split wrong: %+v", endpoints)
	}

	if endpoints[1].Description != "" {
		t.Fatalf("description = %q, want empty", endpoints[1].Description)
	}
}

func TestParseEndpointsFencesOutsideEndpointsIgnored(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"## Authentication",
		fence + "http",
		"GET /token",
		fence,
		"#### GET /patients",
	}, "\n")

	endpoints := ParseEndpoints(text)
	if len(endpoints) != 1 {
		t.Fatalf("endpoints = %+v, want one", endpoints)
	}

	if len(endpoints[0].Examples) != 0 {
		t.Fatalf("pre-endpoint fence must not attach: %+v", endpoints[0].Examples)
	}
}

func TestParseEndpointsUnclosedFenceRunsToEndOfInput(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"#### GET /patients",
		fence + "http",
		"GET /patients",
		"Accept: application/json",
	}, "\n")

	endpoints := ParseEndpoints(text)
	if len(endpoints) != 1 || len(endpoints[0].Examples) != 1 {
		t.Fatalf("endpoints = %+v", endpoints)
	}

	assertContains(t, endpoints[0].Examples[0].Content, "Accept: application/json")
}

func TestBuildAPISpecFromTemplate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	spec := BuildAPISpec(validTemplate(), now)

	if spec.APIName != APIName || spec.Version != DefaultVersion || spec.BaseURL != DefaultBaseURL {
		t.Fatalf("spec identity = %+v", spec)
	}

	if spec.GeneratedAt != "2026-08-26T12:00:00Z" {
		t.Fatalf("generated_at = %q", spec.GeneratedAt)
	}

	if spec.Authentication != "All requests require a Bearer token in the Authorization header." {
		t.Fatalf("authentication = %q", spec.Authentication)
	}

	if len(spec.Endpoints) != 2 {
		t.Fatalf("endpoints = %+v, want two", spec.Endpoints)
	}

	if len(spec.ErrorCodes) != 2 {
		t.Fatalf("error codes = %+v, want two", spec.ErrorCodes)
	}

	if spec.ErrorCodes[0].Code != "400" || spec.ErrorCodes[0].Meaning != "Bad Request" {
		t.Fatalf("first error code = %+v", spec.ErrorCodes[0])
	}

	if spec.ErrorCodes[1].Description != "Missing or invalid token" {
		t.Fatalf("second error code = %+v", spec.ErrorCodes[1])
	}
}

func TestParseErrorCodesSkipsHeaderAndSeparatorRows(t *testing.T) {
	t.Parallel()

	section := strings.Join([]string{
		"| Code | Meaning | Description |",
		"|------|---------|-------------|",
		"| 404 | Not Found | No such patient |",
		"not a table row",
	}, "\n")

	codes := parseErrorCodes(section)
	if len(codes) != 1 {
		t.Fatalf("codes = %+v, want one", codes)
	}

	if codes[0].Code != "404" || codes[0].Meaning != "Not Found" || codes[0].Description != "No such patient" {
		t.Fatalf("code = %+v", codes[0])
	}
}

func TestWriteAPISpec(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "docs", "api")
	spec := BuildAPISpec(validTemplate(), time.Now())

	path, err := WriteAPISpec(zerolog.Nop(), spec, dir)
	if err != nil {
		t.Fatalf("WriteAPISpec: %v", err)
	}

	if filepath.Base(path) != "api-specification.json" {
		t.Fatalf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read spec: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("spec is not valid JSON: %v", err)
	}

	for _, field := range []string{"api_name", "version", "base_url", "authentication", "endpoints", "error_codes", "generated_at"} {
		if _, ok := decoded[field]; !ok {
			t.Fatalf("spec JSON missing field %q: %s", field, data)
		}
	}
}
