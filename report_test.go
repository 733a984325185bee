// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

package apidocs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestBuildReportSummarizesRun(t *testing.T) {
	t.Parallel()

	validation := ValidateStructure(validTemplate())
	generation := &GenerateResult{Success: true, Message: "ok", OutputPath: "docs/api/endpoints.md"}
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	report := BuildReport("docs/templates/api-docs-template.md", validation, generation, []string{"docs/api/endpoints.md"}, now)

	if report.Timestamp != "2026-08-26T12:00:00Z" {
		t.Fatalf("timestamp = %q", report.Timestamp)
	}

	if report.Summary.SectionsFound != 5 || report.Summary.TotalIssues != 0 {
		t.Fatalf("summary = %+v", report.Summary)
	}

	if !report.Summary.ValidationPassed || !report.Summary.DocsGenerated {
		t.Fatalf("summary = %+v, want both booleans true", report.Summary)
	}
}

func TestBuildReportValidateOnlyRun(t *testing.T) {
	t.Parallel()

	validation := ValidateStructure(templateWithout("Error Codes"))
	report := BuildReport("docs/templates/partial.md", validation, nil, nil, time.Now())

	if report.Summary.DocsGenerated {
		t.Fatal("no generation happened, DocsGenerated must be false")
	}

	if report.Summary.TotalIssues != 1 || report.Summary.ValidationPassed {
		t.Fatalf("summary = %+v", report.Summary)
	}

	if report.GeneratedFiles == nil || len(report.GeneratedFiles) != 0 {
		t.Fatalf("generated files = %#v, want empty non-nil slice", report.GeneratedFiles)
	}
}

func TestWriteReportCreatesParentDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docs", "reports", "validation-report.json")
	report := BuildReport("tpl.md", ValidateStructure(validTemplate()), nil, nil, time.Now())

	if err := WriteReport(zerolog.Nop(), report, path); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}

	for _, field := range []string{"timestamp", "validation_results", "summary"} {
		if _, ok := decoded[field]; !ok {
			t.Fatalf("report JSON missing field %q: %s", field, data)
		}
	}
}

func TestWriteReportFailure(t *testing.T) {
	t.Parallel()

	// Report path nested under a regular file cannot be created.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	report := BuildReport("tpl.md", ValidationResult{}, nil, nil, time.Now())
	err := WriteReport(zerolog.Nop(), report, filepath.Join(blocker, "report.json"))
	if !errors.Is(err, ErrWriteReport) {
		t.Fatalf("err = %v, want ErrWriteReport", err)
	}
}

func TestRenderSummaryPassAndFail(t *testing.T) {
	t.Parallel()

	passing := BuildReport("tpl.md", ValidateStructure(validTemplate()), nil, nil, time.Now())
	passText := RenderSummary(passing)
	assertContains(t, passText, "Result:         PASS")
	assertContains(t, passText, "Sections found: 5/5")
	assertNotContains(t, passText, "Issues")

	failing := BuildReport("tpl.md", ValidateStructure(templateWithout("Error Codes")), nil, nil, time.Now())
	failText := RenderSummary(failing)
	assertContains(t, failText, "Result:         FAIL")
	assertContains(t, failText, "Missing required section: Error Codes")
}
