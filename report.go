// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

package apidocs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ReportSummary aggregates counts and pass/fail booleans for one run.
type ReportSummary struct {
	SectionsFound    int  `json:"sections_found"`
	TotalIssues      int  `json:"total_issues"`
	ValidationPassed bool `json:"validation_passed"`
	DocsGenerated    bool `json:"docs_generated"`
}

// ValidationReport is the durable machine-consumable artifact of one run.
// It is written once and never mutated afterwards.
type ValidationReport struct {
	Timestamp      string           `json:"timestamp"`
	TemplatePath   string           `json:"template_path"`
	Validation     ValidationResult `json:"validation_results"`
	Generation     *GenerateResult  `json:"generation,omitempty"`
	GeneratedFiles []string         `json:"generated_files"`
	Summary        ReportSummary    `json:"summary"`
}

// BuildReport assembles the report record from the run's results.
// generation is nil on validate-only runs and on runs stopped by issues.
func BuildReport(templatePath string, validation ValidationResult, generation *GenerateResult, files []string, now time.Time) ValidationReport {
	if files == nil {
		files = []string{}
	}

	return ValidationReport{
		Timestamp:      now.Format(time.RFC3339),
		TemplatePath:   templatePath,
		Validation:     validation,
		Generation:     generation,
		GeneratedFiles: files,
		Summary: ReportSummary{
			SectionsFound:    len(validation.SectionsFound),
			TotalIssues:      len(validation.Issues),
			ValidationPassed: validation.Valid,
			DocsGenerated:    generation != nil && generation.Success,
		},
	}
}

// WriteReport serializes the report as indented JSON to path, creating
// parent directories as needed.
func WriteReport(log zerolog.Logger, report ValidationReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	parentDir := filepath.Dir(path)
	if err := os.MkdirAll(parentDir, 0o750); err != nil {
		return fmt.Errorf("%w: %w %q: %w", ErrWriteReport, ErrCreateOutputDir, parentDir, err)
	}

	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteReport, path, err)
	}

	log.Debug().Str("path", path).Msg("validation report written")
	return nil
}

// RenderSummary formats the human-readable console summary for one run.
// The summary is advisory; the JSON report is the durable artifact.
func RenderSummary(report ValidationReport) string {
	var out strings.Builder

	out.WriteString("API Documentation Validation\n")
	out.WriteString("=============================\n")
	fmt.Fprintf(&out, "Template:       %s\n", report.TemplatePath)
	fmt.Fprintf(&out, "Sections found: %d/%d\n", report.Summary.SectionsFound, len(requiredSections))

	for _, name := range report.Validation.SectionsFound {
		fmt.Fprintf(&out, "  + %s\n", name)
	}

	if report.Summary.TotalIssues > 0 {
		fmt.Fprintf(&out, "Issues (%d):\n", report.Summary.TotalIssues)
		for _, issue := range report.Validation.Issues {
			fmt.Fprintf(&out, "  - %s\n", issue)
		}
	}

	if report.Generation != nil {
		fmt.Fprintf(&out, "Generation:     %s\n", report.Generation.Message)
	}

	for _, file := range report.GeneratedFiles {
		fmt.Fprintf(&out, "  > %s\n", file)
	}

	if report.Summary.ValidationPassed {
		out.WriteString("Result:         PASS\n")
	} else {
		out.WriteString("Result:         FAIL\n")
	}

	return out.String()
}
