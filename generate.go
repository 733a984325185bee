// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

package apidocs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// GenerateResult records the outcome of one document generation.
type GenerateResult struct {
	// Success is true when the output file was written.
	Success bool `json:"success"`
	// Message is a human-readable outcome description.
	Message string `json:"message"`
	// OutputPath is the path the document was written to, or targeted.
	OutputPath string `json:"output_path"`
}

// Generate renders the template into its final document and writes it to
// outputPath, creating parent directories as needed and overwriting any
// existing file.
//
// Caller variables are merged over the generation defaults, every resolved
// {{name}} placeholder is replaced, and a generation timestamp comment is
// prepended. Unresolved placeholders stay verbatim. The returned result is
// always populated; the error carries the sentinel for errors.Is checks.
func Generate(log zerolog.Logger, tpl *Template, outputPath string, vars map[string]string) (GenerateResult, error) {
	now := time.Now()
	merged := MergeVariables(vars, now)
	content := SubstituteVariables(tpl.Content, merged)
	content = fmt.Sprintf("<!-- Generated: %s -->\n\n%s", now.Format(time.RFC3339), content)

	parentDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(parentDir, 0o750); err != nil {
		wrapped := fmt.Errorf("%w %q: %w", ErrCreateOutputDir, parentDir, err)
		return failedGenerate(outputPath, wrapped), wrapped
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		wrapped := fmt.Errorf("%w %q: %w", ErrWriteOutput, outputPath, err)
		return failedGenerate(outputPath, wrapped), wrapped
	}

	log.Debug().Str("path", outputPath).Int("bytes", len(content)).Msg("generated documentation written")

	return GenerateResult{
		Success:    true,
		Message:    fmt.Sprintf("documentation generated at %s", outputPath),
		OutputPath: outputPath,
	}, nil
}

// failedGenerate builds the failure result for a generation error.
func failedGenerate(outputPath string, err error) GenerateResult {
	return GenerateResult{
		Success:    false,
		Message:    err.Error(),
		OutputPath: outputPath,
	}
}
