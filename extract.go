// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

package apidocs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// supportingDoc describes one subsection extracted into its own document.
type supportingDoc struct {
	// FileName is the output file name inside the docs directory.
	FileName string
	// Title is the fixed top-level header prepended to the extracted text.
	Title string
	// StartMarker opens the subsection in the template.
	StartMarker string
	// EndMarkers are candidate markers closing the subsection; the nearest wins.
	EndMarkers []string
}

// supportingDocs lists the subsections copied out of the template.
var supportingDocs = []supportingDoc{
	{
		FileName:    "error-codes.md",
		Title:       "# Error Codes Reference",
		StartMarker: "### HTTP Status Codes",
		EndMarkers:  []string{"### Error Response Format"},
	},
	{
		FileName:    "authentication.md",
		Title:       "# Authentication Guide",
		StartMarker: "## Authentication",
		EndMarkers:  []string{"## Endpoints"},
	},
}

// sectionSpan copies the text between startMarker and the nearest end boundary.
//
// Contract: the span starts right after the startMarker line. The end is the
// nearest of (a) any endMarker occurring after the start, or (b) the next
// header of the same or higher level as the startMarker. Without either the
// span runs to end of input. An absent startMarker yields an empty span.
// The result is trimmed of surrounding whitespace.
func sectionSpan(text, startMarker string, endMarkers ...string) string {
	start := strings.Index(text, startMarker)
	if start < 0 {
		return ""
	}

	body := text[start+len(startMarker):]
	end := len(body)

	for _, marker := range endMarkers {
		if idx := strings.Index(body, marker); idx >= 0 && idx < end {
			end = idx
		}
	}

	if idx := nextHeaderBoundary(body, markerLevel(startMarker)); idx >= 0 && idx < end {
		end = idx
	}

	return strings.TrimSpace(body[:end])
}

// markerLevel counts leading '#' characters of a header marker.
func markerLevel(marker string) int {
	level := 0
	for level < len(marker) && marker[level] == '#' {
		level++
	}

	return level
}

// nextHeaderBoundary returns the byte offset of the first header line at
// maxLevel or higher (fewer '#'), or -1 when none exists.
func nextHeaderBoundary(body string, maxLevel int) int {
	if maxLevel <= 0 {
		return -1
	}

	offset := 0
	for _, line := range strings.SplitAfter(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if level := markerLevel(trimmed); level > 0 && level <= maxLevel {
			return offset
		}

		offset += len(line)
	}

	return -1
}

// ExtractSection builds one standalone supporting document from the template.
// When the start marker is absent the document holds only its title.
func ExtractSection(tpl *Template, doc supportingDoc) string {
	body := sectionSpan(tpl.Content, doc.StartMarker, doc.EndMarkers...)
	if body == "" {
		return doc.Title + "\n"
	}

	return fmt.Sprintf("%s\n\n%s\n", doc.Title, body)
}

// WriteSupportingDocs extracts the known subsections into separate markdown
// files under dir and returns the written paths.
func WriteSupportingDocs(log zerolog.Logger, tpl *Template, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCreateOutputDir, dir, err)
	}

	written := make([]string, 0, len(supportingDocs))
	for _, doc := range supportingDocs {
		path := filepath.Join(dir, doc.FileName)
		content := ExtractSection(tpl, doc)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return written, fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
		}

		log.Debug().Str("path", path).Msg("supporting document written")
		written = append(written, path)
	}

	return written, nil
}
