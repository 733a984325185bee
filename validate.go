// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

package apidocs

import (
	"fmt"
	"regexp"
	"strings"
)

// requiredSection describes one section the template must contain.
// A section is satisfied when a header line matches any of its names.
type requiredSection struct {
	Name    string
	Aliases []string
}

// requiredSections lists sections every API documentation template must carry,
// in report order. "Request/Response Examples" and "Examples" both satisfy
// the examples requirement.
var requiredSections = []requiredSection{
	{Name: "Overview"},
	{Name: "Authentication"},
	{Name: "Endpoints"},
	{Name: "Request/Response Examples", Aliases: []string{"Examples"}},
	{Name: "Error Codes"},
}

var (
	// codeFencePattern matches an opening fence tagged with a supported example language.
	codeFencePattern = regexp.MustCompile("(?mi)^```(http|json|javascript|python)[ \t]*$")
	// httpMethodPattern matches an HTTP method token as a whole word.
	httpMethodPattern = regexp.MustCompile(`\b(GET|POST|PUT|DELETE|PATCH|HEAD|OPTIONS)\b`)
)

// ValidationResult holds the outcome of one template structure check.
type ValidationResult struct {
	// Valid is true iff Issues is empty.
	Valid bool `json:"valid"`
	// SectionsFound lists required section names in the order they were encountered.
	SectionsFound []string `json:"sections_found"`
	// HasCodeExamples reports presence of at least one tagged code fence.
	HasCodeExamples bool `json:"has_code_examples"`
	// HasHTTPMethods reports presence of at least one HTTP method token.
	HasHTTPMethods bool `json:"has_http_methods"`
	// Issues lists one human-readable entry per missing required element.
	Issues []string `json:"issues"`
}

// ValidateStructure checks template text for required sections, tagged code
// fences and HTTP method tokens. Issues are collected exhaustively, never
// fail-fast, so one run reports the full list.
//
// Matching is purely textual: a section counts as present when some line
// starts with one or more '#' characters followed by the section name,
// case-insensitive. Unconventional header formatting can produce false
// negatives; that is an accepted limit of this checker.
func ValidateStructure(tpl *Template) ValidationResult {
	result := ValidationResult{
		SectionsFound: []string{},
		Issues:        []string{},
	}

	headers := headerLines(tpl.Content)
	for _, section := range requiredSections {
		if sectionHeaderIndex(headers, section) < 0 {
			result.Issues = append(result.Issues, fmt.Sprintf("Missing required section: %s", section.Name))
			continue
		}

		result.SectionsFound = append(result.SectionsFound, section.Name)
	}

	// Keep found sections ordered as encountered in the document.
	sortSectionsByPosition(headers, result.SectionsFound)

	result.HasCodeExamples = codeFencePattern.MatchString(tpl.Content)
	if !result.HasCodeExamples {
		result.Issues = append(result.Issues, "No code examples found")
	}

	result.HasHTTPMethods = httpMethodPattern.MatchString(tpl.Content)
	if !result.HasHTTPMethods {
		result.Issues = append(result.Issues, "No HTTP methods found in endpoints")
	}

	result.Valid = len(result.Issues) == 0
	return result
}

// headerLine is one markdown header with its level and trimmed text.
type headerLine struct {
	Level int
	Text  string
}

// headerLines extracts all markdown header lines from text in document order.
func headerLines(text string) []headerLine {
	var headers []headerLine
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			continue
		}

		level := 0
		for level < len(line) && line[level] == '#' {
			level++
		}

		title := strings.TrimSpace(line[level:])
		if title == "" {
			continue
		}

		headers = append(headers, headerLine{Level: level, Text: title})
	}

	return headers
}

// sectionHeaderIndex returns the index of the first header satisfying section,
// or -1 when absent. A header satisfies a section when its text starts with
// the section name or one of its aliases, case-insensitive.
func sectionHeaderIndex(headers []headerLine, section requiredSection) int {
	names := append([]string{section.Name}, section.Aliases...)
	for i, header := range headers {
		for _, name := range names {
			if hasTitlePrefixFold(header.Text, name) {
				return i
			}
		}
	}

	return -1
}

// hasTitlePrefixFold reports whether title starts with name, case-insensitive,
// at a word boundary.
func hasTitlePrefixFold(title, name string) bool {
	if len(title) < len(name) {
		return false
	}

	if !strings.EqualFold(title[:len(name)], name) {
		return false
	}

	rest := title[len(name):]
	return rest == "" || strings.HasPrefix(rest, " ")
}

// sortSectionsByPosition reorders found section names by where their headers
// appear in the document.
func sortSectionsByPosition(headers []headerLine, found []string) {
	position := func(name string) int {
		for _, section := range requiredSections {
			if section.Name != name {
				continue
			}

			return sectionHeaderIndex(headers, section)
		}

		return -1
	}

	for i := 1; i < len(found); i++ {
		for j := i; j > 0 && position(found[j-1]) > position(found[j]); j-- {
			found[j-1], found[j] = found[j], found[j-1]
		}
	}
}
