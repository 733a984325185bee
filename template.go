// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

package apidocs

import (
	"fmt"
	"os"
	"strings"
)

// Template is a loaded markdown template document. Content is immutable after load.
type Template struct {
	// Path is the filesystem path the template was read from.
	Path string
	// Content is the full template text.
	Content string
}

// LoadTemplate reads a markdown template from path.
//
// A missing file maps to ErrTemplateNotFound; every other read failure maps
// to ErrReadTemplate. Both wrap the underlying error for errors.Is checks.
func LoadTemplate(path string) (*Template, error) {
	path = strings.TrimSpace(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, path)
		}

		return nil, fmt.Errorf("%w %q: %w", ErrReadTemplate, path, err)
	}

	return &Template{Path: path, Content: string(data)}, nil
}
