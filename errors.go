// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

package apidocs

import "errors"

var (
	// ErrTemplateNotFound is returned when the template file does not exist.
	ErrTemplateNotFound = errors.New("template file not found")
	// ErrReadTemplate is returned when template file loading fails for any other reason.
	ErrReadTemplate = errors.New("read template file")
	// ErrCreateOutputDir is returned when output directory creation fails.
	ErrCreateOutputDir = errors.New("create output directory")
	// ErrWriteOutput is returned when generated document writing fails.
	ErrWriteOutput = errors.New("write output file")
	// ErrParseVariables is returned when placeholder variable input cannot be decoded.
	ErrParseVariables = errors.New("parse variables")
	// ErrEncodeSpec is returned when API specification JSON encoding fails.
	ErrEncodeSpec = errors.New("encode api specification")
	// ErrWriteReport is returned when validation report writing fails.
	ErrWriteReport = errors.New("write validation report")
)
