// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

// apidocs validates and generates Smart Medical System API documentation
// from a markdown template.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	apidocs "github.com/smc1040937705/smart-medical-system"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/smc1040937705/smart-medical-system"
	_buildTime string
)

// cliOptions describes apidocs CLI flags.
//
// Path flags default to empty so the configuration layer can tell an explicit
// flag apart from an omitted one; effective defaults live in defaultConfig.
type cliOptions struct {
	Template      string `short:"t" long:"template" description:"Input template path"`
	Output        string `short:"o" long:"output" description:"Generated documentation path"`
	Report        string `short:"r" long:"report" description:"Validation report path"`
	DocsDir       string `short:"d" long:"docs-dir" description:"Directory for supporting docs and the api specification"`
	ValidateOnly  bool   `short:"v" long:"validate-only" description:"Validate the template without generating output"`
	Variables     string `long:"variables" description:"JSON object of placeholder values"`
	VariablesFile string `long:"variables-file" description:"YAML or JSON file of placeholder values"`
	ConfigPath    string `short:"c" long:"config" description:"Configuration file path"`
	Verbose       bool   `long:"verbose" description:"Enable debug diagnostics"`
	PrintVersion  bool   `short:"V" long:"version" description:"Print version information"`
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "apidocs"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	options := &cliOptions{}
	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.LongDescription = strings.TrimSpace(fmt.Sprintf(`
Validate an API documentation template and generate reference documentation.

Examples:
> $ %s --validate-only
> $ %s -t docs/templates/api-docs-template.md -o docs/api/endpoints.md
> $ %s --variables '{"version": "2.1.0"}' --verbose
`, runner.programName, runner.programName, runner.programName))

	if _, err := parser.ParseArgs(args); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	if options.PrintVersion {
		runner.printVersionInfo()
		return 0
	}

	cfg, err := loadRunConfig(options)
	if err != nil {
		writeCLIError(runner.stderr, err)
		return 1
	}

	return runner.execute(cfg)
}

// execute sequences one full run: load, validate, generate, extract, report.
func (runner *cliRunner) execute(cfg runConfig) int {
	log := runner.newLogger(cfg.Verbose)

	vars, err := runner.resolveVariables(cfg)
	if err != nil {
		writeCLIError(runner.stderr, err)
		return 1
	}

	tpl, err := apidocs.LoadTemplate(cfg.Template)
	if err != nil {
		writeCLIError(runner.stderr, err)
		return 1
	}

	log.Debug().Str("template", tpl.Path).Int("bytes", len(tpl.Content)).Msg("template loaded")

	validation := apidocs.ValidateStructure(tpl)
	log.Debug().
		Strs("sections", validation.SectionsFound).
		Int("issues", len(validation.Issues)).
		Msg("structure validated")

	var (
		generation *apidocs.GenerateResult
		files      []string
		runFailed  bool
	)

	if !cfg.ValidateOnly && validation.Valid {
		result, genErr := apidocs.Generate(log, tpl, cfg.Output, vars)
		generation = &result
		if genErr != nil {
			log.Error().Err(genErr).Msg("generation failed")
			runFailed = true
		} else {
			files = append(files, result.OutputPath)

			supporting, docsErr := apidocs.WriteSupportingDocs(log, tpl, cfg.DocsDir)
			files = append(files, supporting...)
			if docsErr != nil {
				log.Error().Err(docsErr).Msg("supporting docs extraction failed")
				runFailed = true
			}

			specPath, specErr := apidocs.WriteAPISpec(log, apidocs.BuildAPISpec(tpl, time.Now()), cfg.DocsDir)
			if specErr != nil {
				log.Error().Err(specErr).Msg("api specification writing failed")
				runFailed = true
			} else {
				files = append(files, specPath)
			}
		}
	}

	report := apidocs.BuildReport(tpl.Path, validation, generation, files, time.Now())
	if err := apidocs.WriteReport(log, report, cfg.Report); err != nil {
		writeCLIError(runner.stderr, err)
		return 1
	}

	if _, err := io.WriteString(runner.stdout, apidocs.RenderSummary(report)); err != nil {
		writeCLIError(runner.stderr, fmt.Errorf("write summary to stdout: %w", err))
		return 1
	}

	if !validation.Valid || runFailed {
		return 1
	}

	return 0
}

// resolveVariables merges placeholder values: config file values first, then
// --variables-file, then the --variables JSON object on top.
func (runner *cliRunner) resolveVariables(cfg runConfig) (map[string]string, error) {
	vars := map[string]string{}
	for name, value := range cfg.Variables {
		vars[name] = value
	}

	if cfg.VariablesFile != "" {
		fromFile, err := apidocs.LoadVariablesFile(cfg.VariablesFile)
		if err != nil {
			return nil, err
		}

		for name, value := range fromFile {
			vars[name] = value
		}
	}

	fromJSON, err := apidocs.ParseVariablesJSON(cfg.VariablesJSON)
	if err != nil {
		return nil, err
	}

	for name, value := range fromJSON {
		vars[name] = value
	}

	return vars, nil
}

// newLogger builds the diagnostic logger writing to stderr. The console
// summary stays on stdout; log events are diagnostics only.
func (runner *cliRunner) newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        runner.stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}

func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
