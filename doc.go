// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Smart Medical System
// Source: github.com/smc1040937705/smart-medical-system

/*
Package apidocs validates and generates API reference documentation from
markdown templates for the Smart Medical System API.

The package is a single-pass pipeline: load a template, check its structure,
optionally substitute {{name}} placeholders and write the generated document,
extract supporting documents and a machine-readable specification, and write
a JSON validation report.

Load and validate a template:

	tpl, err := apidocs.LoadTemplate("docs/templates/api-docs-template.md")
	if err != nil {
		return err
	}

	result := apidocs.ValidateStructure(tpl)
	if !result.Valid {
		fmt.Println(strings.Join(result.Issues, "\n"))
	}

Generate the final document with placeholder substitution:

	vars, err := apidocs.ParseVariablesJSON(`{"version": "2.1.0"}`)
	if err != nil {
		return err
	}

	generated, err := apidocs.Generate(log, tpl, "docs/api/endpoints.md", vars)
	if err != nil {
		return err
	}

	fmt.Println(generated.Message)

Extract supporting documents and the machine-readable specification:

	files, err := apidocs.WriteSupportingDocs(log, tpl, "docs/api")
	if err != nil {
		return err
	}

	spec := apidocs.BuildAPISpec(tpl, time.Now())
	specPath, err := apidocs.WriteAPISpec(log, spec, "docs/api")
	if err != nil {
		return err
	}

	fmt.Println(len(files), specPath)

Write the validation report:

	report := apidocs.BuildReport(tpl.Path, result, &generated, files, time.Now())
	if err := apidocs.WriteReport(log, report, "docs/validation-report.json"); err != nil {
		return err
	}

	fmt.Print(apidocs.RenderSummary(report))
*/
package apidocs
