package formats

import (
	"strings"
	"testing"
	"time"

	"docuscan/internal/core/errors"
	"docuscan/internal/engine/scan"
)

func sampleDocument() *scan.ModuleDocument {
	return &scan.ModuleDocument{
		Name:        "sample",
		Description: "Utilities for handling samples.",
		Version:     "1.2.0",
		Modules:     []string{"os", "sys", "other"},
		Variables: []scan.VariableDoc{
			{Name: "DEBUG", Value: "False"},
		},
		Functions: []scan.FunctionDoc{
			{
				Name:       "load",
				Args:       []string{"path"},
				Keywords:   []string{"strict"},
				Defaults:   []string{"True"},
				Docstring:  "Load a sample from disk.",
				Exceptions: []string{"IOError"},
			},
		},
		Classes: []scan.ClassDoc{
			{
				Name:        "Sample",
				Inheritance: "object",
				Docstring:   "A single sample.",
				Functions: []scan.FunctionDoc{
					{Name: "reset", Args: []string{"self"}},
				},
			},
			{
				Name:        "SampleError",
				Inheritance: "Exception",
				IsException: true,
			},
		},
	}
}

func TestTextGenerator(t *testing.T) {
	out := NewTextGenerator().Generate(sampleDocument())

	for _, want := range []string{
		"NAME",
		"sample",
		"Utilities for handling samples.",
		"1.2.0",
		"os",
		"DEBUG = False",
		"load(path, strict=True)",
		"raises: IOError",
		"Sample(object)",
		"SampleError(Exception)",
		"[exception]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestTextGenerator_MethodDropsSelf(t *testing.T) {
	out := NewTextGenerator().Generate(sampleDocument())

	if !strings.Contains(out, "reset()") {
		t.Errorf("expected method signature without self, got:\n%s", out)
	}
	if strings.Contains(out, "reset(self)") {
		t.Errorf("self should not appear in a method signature:\n%s", out)
	}
}

func TestHTMLGenerator(t *testing.T) {
	doc := sampleDocument()
	out := NewHTMLGenerator().Generate(doc, HTMLOptions{
		Title:      "sample docs",
		Stylesheet: "docu.css",
		SiblingPages: map[string]string{
			"other": "other.html",
		},
	})

	for _, want := range []string{
		"<title>sample docs</title>",
		`href="docu.css"`,
		`href="other.html"`,
		"(path, strict=True)",
		"SampleError",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html output missing %q", want)
		}
	}
}

func TestHTMLGenerator_EscapesContent(t *testing.T) {
	doc := &scan.ModuleDocument{
		Name:        "m",
		Description: "uses <b> tags & entities",
	}
	out := NewHTMLGenerator().Generate(doc, HTMLOptions{Title: "m"})

	if strings.Contains(out, "<b> tags") {
		t.Errorf("description was not escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;b&gt; tags &amp; entities") {
		t.Errorf("expected escaped description in output")
	}
}

func TestMarkdownGenerator(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out := NewMarkdownGenerator().Generate(sampleDocument(), MarkdownOptions{
		GeneratedAt:     at,
		Generator:       "docuscan",
		TableOfContents: true,
	})

	for _, want := range []string{
		"---\n",
		"module: sample",
		"generated_at: 2026-03-01T12:00:00Z",
		"generator: docuscan",
		"# `sample`",
		"## Table of Contents",
		"| Version | 1.2.0 |",
		"### `load(path, strict=True)`",
		"Raises: `IOError`",
		"### `SampleError(Exception)` *(exception)*",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestMarkdownGenerator_EmptySectionsOmitted(t *testing.T) {
	out := NewMarkdownGenerator().Generate(&scan.ModuleDocument{Name: "empty"}, MarkdownOptions{})

	for _, absent := range []string{"## Dependent Modules", "## Variables", "## Functions", "## Classes"} {
		if strings.Contains(out, absent) {
			t.Errorf("markdown output should omit %q for an empty document", absent)
		}
	}
	if !strings.Contains(out, "| Version | n/a |") {
		t.Errorf("expected a plain placeholder for the missing version:\n%s", out)
	}
}

func TestFunctionScaffold(t *testing.T) {
	fn := scan.FunctionDoc{
		Name:       "fetch",
		Args:       []string{"self", "url"},
		Keywords:   []string{"timeout"},
		Defaults:   []string{"30"},
		Exceptions: []string{"ValueError"},
	}
	out := FunctionScaffold(fn, 0)

	for _, want := range []string{
		"    \"\"\"",
		"    Args:",
		"        url (): .",
		"        timeout (, optional): . Defaults to 30.",
		"    Returns:",
		"    Raises:",
		"        ValueError",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("scaffold missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "self") {
		t.Errorf("self should not be scaffolded:\n%s", out)
	}
}

func TestFunctionScaffold_KeepsExistingDocstring(t *testing.T) {
	fn := scan.FunctionDoc{Name: "load", Docstring: "Already documented."}

	if out := FunctionScaffold(fn, 0); out != "" {
		t.Errorf("expected no scaffold for a documented function, got:\n%s", out)
	}
}

func TestScaffoldForFunction(t *testing.T) {
	doc := sampleDocument()

	out, err := ScaffoldForFunction(doc, "reset")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "        \"\"\"") {
		t.Errorf("method scaffold should be indented one level deeper:\n%s", out)
	}

	_, err = ScaffoldForFunction(doc, "unknown")
	if !errors.IsCode(err, errors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
