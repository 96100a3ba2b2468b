package formats

import (
	"fmt"
	"strings"
	"time"

	"docuscan/internal/engine/scan"
)

type MarkdownOptions struct {
	GeneratedAt     time.Time
	Generator       string
	TableOfContents bool
}

// MarkdownGenerator renders a module document as a markdown page with a
// front-matter header and one section per extracted list.
type MarkdownGenerator struct{}

func NewMarkdownGenerator() *MarkdownGenerator {
	return &MarkdownGenerator{}
}

func (g *MarkdownGenerator) Generate(doc *scan.ModuleDocument, opts MarkdownOptions) string {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now().UTC()
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: Module documentation\n")
	b.WriteString("module: " + doc.Name + "\n")
	b.WriteString("generated_at: " + opts.GeneratedAt.UTC().Format(time.RFC3339) + "\n")
	b.WriteString("generator: " + nonEmpty(opts.Generator, "unknown") + "\n")
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# `%s`\n\n", doc.Name)

	if opts.TableOfContents {
		b.WriteString("## Table of Contents\n")
		b.WriteString("- [Overview](#overview)\n")
		b.WriteString("- [Dependent Modules](#dependent-modules)\n")
		b.WriteString("- [Variables](#variables)\n")
		b.WriteString("- [Functions](#functions)\n")
		b.WriteString("- [Classes](#classes)\n\n")
	}

	b.WriteString("## Overview\n")
	b.WriteString("| Field | Value |\n")
	b.WriteString("| --- | --- |\n")
	fmt.Fprintf(&b, "| Version | %s |\n", nonEmpty(doc.Version, "n/a"))
	fmt.Fprintf(&b, "| Imports | %d |\n", len(doc.Modules))
	fmt.Fprintf(&b, "| Variables | %d |\n", len(doc.Variables))
	fmt.Fprintf(&b, "| Functions | %d |\n", len(doc.Functions))
	fmt.Fprintf(&b, "| Classes | %d |\n\n", len(doc.Classes))

	if doc.Description != "" {
		b.WriteString(doc.Description + "\n\n")
	}

	if len(doc.Modules) > 0 {
		b.WriteString("## Dependent Modules\n")
		for _, m := range doc.Modules {
			b.WriteString("- `" + m + "`\n")
		}
		b.WriteString("\n")
	}

	if len(doc.Variables) > 0 {
		b.WriteString("## Variables\n")
		b.WriteString("| Name | Value |\n")
		b.WriteString("| --- | --- |\n")
		for _, v := range doc.Variables {
			fmt.Fprintf(&b, "| `%s` | `%s` |\n", v.Name, v.Value)
		}
		b.WriteString("\n")
	}

	if len(doc.Functions) > 0 {
		b.WriteString("## Functions\n")
		for _, fn := range doc.Functions {
			writeFunctionMarkdown(&b, fn, signature(fn), "###")
		}
	}

	if len(doc.Classes) > 0 {
		b.WriteString("## Classes\n")
		for _, cls := range doc.Classes {
			badge := ""
			if cls.IsException {
				badge = " *(exception)*"
			}
			fmt.Fprintf(&b, "### `%s(%s)`%s\n", cls.Name, cls.Inheritance, badge)
			if cls.Docstring != "" {
				b.WriteString("\n" + cls.Docstring + "\n")
			}
			b.WriteString("\n")
			for _, fn := range cls.Functions {
				writeFunctionMarkdown(&b, fn, methodSignature(fn), "####")
			}
		}
	}

	return b.String()
}

func writeFunctionMarkdown(b *strings.Builder, fn scan.FunctionDoc, sig, heading string) {
	fmt.Fprintf(b, "%s `%s(%s)`\n", heading, fn.Name, sig)
	if fn.Docstring != "" {
		b.WriteString("\n" + fn.Docstring + "\n")
	}
	if len(fn.Exceptions) > 0 {
		fmt.Fprintf(b, "\nRaises: `%s`\n", strings.Join(fn.Exceptions, "`, `"))
	}
	b.WriteString("\n")
}
