package formats

import (
	"strings"

	"docuscan/internal/engine/scan"
)

// TextGenerator renders a module document as the classic pydoc-like plain
// layout: upper-case section headers, four-space indentation and a "|" gutter
// for nested docstrings.
type TextGenerator struct{}

func NewTextGenerator() *TextGenerator {
	return &TextGenerator{}
}

func (g *TextGenerator) Generate(doc *scan.ModuleDocument) string {
	var b strings.Builder

	b.WriteString("NAME\n")
	b.WriteString("    " + doc.Name + "\n")

	if doc.Description != "" {
		b.WriteString("\nDESCRIPTION\n")
		for _, line := range strings.Split(doc.Description, "\n") {
			b.WriteString("    " + line + "\n")
		}
	}

	if doc.Version != "" {
		b.WriteString("\nVERSION\n")
		b.WriteString("    " + doc.Version + "\n")
	}

	if len(doc.Modules) > 0 {
		b.WriteString("\nMODULES\n")
		for _, m := range doc.Modules {
			b.WriteString("    " + m + "\n")
		}
	}

	if len(doc.Variables) > 0 {
		b.WriteString("\nVARIABLES\n")
		for _, v := range doc.Variables {
			b.WriteString("    " + v.Name + " = " + v.Value + "\n")
		}
	}

	if len(doc.Functions) > 0 {
		b.WriteString("\nFUNCTIONS\n")
		for _, fn := range doc.Functions {
			writeFunctionText(&b, fn, "    ")
		}
	}

	if len(doc.Classes) > 0 {
		b.WriteString("\nCLASSES\n")
		for _, cls := range doc.Classes {
			writeClassText(&b, cls)
		}
	}

	return b.String()
}

func writeFunctionText(b *strings.Builder, fn scan.FunctionDoc, indent string) {
	b.WriteString("\n" + indent + fn.Name + "(" + signature(fn) + ")\n")
	for _, line := range strings.Split(fn.Docstring, "\n") {
		if strings.TrimSpace(line) == "" && fn.Docstring == "" {
			continue
		}
		b.WriteString(indent + " |  " + line + "\n")
	}
	if len(fn.Exceptions) > 0 {
		b.WriteString(indent + " |  raises: " + strings.Join(fn.Exceptions, ", ") + "\n")
	}
}

func writeClassText(b *strings.Builder, cls scan.ClassDoc) {
	header := cls.Name + "(" + cls.Inheritance + ")"
	if cls.IsException {
		header += "  [exception]"
	}
	b.WriteString("\n    " + header + "\n")
	for _, line := range strings.Split(cls.Docstring, "\n") {
		if strings.TrimSpace(line) == "" && cls.Docstring == "" {
			continue
		}
		b.WriteString("     |  " + line + "\n")
	}

	if len(cls.Modules) > 0 {
		b.WriteString("     |  MODULES\n")
		for _, m := range cls.Modules {
			b.WriteString("     |      " + m + "\n")
		}
	}
	if len(cls.Variables) > 0 {
		b.WriteString("     |  VARIABLES\n")
		for _, v := range cls.Variables {
			b.WriteString("     |      " + v.Name + "\n")
		}
	}
	if len(cls.Functions) > 0 {
		b.WriteString("     |  FUNCTIONS\n")
		for _, fn := range cls.Functions {
			b.WriteString("     |      " + fn.Name + "(" + methodSignature(fn) + ")\n")
			for _, line := range strings.Split(fn.Docstring, "\n") {
				if strings.TrimSpace(line) == "" && fn.Docstring == "" {
					continue
				}
				b.WriteString("     |       |  " + line + "\n")
			}
		}
	}
}
