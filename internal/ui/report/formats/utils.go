package formats

import (
	"strings"

	"docuscan/internal/engine/scan"
)

// signature joins positional arguments and keyword=default pairs the way the
// source declared them: "a, b, c=1, d=(2, 3)".
func signature(fn scan.FunctionDoc) string {
	parts := make([]string, 0, len(fn.Args)+len(fn.Keywords))
	parts = append(parts, fn.Args...)
	for i, kw := range fn.Keywords {
		parts = append(parts, kw+"="+fn.Defaults[i])
	}
	return strings.Join(parts, ", ")
}

// methodSignature is signature with the receiver argument dropped, which is
// how class methods read in rendered documentation.
func methodSignature(fn scan.FunctionDoc) string {
	parts := make([]string, 0, len(fn.Args)+len(fn.Keywords))
	for _, a := range fn.Args {
		if a == "self" || a == "cls" {
			continue
		}
		parts = append(parts, a)
	}
	for i, kw := range fn.Keywords {
		parts = append(parts, kw+"="+fn.Defaults[i])
	}
	return strings.Join(parts, ", ")
}

func nonEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
