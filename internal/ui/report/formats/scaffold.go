package formats

import (
	"fmt"
	"strings"

	"docuscan/internal/core/errors"
	"docuscan/internal/engine/scan"
)

// FunctionScaffold builds a docstring skeleton for a function that has none:
// an Args block with one line per argument and keyword, a Returns block and a
// Raises block listing the exceptions raised in the body. The skeleton is
// indented for a body at indent. Functions that already carry a docstring
// produce an empty string.
func FunctionScaffold(fn scan.FunctionDoc, indent int) string {
	if fn.Docstring != "" {
		return ""
	}
	pad := strings.Repeat(" ", indent+4)

	var b strings.Builder
	b.WriteString(pad + `"""` + "\n\n")
	b.WriteString("\n" + pad + "Args:")
	for _, arg := range fn.Args {
		if arg == "self" || arg == "cls" {
			continue
		}
		fmt.Fprintf(&b, "\n%s    %s (): .", pad, arg)
	}
	for i, kw := range fn.Keywords {
		fmt.Fprintf(&b, "\n%s    %s (, optional): . Defaults to %s.", pad, kw, fn.Defaults[i])
	}
	b.WriteString("\n")
	b.WriteString("\n" + pad + "Returns:")
	b.WriteString("\n")
	b.WriteString("\n" + pad + "Raises:")
	for _, exc := range fn.Exceptions {
		fmt.Fprintf(&b, "\n%s    %s", pad, exc)
	}
	b.WriteString("\n" + pad + `"""` + "\n")
	return b.String()
}

// ScaffoldForFunction looks the named function or method up in doc and
// returns its docstring skeleton. Methods are indented one level deeper than
// top-level functions.
func ScaffoldForFunction(doc *scan.ModuleDocument, name string) (string, error) {
	for _, fn := range doc.Functions {
		if fn.Name == name {
			return FunctionScaffold(fn, 0), nil
		}
	}
	for _, cls := range doc.Classes {
		for _, fn := range cls.Functions {
			if fn.Name == name {
				return FunctionScaffold(fn, 4), nil
			}
		}
	}
	err := errors.New(errors.CodeNotFound, fmt.Sprintf("function %q not found in module %s", name, doc.Name))
	return "", err
}
