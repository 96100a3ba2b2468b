package formats

import (
	"fmt"
	"html"
	"strings"

	"docuscan/internal/engine/scan"
)

// HTMLOptions controls the standalone page rendered for one module.
// SiblingPages maps module names to relative page paths so dependent modules
// documented in the same run become links.
type HTMLOptions struct {
	Title        string
	Stylesheet   string
	SiblingPages map[string]string
	Generator    string
}

type HTMLGenerator struct{}

func NewHTMLGenerator() *HTMLGenerator {
	return &HTMLGenerator{}
}

func (g *HTMLGenerator) Generate(doc *scan.ModuleDocument, opts HTMLOptions) string {
	title := nonEmpty(opts.Title, "Module documentation: "+doc.Name)
	stylesheet := nonEmpty(opts.Stylesheet, "docu.css")

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n")
	b.WriteString(" <meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, " <title>%s</title>\n", html.EscapeString(title))
	fmt.Fprintf(&b, " <link href=%q rel=\"stylesheet\" type=\"text/css\">\n", stylesheet)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, " <div class=\"back-title\"><h1 class=\"title\">%s</h1></div>\n", html.EscapeString(title))
	b.WriteString(" <div class=\"main\">\n")

	g.frame(&b, "nameframe", "module name", "<div class=\"frame-content\">"+html.EscapeString(doc.Name)+"</div>")

	if doc.Version != "" {
		g.frame(&b, "versionframe", "version", "<div class=\"frame-content\">"+html.EscapeString(doc.Version)+"</div>")
	}
	if doc.Description != "" {
		g.frame(&b, "descriptionframe", "description",
			"<pre class=\"frame-content\">"+html.EscapeString(doc.Description)+"</pre>")
	}

	if len(doc.Modules) > 0 {
		var list strings.Builder
		list.WriteString("<ul class=\"modules\">\n")
		for _, m := range doc.Modules {
			if page, ok := opts.SiblingPages[m]; ok {
				fmt.Fprintf(&list, "   <li class=\"modules\"><a href=%q class=\"module\">%s</a></li>\n",
					page, html.EscapeString(m))
			} else {
				fmt.Fprintf(&list, "   <li class=\"modules\">%s</li>\n", html.EscapeString(m))
			}
		}
		list.WriteString("  </ul>")
		g.frame(&b, "modulesframe", "dependent modules", list.String())
	}

	if len(doc.Variables) > 0 {
		var list strings.Builder
		list.WriteString("<ul class=\"variables\">\n")
		for _, v := range doc.Variables {
			fmt.Fprintf(&list, "   <li class=\"variables\">%s</li>\n", html.EscapeString(v.Name))
		}
		list.WriteString("  </ul>")
		g.frame(&b, "variablesframe", "variables", list.String())
	}

	if len(doc.Functions) > 0 {
		var list strings.Builder
		list.WriteString("<ul class=\"functions\">\n")
		for _, fn := range doc.Functions {
			writeFunctionHTML(&list, fn, signature(fn))
		}
		list.WriteString("  </ul>")
		g.frame(&b, "functionsframe", "functions", list.String())
	}

	if len(doc.Classes) > 0 {
		var list strings.Builder
		list.WriteString("<ul class=\"classes\">\n")
		for _, cls := range doc.Classes {
			writeClassHTML(&list, cls)
		}
		list.WriteString("  </ul>")
		g.frame(&b, "classesframe", "classes", list.String())
	}

	if opts.Generator != "" {
		fmt.Fprintf(&b, " <div class=\"credits\">This page was made with %s</div>\n", html.EscapeString(opts.Generator))
	}
	b.WriteString(" </div>\n</body>\n</html>\n")
	return b.String()
}

func (g *HTMLGenerator) frame(b *strings.Builder, id, title, content string) {
	fmt.Fprintf(b, " <div class=\"frame\" id=%q>\n", id)
	fmt.Fprintf(b, "  <h4 class=\"frame-title\">%s</h4>\n", html.EscapeString(title))
	b.WriteString("  " + content + "\n")
	b.WriteString(" </div>\n")
}

func writeFunctionHTML(b *strings.Builder, fn scan.FunctionDoc, sig string) {
	b.WriteString("   <li class=\"functions\"><div class=\"function\">\n")
	fmt.Fprintf(b, "    <div class=\"function-name\"><span class=\"function-name\">%s</span>(%s)</div>\n",
		html.EscapeString(fn.Name), html.EscapeString(sig))
	fmt.Fprintf(b, "    <pre class=\"function-docstring\">%s</pre>\n", html.EscapeString(fn.Docstring))
	b.WriteString("   </div></li>\n")
}

func writeClassHTML(b *strings.Builder, cls scan.ClassDoc) {
	css := "class"
	if cls.IsException {
		css = "class exception"
	}
	fmt.Fprintf(b, "   <li class=\"classes\"><div class=%q>\n", css)
	fmt.Fprintf(b, "    <div class=\"class-name\"><span class=\"class-name\">%s</span>(<span class=\"class-arg\">%s</span>)</div>\n",
		html.EscapeString(cls.Name), html.EscapeString(cls.Inheritance))
	fmt.Fprintf(b, "    <pre class=\"class-docstring\">%s</pre>\n", html.EscapeString(cls.Docstring))

	if len(cls.Modules) > 0 {
		b.WriteString("    <h5 class=\"class-title\">modules</h5>\n    <ul class=\"class-modules\">\n")
		for _, m := range cls.Modules {
			fmt.Fprintf(b, "     <li class=\"class-modules\">%s</li>\n", html.EscapeString(m))
		}
		b.WriteString("    </ul>\n")
	}
	if len(cls.Variables) > 0 {
		b.WriteString("    <h5 class=\"class-title\">variables</h5>\n    <ul class=\"class-variables\">\n")
		for _, v := range cls.Variables {
			fmt.Fprintf(b, "     <li class=\"class-variables\">%s</li>\n", html.EscapeString(v.Name))
		}
		b.WriteString("    </ul>\n")
	}
	if len(cls.Functions) > 0 {
		b.WriteString("    <h5 class=\"class-title\">methods</h5>\n    <ul class=\"class-functions\">\n")
		for _, fn := range cls.Functions {
			writeFunctionHTML(b, fn, methodSignature(fn))
		}
		b.WriteString("    </ul>\n")
	}
	b.WriteString("   </div></li>\n")
}
