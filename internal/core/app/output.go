package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"docuscan/internal/engine/scan"
	"docuscan/internal/shared/observability"
	"docuscan/internal/shared/util"
	"docuscan/internal/ui/report/formats"
)

const outputVersion = "docuscan"

// defaultStylesheet is written next to HTML pages when the configured
// stylesheet does not exist yet.
const defaultStylesheet = `body { font-family: sans-serif; margin: 2em; }
.back-title { border-bottom: 2px solid #444; }
.frame { border: 1px solid #ccc; margin: 1em 0; padding: 0 1em 1em; }
.frame-title { background: #eee; margin: 0 -1em; padding: 0.3em 1em; }
.exception { color: #a00; }
`

// GenerateOutputs renders every documented module in each configured format
// and writes the pages under the output directory.
func (a *App) GenerateOutputs() error {
	docs := a.Documents()
	if len(docs) == 0 {
		return nil
	}

	siblings := make(map[string]string, len(docs))
	for _, doc := range docs {
		siblings[doc.Name] = pageName(doc.Name, ".html")
	}

	for _, format := range a.Config.Output.Formats {
		for _, doc := range docs {
			content, ext, err := a.renderDocument(doc, format, siblings)
			if err != nil {
				return err
			}
			target := filepath.Join(a.Config.Output.Dir, pageName(doc.Name, ext))
			if err := util.WriteStringWithDirs(target, content, 0o644); err != nil {
				return fmt.Errorf("write %s output %q: %w", format, target, err)
			}
			observability.DocumentsWritten.WithLabelValues(format).Inc()
		}

		if format == "html" {
			if err := a.ensureStylesheet(); err != nil {
				return err
			}
		}
	}

	return nil
}

func (a *App) renderDocument(doc *scan.ModuleDocument, format string, siblings map[string]string) (content, ext string, err error) {
	switch format {
	case "text":
		return formats.NewTextGenerator().Generate(doc), ".txt", nil
	case "html":
		return formats.NewHTMLGenerator().Generate(doc, formats.HTMLOptions{
			Stylesheet:   a.Config.Output.Stylesheet,
			SiblingPages: siblings,
			Generator:    outputVersion,
		}), ".html", nil
	case "markdown":
		return formats.NewMarkdownGenerator().Generate(doc, formats.MarkdownOptions{
			GeneratedAt:     time.Now().UTC(),
			Generator:       outputVersion,
			TableOfContents: true,
		}), ".md", nil
	default:
		return "", "", fmt.Errorf("unknown output format %q", format)
	}
}

func (a *App) ensureStylesheet() error {
	name := a.Config.Output.Stylesheet
	if name == "" || strings.Contains(name, "://") {
		return nil
	}
	target := filepath.Join(a.Config.Output.Dir, name)
	if fileExists(target) {
		return nil
	}
	if err := util.WriteStringWithDirs(target, defaultStylesheet, 0o644); err != nil {
		return fmt.Errorf("write stylesheet %q: %w", target, err)
	}
	return nil
}

// PrintSummary writes the text rendering of every document to w, used for
// the -format text -out - screen mode.
func (a *App) PrintSummary(w io.Writer) {
	gen := formats.NewTextGenerator()
	for i, doc := range a.Documents() {
		if i > 0 {
			fmt.Fprintln(w, strings.Repeat("=", 70))
		}
		fmt.Fprint(w, gen.Generate(doc))
	}
}

// pageName flattens a dotted module name into a single file name.
func pageName(module, ext string) string {
	return strings.ReplaceAll(module, "/", "_") + ext
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
