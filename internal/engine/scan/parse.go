package scan

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"docuscan/internal/core/errors"
	"docuscan/internal/shared/observability"
)

// Parse reads the source file at path and extracts its structural
// documentation in a single forward pass. The only fatal conditions are an
// unusable designator (INVALID_ARGUMENT), a non-source file type
// (UNSUPPORTED_FILE_TYPE, checked before any scanning) and an unreadable file
// (IO_UNAVAILABLE). Everything else is absorbed: unrecognized lines are
// skipped and malformed elements simply go missing from the result.
func Parse(path string) (*ModuleDocument, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(errors.CodeInvalidArgument, "module designator must be a non-empty path")
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	switch ext {
	case ".py":
	case ".pyc":
		// Compiled modules are documented from their source counterpart.
		path = strings.TrimSuffix(path, "c")
	default:
		err := errors.New(errors.CodeUnsupportedFileType,
			"wrong file type, only python source files (.py) can be documented")
		return nil, errors.AddContext(err, errors.CtxPath, path)
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		err := errors.New(errors.CodeInvalidArgument, "module designator is a directory, expected a file")
		return nil, errors.AddContext(err, errors.CtxPath, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		wrapped := errors.Wrap(err, errors.CodeIOUnavailable, "module could not be read")
		return nil, errors.AddContext(wrapped, errors.CtxPath, path)
	}

	start := time.Now()
	doc := ParseLines(name, strings.Split(string(data), "\n"))
	observability.ParseDuration.WithLabelValues("python").Observe(time.Since(start).Seconds())
	observability.FilesDocumented.Inc()
	return doc, nil
}

// ParseLines runs the structural assembler over an in-memory line sequence.
// The loop mirrors the class member loop at indentation 0, additionally
// capturing the leading module docstring and the version marker. Lists keep
// first-occurrence order; duplicates are kept.
func ParseLines(name string, lines []string) *ModuleDocument {
	doc := &ModuleDocument{Name: name}

	j := 0
	if _, nj, ok := nextLine(lines, 0); ok {
		if desc, nd, found := docstring(lines, nj, 0, false); found {
			doc.Description = desc
			j = nd
		} else {
			// No leading docstring; the first significant line still has to
			// be offered to the header readers.
			j = nj - 1
		}
	}

	for {
		_, nj, ok := nextLine(lines, j)
		if !ok {
			break
		}
		m := matchTop(lines, nj-1, nj, 0)
		switch m.kind {
		case matchImport:
			doc.Modules = append(doc.Modules, m.module)
		case matchVersion:
			doc.Version = m.version
		case matchVariable:
			doc.Variables = append(doc.Variables, m.variable)
		case matchFunction:
			doc.Functions = append(doc.Functions, m.function)
		case matchClass:
			doc.Classes = append(doc.Classes, m.class)
		case matchNone:
			observability.LinesSkipped.Inc()
		}
		j = m.next
	}
	return doc
}
