package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"go.opentelemetry.io/otel/attribute"

	"docuscan/internal/data/history"
	"docuscan/internal/engine/scan"
	"docuscan/internal/shared/observability"
	"docuscan/internal/shared/util"
)

// ScanDirectories walks the given roots and returns every Python source file
// that survives the exclude patterns.
func (a *App) ScanDirectories(paths []string, excludeDirs, excludeFiles []string) ([]string, error) {
	var files []string

	dirGlobs := make([]glob.Glob, 0, len(excludeDirs))
	for _, p := range excludeDirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}
		dirGlobs = append(dirGlobs, g)
	}

	fileGlobs := make([]glob.Glob, 0, len(excludeFiles))
	for _, p := range excludeFiles {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude file pattern %q: %w", p, err)
		}
		fileGlobs = append(fileGlobs, g)
	}

	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			base := filepath.Base(path)
			if d.IsDir() {
				for _, g := range dirGlobs {
					if g.Match(base) {
						return filepath.SkipDir
					}
				}
				return nil
			}

			ext := filepath.Ext(base)
			if ext != ".py" && ext != ".pyc" {
				return nil
			}

			for _, g := range fileGlobs {
				if g.Match(base) {
					return nil
				}
			}

			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// DocumentFile scans one source file and merges the result into the
// documented state. The document is named by its dotted module path so that
// same-named files in different packages stay distinct.
func (a *App) DocumentFile(path string) (*scan.ModuleDocument, error) {
	doc, err := scan.Parse(path)
	if err == nil {
		doc.Name = a.moduleNameFor(path)
	}

	a.docMu.Lock()
	if err != nil {
		a.failures[path] = err
		delete(a.documents, path)
	} else {
		a.documents[path] = doc
		delete(a.failures, path)
	}
	a.docMu.Unlock()

	return doc, err
}

// DropFile removes a deleted source file from the documented state.
func (a *App) DropFile(path string) {
	a.docMu.Lock()
	delete(a.documents, path)
	delete(a.failures, path)
	a.docMu.Unlock()
}

// DocumentAll runs a full pass over the configured source trees and replaces
// the documented state with the result.
func (a *App) DocumentAll(ctx context.Context) (Update, error) {
	ctx, span := observability.Tracer.Start(ctx, "document_all")
	defer span.End()
	started := time.Now()

	files, err := a.ScanDirectories(a.Config.SourcePaths, a.Config.Exclude.Dirs, a.Config.Exclude.Files)
	if err != nil {
		return Update{}, err
	}
	span.SetAttributes(attribute.Int("files", len(files)))

	a.docMu.Lock()
	a.documents = make(map[string]*scan.ModuleDocument, len(files))
	a.failures = make(map[string]error)
	a.docMu.Unlock()

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return Update{}, err
		}
		if _, err := a.DocumentFile(path); err != nil {
			slog.Warn("failed to document file", "path", path, "error", err)
		}
	}

	update := a.CurrentUpdate()
	observability.RunDuration.Observe(time.Since(started).Seconds())

	if err := a.RecordRun(update, time.Since(started)); err != nil {
		slog.Warn("failed to record run history", "error", err)
	}

	a.emitUpdate(update)
	return update, nil
}

// RecordRun persists the pass counters when a history store is configured.
func (a *App) RecordRun(update Update, duration time.Duration) error {
	if a.historyStore == nil {
		return nil
	}

	exceptions := 0
	for _, doc := range update.Documents {
		for _, cls := range doc.Classes {
			if cls.IsException {
				exceptions++
			}
		}
	}

	runID, err := a.historyStore.SaveRun(history.Run{
		ProjectKey:     a.projectKey(),
		FileCount:      update.FileCount,
		ImportCount:    update.ImportCount,
		VariableCount:  update.VariableCount,
		FunctionCount:  update.FunctionCount,
		ClassCount:     update.ClassCount,
		ExceptionCount: exceptions,
		ErrorCount:     update.ErrorCount,
		Duration:       duration,
	})
	if err != nil {
		return err
	}
	slog.Debug("recorded run", "run_id", runID, "files", update.FileCount)
	return nil
}

// LoadTrend builds a delta report over the recorded run history.
func (a *App) LoadTrend(window time.Duration) (history.TrendReport, error) {
	if a.historyStore == nil {
		return history.TrendReport{}, fmt.Errorf("history is not enabled")
	}
	runs, err := a.historyStore.LoadRuns(a.projectKey(), time.Time{})
	if err != nil {
		return history.TrendReport{}, err
	}
	return history.BuildTrendReport(runs, window)
}

// moduleNameFor resolves the dotted module name of path against the source
// root that contains it. Files outside every configured root keep their bare
// file name.
func (a *App) moduleNameFor(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	for _, root := range a.Config.SourcePaths {
		rootAbs, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(rootAbs, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		if rel == "." {
			// The root itself is a file.
			break
		}
		return util.ModuleName(rootAbs, abs)
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (a *App) projectKey() string {
	if len(a.Config.SourcePaths) == 0 {
		return "default"
	}
	abs, err := filepath.Abs(a.Config.SourcePaths[0])
	if err != nil {
		return a.Config.SourcePaths[0]
	}
	return abs
}
