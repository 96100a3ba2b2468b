package app

import (
	"context"
	"log/slog"
	"path/filepath"

	"docuscan/internal/core/watcher"
)

func (a *App) StartWatcher(ctx context.Context) error {
	w, err := watcher.NewWatcher(
		a.Config.Watch.Debounce,
		a.Config.Exclude.Dirs,
		a.Config.Exclude.Files,
		func(paths []string) { a.HandleChanges(ctx, paths) },
	)
	if err != nil {
		return err
	}
	a.activeWatcher = w
	return w.Watch(a.Config.SourcePaths)
}

// HandleChanges rescans the changed files and regenerates the output pages.
// The limiter drops bursts that arrive faster than the configured rate.
func (a *App) HandleChanges(ctx context.Context, paths []string) {
	if ctx.Err() != nil {
		return
	}
	if !a.limiter.Allow(1) {
		slog.Debug("change batch dropped by rate limiter", "paths", len(paths))
		return
	}

	for _, path := range paths {
		if !fileExists(path) {
			a.DropFile(path)
			slog.Info("source file removed", "path", path)
			continue
		}
		if _, err := a.DocumentFile(path); err != nil {
			slog.Warn("failed to document changed file", "path", filepath.Clean(path), "error", err)
		}
	}

	if err := a.GenerateOutputs(); err != nil {
		slog.Error("failed to regenerate outputs", "error", err)
	}

	a.emitUpdate(a.CurrentUpdate())
}
