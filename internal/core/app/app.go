package app

import (
	"fmt"
	"log/slog"
	"sync"

	"docuscan/internal/core/config"
	"docuscan/internal/core/watcher"
	"docuscan/internal/data/history"
	"docuscan/internal/engine/scan"
	"docuscan/internal/shared/util"
)

// Update is pushed to the UI after every documentation pass.
type Update struct {
	FileCount     int
	ImportCount   int
	VariableCount int
	FunctionCount int
	ClassCount    int
	ErrorCount    int
	Documents     []*scan.ModuleDocument
}

// App owns the documented state of the configured source trees and drives
// scan, render and watch passes over them.
type App struct {
	Config *config.Config

	documents map[string]*scan.ModuleDocument
	failures  map[string]error
	docMu     sync.RWMutex

	historyStore  *history.Store
	activeWatcher *watcher.Watcher
	limiter       *util.Limiter

	updateMu sync.RWMutex
	onUpdate func(Update)
}

func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	a := &App{
		Config:    cfg,
		documents: make(map[string]*scan.ModuleDocument),
		failures:  make(map[string]error),
		limiter:   util.NewLimiter(cfg.Watch.RateLimit, cfg.Watch.Burst),
	}

	if cfg.DB.Enabled {
		store, err := history.Open(cfg.DB.Path)
		if err != nil {
			if history.IsCorruptError(err) {
				return nil, fmt.Errorf("history database %q is corrupt: %w", cfg.DB.Path, err)
			}
			return nil, err
		}
		a.historyStore = store
	}

	return a, nil
}

func (a *App) Close() error {
	if a.activeWatcher != nil {
		if err := a.activeWatcher.Close(); err != nil {
			slog.Warn("failed to close watcher", "error", err)
		}
		a.activeWatcher = nil
	}
	if a.historyStore != nil {
		err := a.historyStore.Close()
		a.historyStore = nil
		return err
	}
	return nil
}

func (a *App) SetUpdateHandler(handler func(Update)) {
	a.updateMu.Lock()
	defer a.updateMu.Unlock()
	a.onUpdate = handler
}

func (a *App) emitUpdate(update Update) {
	a.updateMu.RLock()
	handler := a.onUpdate
	a.updateMu.RUnlock()
	if handler != nil {
		handler(update)
	}
}

// Documents returns the current module documents ordered by file path.
func (a *App) Documents() []*scan.ModuleDocument {
	a.docMu.RLock()
	defer a.docMu.RUnlock()

	docs := make([]*scan.ModuleDocument, 0, len(a.documents))
	for _, path := range util.SortedStringKeys(a.documents) {
		docs = append(docs, a.documents[path])
	}
	return docs
}

// Failures returns scan errors keyed by file path from the latest pass.
func (a *App) Failures() map[string]error {
	a.docMu.RLock()
	defer a.docMu.RUnlock()

	out := make(map[string]error, len(a.failures))
	for path, err := range a.failures {
		out[path] = err
	}
	return out
}

func (a *App) CurrentUpdate() Update {
	a.docMu.RLock()
	defer a.docMu.RUnlock()
	return a.currentUpdateLocked()
}

// currentUpdateLocked requires docMu to be held.
func (a *App) currentUpdateLocked() Update {
	update := Update{
		FileCount:  len(a.documents),
		ErrorCount: len(a.failures),
	}
	for _, path := range util.SortedStringKeys(a.documents) {
		doc := a.documents[path]
		update.ImportCount += len(doc.Modules)
		update.VariableCount += len(doc.Variables)
		update.FunctionCount += len(doc.Functions)
		update.ClassCount += len(doc.Classes)
		update.Documents = append(update.Documents, doc)
	}
	return update
}
