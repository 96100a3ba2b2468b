package app

import (
	"context"
	"fmt"
	"time"
)

type HealthStatus struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components map[string]string `json:"components"`
}

type HealthService struct {
	app *App
}

func NewHealthService(app *App) *HealthService {
	return &HealthService{app: app}
}

func (s *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:     "up",
		Timestamp:  time.Now().UTC(),
		Components: make(map[string]string),
	}

	update := s.app.CurrentUpdate()
	status.Components["documents"] = fmt.Sprintf("ok (%d files, %d functions, %d classes)",
		update.FileCount, update.FunctionCount, update.ClassCount)
	if update.ErrorCount > 0 {
		status.Status = "degraded"
		status.Components["documents"] = fmt.Sprintf("%d files failed to scan", update.ErrorCount)
	}

	if s.app.historyStore != nil {
		status.Components["history"] = "ok"
	} else if s.app.Config.DB.Enabled {
		status.Status = "degraded"
		status.Components["history"] = "missing but enabled in config"
	}

	if s.app.activeWatcher != nil {
		status.Components["watcher"] = "ok"
	}

	return status
}
