package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	coreapp "docuscan/internal/core/app"
	"docuscan/internal/core/config"
	"docuscan/internal/shared/observability"
	"docuscan/internal/ui/report/formats"
)

func Run(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		return 2
	}

	if opts.version {
		fmt.Printf("docuscan v%s\n", versionString)
		return 0
	}

	cleanupLogs := configureLogging(opts.ui, opts.verbose)
	defer cleanupLogs()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	if err := applyOptions(&opts, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	app, err := coreapp.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return 1
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Observability.Enabled && cfg.Observability.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracing(ctx, cfg.Observability.OTLPEndpoint)
		if err != nil {
			slog.Warn("failed to initialize tracing", "error", err)
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					slog.Warn("failed to shut down tracing", "error", err)
				}
			}()
		}
	}

	var obsServer *ObservabilityServer
	if cfg.Observability.Enabled {
		obsServer = NewObservabilityServer(cfg.Observability.Address, coreapp.NewHealthService(app))
		if err := obsServer.Start(ctx); err != nil {
			slog.Error("failed to start observability server", "error", err)
			return 1
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = obsServer.Stop(stopCtx)
		}()
	}

	if opts.trend {
		return printTrend(app, opts.trendWindow)
	}

	if _, err := app.DocumentAll(ctx); err != nil {
		slog.Error("documentation pass failed", "error", err)
		return 1
	}

	if opts.scaffold != "" {
		return printScaffold(app, opts.scaffold)
	}

	if cfg.Output.Screen {
		app.PrintSummary(os.Stdout)
	} else if err := app.GenerateOutputs(); err != nil {
		slog.Error("failed to generate outputs", "error", err)
		return 1
	}

	if !opts.watch && !opts.ui {
		return 0
	}

	if err := app.StartWatcher(ctx); err != nil {
		slog.Error("failed to start watcher", "error", err)
		return 1
	}

	if opts.ui {
		if err := runUI(app); err != nil {
			slog.Error("failed to run UI", "error", err)
			return 1
		}
		return 0
	}

	<-ctx.Done()
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == defaultConfigPath {
		if cfg, exErr := config.Load("./docuscan.example.toml"); exErr == nil {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			// No config anywhere, run with defaults.
			return config.Default(), nil
		}
	}
	return nil, err
}

func applyOptions(opts *cliOptions, cfg *config.Config) error {
	if len(opts.args) > 0 {
		cfg.SourcePaths = opts.args
	}

	if formats := opts.formatList(); len(formats) > 0 {
		for _, f := range formats {
			if !config.KnownFormat(f) {
				return fmt.Errorf("unknown output format %q", f)
			}
		}
		cfg.Output.Formats = formats
	}

	switch opts.outDir {
	case "":
	case "-":
		cfg.Output.Screen = true
	default:
		cfg.Output.Dir = opts.outDir
	}

	if opts.ui && cfg.Output.Screen {
		return fmt.Errorf("-ui and -out - cannot be used together")
	}
	if opts.once && (opts.watch || opts.ui) {
		return fmt.Errorf("-once cannot be combined with -watch or -ui")
	}
	if opts.watch && cfg.Output.Screen {
		return fmt.Errorf("-watch and -out - cannot be used together")
	}
	if opts.scaffold != "" && (opts.watch || opts.ui) {
		return fmt.Errorf("-scaffold cannot be combined with -watch or -ui")
	}
	if opts.trend {
		if !cfg.DB.Enabled {
			return fmt.Errorf("-trend requires db.enabled in the config")
		}
		if _, err := time.ParseDuration(opts.trendWindow); err != nil {
			return fmt.Errorf("invalid -trend-window %q: %w", opts.trendWindow, err)
		}
	}
	return nil
}

// printScaffold writes a docstring skeleton for the named function to stdout
// so it can be pasted into the source.
func printScaffold(app *coreapp.App, name string) int {
	for _, doc := range app.Documents() {
		skeleton, err := formats.ScaffoldForFunction(doc, name)
		if err != nil {
			continue
		}
		if skeleton == "" {
			fmt.Fprintf(os.Stderr, "function %q already has a docstring\n", name)
			return 0
		}
		fmt.Print(skeleton)
		return 0
	}
	fmt.Fprintf(os.Stderr, "function %q not found in the documented modules\n", name)
	return 1
}

func printTrend(app *coreapp.App, window string) int {
	d, err := time.ParseDuration(window)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	report, err := app.LoadTrend(d)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	fmt.Printf("Trend: runs=%d since=%s until=%s window=%s\n",
		report.RunCount,
		report.Since.Format(time.RFC3339),
		report.Until.Format(time.RFC3339),
		report.Window,
	)
	for _, point := range report.Points {
		fmt.Printf("  %s files=%d (%+d) functions=%d (%+d) classes=%d (%+d) errors=%d\n",
			point.Timestamp.Format(time.RFC3339),
			point.FileCount, point.DeltaFiles,
			point.FunctionCount, point.DeltaFunctions,
			point.ClassCount, point.DeltaClasses,
			point.ErrorCount,
		)
	}
	return 0
}

func configureLogging(ui, verbose bool) func() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	output := os.Stdout
	cleanup := func() {}

	if ui {
		// In UI mode, stdout logs would corrupt the TUI.
		logPath := resolveLogPath()
		if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to create log dir for %s: %v\n", logPath, err)
		} else if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); err == nil {
			output = f
			cleanup = func() { _ = f.Close() }
		} else {
			fmt.Fprintf(os.Stderr, "warning: failed to open log file %s: %v\n", logPath, err)
		}
	}

	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return cleanup
}

func resolveLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "docuscan", "docuscan.log")
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return filepath.Join(home, ".local", "state", "docuscan", "docuscan.log")
	}

	return "docuscan.log"
}
