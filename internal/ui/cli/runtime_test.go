package cli

import (
	"strings"
	"testing"

	"docuscan/internal/core/config"
)

func TestParseOptions_Defaults(t *testing.T) {
	opts, err := parseOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.configPath != defaultConfigPath {
		t.Fatalf("unexpected config path %q", opts.configPath)
	}
	if opts.once || opts.ui || opts.version {
		t.Fatalf("unexpected mode flags: %+v", opts)
	}
	if opts.formatList() != nil {
		t.Fatalf("expected no format override, got %v", opts.formatList())
	}
}

func TestParseOptions_FormatList(t *testing.T) {
	opts, err := parseOptions([]string{"-format", "html, markdown", "src"})
	if err != nil {
		t.Fatal(err)
	}
	formats := opts.formatList()
	if len(formats) != 2 || formats[0] != "html" || formats[1] != "markdown" {
		t.Fatalf("unexpected formats %v", formats)
	}
	if len(opts.args) != 1 || opts.args[0] != "src" {
		t.Fatalf("unexpected args %v", opts.args)
	}
}

func TestApplyOptions_OverridesSourcePaths(t *testing.T) {
	opts := &cliOptions{args: []string{"./override"}}
	cfg := config.Default()

	if err := applyOptions(opts, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.SourcePaths) != 1 || cfg.SourcePaths[0] != "./override" {
		t.Fatalf("unexpected source paths: %v", cfg.SourcePaths)
	}
}

func TestApplyOptions_RejectsUnknownFormat(t *testing.T) {
	opts := &cliOptions{formats: "docx"}
	cfg := config.Default()

	err := applyOptions(opts, cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyOptions_ScreenOutput(t *testing.T) {
	opts := &cliOptions{outDir: "-"}
	cfg := config.Default()

	if err := applyOptions(opts, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Output.Screen {
		t.Fatal("expected screen output mode")
	}

	opts = &cliOptions{outDir: "-", ui: true}
	cfg = config.Default()
	if err := applyOptions(opts, cfg); err == nil {
		t.Fatal("expected -ui and -out - to conflict")
	}
}

func TestApplyOptions_ModeConflicts(t *testing.T) {
	opts := &cliOptions{once: true, watch: true}
	if err := applyOptions(opts, config.Default()); err == nil {
		t.Fatal("expected -once and -watch to conflict")
	}

	opts = &cliOptions{watch: true, outDir: "-"}
	if err := applyOptions(opts, config.Default()); err == nil {
		t.Fatal("expected -watch and -out - to conflict")
	}

	opts = &cliOptions{scaffold: "fetch", watch: true}
	if err := applyOptions(opts, config.Default()); err == nil {
		t.Fatal("expected -scaffold and -watch to conflict")
	}
}

func TestApplyOptions_TrendRequiresHistory(t *testing.T) {
	opts := &cliOptions{trend: true, trendWindow: "24h"}
	cfg := config.Default()

	err := applyOptions(opts, cfg)
	if err == nil {
		t.Fatal("expected error without db.enabled")
	}

	cfg.DB.Enabled = true
	if err := applyOptions(opts, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts.trendWindow = "not-a-duration"
	if err := applyOptions(opts, cfg); err == nil {
		t.Fatal("expected error for bad window")
	}
}
