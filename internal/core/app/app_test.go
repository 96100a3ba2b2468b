package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docuscan/internal/core/config"
)

const moduleSource = `"""Sample module."""

__version__ = '1.0'

import os

LIMIT = 10

def load(path, strict=True):
    """Load things."""
    if strict:
        raise ValueError('path required')
    return path

class Loader:
    """Loads things."""

    def run(self):
        pass

class LoaderError(Exception):
    pass
`

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func testApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestScanDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"pkg/mod.py":             "X = 1\n",
		"pkg/data.json":          "{}",
		"__pycache__/mod.pyc":    "",
		"pkg/skipme_gen.py":      "Y = 2\n",
		"vendor_venv/ignored.py": "Z = 3\n",
	})

	cfg := config.Default()
	cfg.SourcePaths = []string{tmpDir}
	a := testApp(t, cfg)

	files, err := a.ScanDirectories([]string{tmpDir}, []string{"__pycache__", "*venv*"}, []string{"*_gen.py"})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %v", files)
	}
	if filepath.Base(files[0]) != "mod.py" {
		t.Fatalf("unexpected file %q", files[0])
	}
}

func TestScanDirectories_RejectsBadPattern(t *testing.T) {
	cfg := config.Default()
	a := testApp(t, cfg)

	if _, err := a.ScanDirectories([]string{"."}, []string{"[bad"}, nil); err == nil {
		t.Fatal("expected error for invalid exclude pattern")
	}
}

func TestDocumentAll(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"sample.py": moduleSource,
		"other.py":  "import sys\n\nY = 2\n",
	})

	cfg := config.Default()
	cfg.SourcePaths = []string{tmpDir}
	a := testApp(t, cfg)

	var emitted []Update
	a.SetUpdateHandler(func(u Update) { emitted = append(emitted, u) })

	update, err := a.DocumentAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if update.FileCount != 2 {
		t.Fatalf("expected 2 files, got %d", update.FileCount)
	}
	if update.FunctionCount != 1 {
		t.Fatalf("expected 1 top-level function, got %d", update.FunctionCount)
	}
	if update.ClassCount != 2 {
		t.Fatalf("expected 2 classes, got %d", update.ClassCount)
	}
	if update.ImportCount != 2 {
		t.Fatalf("expected 2 imports, got %d", update.ImportCount)
	}
	if update.ErrorCount != 0 {
		t.Fatalf("expected no errors, got %d", update.ErrorCount)
	}
	if len(emitted) != 1 {
		t.Fatalf("expected one update emission, got %d", len(emitted))
	}

	docs := a.Documents()
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	// path-ordered: other.py before sample.py
	if docs[0].Name != "other" || docs[1].Name != "sample" {
		t.Fatalf("unexpected document order: %q, %q", docs[0].Name, docs[1].Name)
	}
	if docs[1].Version != "1.0" {
		t.Fatalf("expected version 1.0, got %q", docs[1].Version)
	}
}

func TestDocumentFileAndDrop(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"mod.py": "X = 1\n"})
	path := filepath.Join(tmpDir, "mod.py")

	cfg := config.Default()
	cfg.SourcePaths = []string{tmpDir}
	a := testApp(t, cfg)

	doc, err := a.DocumentFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "mod" {
		t.Fatalf("unexpected module name %q", doc.Name)
	}
	if len(a.Documents()) != 1 {
		t.Fatal("expected one document after DocumentFile")
	}

	a.DropFile(path)
	if len(a.Documents()) != 0 {
		t.Fatal("expected no documents after DropFile")
	}
}

func TestDocumentFile_RecordsFailure(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.Default()
	cfg.SourcePaths = []string{tmpDir}
	a := testApp(t, cfg)

	missing := filepath.Join(tmpDir, "missing.py")
	if _, err := a.DocumentFile(missing); err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(a.Failures()) != 1 {
		t.Fatalf("expected one recorded failure, got %d", len(a.Failures()))
	}

	update := a.CurrentUpdate()
	if update.ErrorCount != 1 {
		t.Fatalf("expected error_count=1, got %d", update.ErrorCount)
	}
}

func TestGenerateOutputs(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"sample.py": moduleSource})

	outDir := filepath.Join(t.TempDir(), "docs")
	cfg := config.Default()
	cfg.SourcePaths = []string{tmpDir}
	cfg.Output.Dir = outDir
	cfg.Output.Formats = []string{"text", "html", "markdown"}
	a := testApp(t, cfg)

	if _, err := a.DocumentAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := a.GenerateOutputs(); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"sample.txt", "sample.html", "sample.md", "docu.css"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected output %s: %v", name, err)
		}
	}

	page, err := os.ReadFile(filepath.Join(outDir, "sample.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "(path, strict=True)") {
		t.Error("html page is missing the function signature")
	}
}

func TestGenerateOutputs_SameBaseNameAcrossPackages(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"pkg_a/utils.py": "A = 1\n",
		"pkg_b/utils.py": "B = 2\n",
	})

	outDir := filepath.Join(t.TempDir(), "docs")
	cfg := config.Default()
	cfg.SourcePaths = []string{tmpDir}
	cfg.Output.Dir = outDir
	cfg.Output.Formats = []string{"text"}
	a := testApp(t, cfg)

	if _, err := a.DocumentAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	docs := a.Documents()
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].Name != "pkg_a.utils" || docs[1].Name != "pkg_b.utils" {
		t.Fatalf("expected dotted module names, got %q, %q", docs[0].Name, docs[1].Name)
	}

	if err := a.GenerateOutputs(); err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]string{
		"pkg_a.utils.txt": "A = 1",
		"pkg_b.utils.txt": "B = 2",
	} {
		page, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("expected output %s: %v", name, err)
		}
		if !strings.Contains(string(page), want) {
			t.Errorf("%s missing %q:\n%s", name, want, page)
		}
	}
}

func TestPrintSummary(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"sample.py": moduleSource})

	cfg := config.Default()
	cfg.SourcePaths = []string{tmpDir}
	a := testApp(t, cfg)

	if _, err := a.DocumentAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	a.PrintSummary(&buf)
	if !strings.Contains(buf.String(), "Sample module.") {
		t.Fatalf("summary missing module docstring:\n%s", buf.String())
	}
}

func TestHealthService(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"sample.py": moduleSource})

	cfg := config.Default()
	cfg.SourcePaths = []string{tmpDir}
	a := testApp(t, cfg)

	if _, err := a.DocumentAll(context.Background()); err != nil {
		t.Fatal(err)
	}

	status := NewHealthService(a).Check(context.Background())
	if status.Status != "up" {
		t.Fatalf("expected up, got %q: %+v", status.Status, status)
	}
	if status.Components["documents"] == "" {
		t.Fatal("expected documents component")
	}
}
