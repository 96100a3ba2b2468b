package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"docuscan/internal/core/app"
	"docuscan/internal/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFiles(t *testing.T, tmpDir string) {
	pkgInit := `"""Sample package."""

__version__ = '0.3'

import os
`
	err := os.Mkdir(filepath.Join(tmpDir, "sample"), 0755)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(tmpDir, "sample", "__init__.py"), []byte(pkgInit), 0644)
	require.NoError(t, err)

	core := `"""Core helpers."""

import json

MAX_RETRIES = 3

def fetch(url, timeout=30):
    """Fetch a url."""
    if not url:
        raise ValueError('missing url')
    return url

class Client:
    """HTTP client wrapper."""

    retries = MAX_RETRIES

    def get(self, url):
        pass

class ClientError(Exception):
    """Raised when a request fails."""
`
	err = os.WriteFile(filepath.Join(tmpDir, "sample", "core.py"), []byte(core), 0644)
	require.NoError(t, err)

	// A cache directory that must never be scanned
	err = os.MkdirAll(filepath.Join(tmpDir, "__pycache__"), 0755)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(tmpDir, "__pycache__", "junk.py"), []byte("X = 1\n"), 0644)
	require.NoError(t, err)
}

func TestFullPipelineIntegration(t *testing.T) {
	tmpDir := t.TempDir()
	createTestFiles(t, tmpDir)

	outDir := filepath.Join(t.TempDir(), "docs")
	cfg := config.Default()
	cfg.SourcePaths = []string{tmpDir}
	cfg.Output.Dir = outDir
	cfg.Output.Formats = []string{"text", "html", "markdown"}
	cfg.DB.Enabled = true
	cfg.DB.Path = filepath.Join(t.TempDir(), "docuscan.db")

	appInstance, err := app.New(cfg)
	require.NoError(t, err)
	defer appInstance.Close()

	ctx := context.Background()
	update, err := appInstance.DocumentAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, update.FileCount)
	assert.Equal(t, 2, update.ImportCount)
	assert.Equal(t, 1, update.FunctionCount)
	assert.Equal(t, 2, update.ClassCount)
	assert.Zero(t, update.ErrorCount)

	docs := appInstance.Documents()
	require.Len(t, docs, 2)

	var foundInit, foundCore bool
	for _, doc := range docs {
		switch doc.Name {
		case "sample":
			foundInit = true
			assert.Equal(t, "0.3", doc.Version)
			assert.Equal(t, "Sample package.", doc.Description)
		case "sample.core":
			foundCore = true
			require.Len(t, doc.Functions, 1)
			assert.Equal(t, []string{"ValueError"}, doc.Functions[0].Exceptions)
			require.Len(t, doc.Classes, 2)
			assert.True(t, doc.Classes[1].IsException)
		}
	}
	assert.True(t, foundInit, "should have documented sample/__init__.py")
	assert.True(t, foundCore, "should have documented sample/core.py")

	// Render every configured format
	require.NoError(t, appInstance.GenerateOutputs())
	for _, name := range []string{"sample.core.txt", "sample.core.html", "sample.core.md", "docu.css"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, "expected output %s", name)
	}

	// A second pass gives the trend report two runs to diff
	_, err = appInstance.DocumentAll(ctx)
	require.NoError(t, err)

	trend, err := appInstance.LoadTrend(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, trend.RunCount)
	assert.Zero(t, trend.Points[1].DeltaFiles)
}
