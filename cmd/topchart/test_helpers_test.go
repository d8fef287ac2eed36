package main

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"topchart/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	dataDir    string
	configPath string
	server     *httptest.Server
}

func defaultChartPage() string {
	return testsupport.ChartHTML(
		testsupport.ChartEntry{Title: "The Shawshank Redemption", Year: 1994, Rating: 9.3},
		testsupport.ChartEntry{Title: "The Godfather", Year: 1972, Rating: 9.2},
		testsupport.ChartEntry{Title: "Pulp Fiction", Year: 1994, Rating: 8.8},
	)
}

func setupCLITestEnv(t *testing.T, page string) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("TOPCHART_SOURCE_URL", "")
	t.Setenv("TOPCHART_MAX_TITLES", "")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)

	dataDir := filepath.Join(base, "data")
	configPath := filepath.Join(base, "topchart.toml")
	writeTestConfig(t, configPath, srv.URL, dataDir)

	return &cliTestEnv{
		baseDir:    base,
		dataDir:    dataDir,
		configPath: configPath,
		server:     srv,
	}
}

func writeTestConfig(t *testing.T, path, sourceURL, dataDir string) {
	t.Helper()
	content := fmt.Sprintf(`[source]
url = %q

[paths]
data_dir = %q

[logging]
level = "error"
retention_days = 0

[[series]]
title = "The Wire"
year = 2002
seasons = 5
episodes = 60
`, sourceURL, dataDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
