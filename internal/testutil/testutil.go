// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigOption overrides a value in the generated config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	sourceKind string
	htmlURL    string
	nytimesURL string
	target     string
	timezone   string
}

func WithSourceKind(kind string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.sourceKind = kind
	}
}

func WithHTMLURL(url string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.htmlURL = url
	}
}

func WithNYTimesURL(url string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.nytimesURL = url
	}
}

func WithTarget(target string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.target = target
	}
}

// SetupTestConfig writes dictionary as all_words.json and a config file pointing at it into tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, dictionary string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		sourceKind: "html",
		htmlURL:    "http://127.0.0.1:1/answers/",
		nytimesURL: "http://127.0.0.1:1/svc/wordle/v2",
		target:     "today",
		timezone:   "America/Los_Angeles",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dictionaryPath := WriteDictionary(t, tmpDir, dictionary)
	configContent := fmt.Sprintf(`dictionary:
  path: %s
  lock:
    attempts: 2
    delay: 10ms
source:
  kind: %s
  timeout: 5s
  html:
    url: %s
  nytimes:
    url: %s
archive:
  timezone: %s
  target: %s
`,
		dictionaryPath,
		cfg.sourceKind,
		cfg.htmlURL,
		cfg.nytimesURL,
		cfg.timezone,
		cfg.target,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteDictionary writes contents as all_words.json in dir and returns its path.
func WriteDictionary(t *testing.T, dir string, contents string) string {
	t.Helper()

	path := filepath.Join(dir, "all_words.json")
	require.NoError(t, os.WriteFile(path, []byte(strings.TrimSpace(contents)), 0644))
	return path
}

// ReadFile returns the contents of path as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(contents)
}
