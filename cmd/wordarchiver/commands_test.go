package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordarchiver/internal/solver"
	"github.com/at-ishikawa/wordarchiver/internal/testutil"
	"github.com/at-ishikawa/wordarchiver/internal/wordlist"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCommand()
	root.SetOut(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestMigrateCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupTestConfig(t, tmpDir, `{"slate": "O", "crane": "A"}`)
	path := filepath.Join(tmpDir, "all_words.json")

	output, err := execute(t, "migrate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, output, "Migrated 2 record(s) in "+path)
	assert.Equal(t, `{
    "crane": {
        "category": "A",
        "date": null
    },
    "slate": {
        "category": "O",
        "date": null
    }
}`, testutil.ReadFile(t, path))

	output, err = execute(t, "migrate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, output, "The dictionary is already in the structured format.")
}

const suggestDictionary = `{
    "crane": {"category": "A", "date": "2024-06-15"},
    "slate": {"category": "O", "date": null},
    "plate": {"category": "O", "date": null},
    "zzzzz": {"category": "Z", "date": null}
}`

func TestSuggestCommand(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name       string
		args       []string
		wantOutput []string
		wantError  error
	}{
		{
			name: "no guesses",
			wantOutput: []string{
				"Original: 2  Extended: 0  Zero-Chance: 1",
				"TOP SUGGESTIONS:",
				" 1. PLATE (O) - 1.00",
				" 2. SLATE (O) - 1.00",
				" 3. ZZZZZ (Z) - 0.00",
			},
		},
		{
			name: "limited output",
			args: []string{"--limit", "1"},
			wantOutput: []string{
				" 1. PLATE (O) - 1.00",
				"... and 2 more",
			},
		},
		{
			name: "guess with a detector",
			args: []string{"--turn", "slate=-gggg"},
			wantOutput: []string{
				"Original: 1  Extended: 0  Zero-Chance: 0",
				"!!. CRANE (A) - 0.00 [BEST DETECTOR]",
				" 1. PLATE (O) - 0.00",
			},
		},
		{
			name:       "no candidates",
			args:       []string{"--turn", "plate=yyyyy"},
			wantOutput: []string{"No words match the given guesses."},
		},
		{
			name:       "solved",
			args:       []string{"--turn", "plate=ggggg"},
			wantOutput: []string{"Solved! The answer is PLATE."},
		},
		{
			name:      "invalid turn",
			args:      []string{"--turn", "plate"},
			wantError: solver.ErrInvalidTurn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := testutil.SetupTestConfig(t, t.TempDir(), suggestDictionary)

			output, err := execute(t, append([]string{"suggest", "--config", cfgPath}, tt.args...)...)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOutput {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestShowCommand(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		wantOutput []string
		wantError  error
	}{
		{
			name: "structured record",
			word: "CRANE",
			wantOutput: []string{
				"word: crane",
				"category: A",
				"2024-06-15",
			},
		},
		{
			name: "legacy record",
			word: "slate",
			wantOutput: []string{
				"word: slate",
				"category: O",
				"date: null",
				"legacy_format: true",
			},
		},
		{
			name:      "unknown word",
			word:      "plate",
			wantError: wordlist.ErrWordNotTracked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := testutil.SetupTestConfig(t, t.TempDir(), `{"crane": {"category": "A", "date": "2024-06-15"}, "slate": "O"}`)

			output, err := execute(t, "show", "--config", cfgPath, tt.word)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				assert.Equal(t, exitCodeWordNotTracked, exitCode(err))
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOutput {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestNewArchiveOptions(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, t.TempDir(), `{}`, testutil.WithTarget("yesterday"))
	configFile = cfgPath
	t.Cleanup(func() {
		configFile = ""
	})

	cfg, err := loadConfig()
	require.NoError(t, err)

	options, err := newArchiveOptions(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, -1, options.DayOffset)
	assert.Equal(t, "America/Los_Angeles", options.Location.String())
	assert.Nil(t, options.Date)

	options, err = newArchiveOptions(cfg, "2024-06-15")
	require.NoError(t, err)
	require.NotNil(t, options.Date)
	assert.Equal(t, "2024-06-15", options.Date.String())
}
