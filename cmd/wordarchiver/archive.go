package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordarchiver/internal/archiver"
	"github.com/at-ishikawa/wordarchiver/internal/config"
	"github.com/at-ishikawa/wordarchiver/internal/source"
	"github.com/at-ishikawa/wordarchiver/internal/wordlist"
)

type SourceKind string

func (k *SourceKind) Set(val string) error {
	for _, kind := range source.AllKinds {
		if val == string(kind) {
			*k = SourceKind(kind)
			return nil
		}
	}
	return fmt.Errorf("invalid source: %s", val)
}

func (k SourceKind) String() string {
	return string(k)
}

func (k *SourceKind) Type() string {
	return "source"
}

type Target string

var allTargets = []Target{config.TargetToday, config.TargetYesterday}

func (t *Target) Set(val string) error {
	for _, target := range allTargets {
		if val == string(target) {
			*t = target
			return nil
		}
	}
	return fmt.Errorf("invalid target: %s", val)
}

func (t Target) String() string {
	return string(t)
}

func (t *Target) Type() string {
	return "target"
}

var (
	_ pflag.Value = (*SourceKind)(nil)
	_ pflag.Value = (*Target)(nil)
)

func newArchiveCommand() *cobra.Command {
	var (
		sourceKind SourceKind
		target     Target
		date       string
	)

	command := &cobra.Command{
		Use:   "archive",
		Short: "Fetch the daily solution word and mark it as answered in the dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if sourceKind != "" {
				cfg.Source.Kind = sourceKind.String()
			}
			if target != "" {
				cfg.Archive.Target = target.String()
			}

			options, err := newArchiveOptions(cfg, date)
			if err != nil {
				return err
			}
			wordSource, err := newSource(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := wordSource.Close(); err != nil {
					slog.Default().Warn("failed to close the word source", "error", err)
				}
			}()

			output := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(output, "--- Starting Daily Update ---")
			result, err := archiver.New(wordSource, newRepository(cfg), options).Run(cmd.Context())
			printArchiveResult(output, result, err)
			return err
		},
	}

	flags := command.Flags()
	flags.Var(&sourceKind, "source", fmt.Sprintf("Word source to use. Possible values are %v", source.AllKinds))
	flags.Var(&target, "target", fmt.Sprintf("Day to archive. Possible values are %v", allTargets))
	flags.StringVar(&date, "date", "", "Archive the solution of this date (YYYY-MM-DD) instead of the target day")
	return command
}

func printArchiveResult(w io.Writer, result archiver.Result, err error) {
	word := strings.ToUpper(result.Word)
	if result.Word != "" {
		_, _ = fmt.Fprintf(w, "Source %s found the word for %s: %s\n", result.Source, result.Date, word)
	}

	switch archiver.Classify(err) {
	case archiver.FailureNone:
		if result.Outcome == wordlist.OutcomeAlreadyCurrent {
			_, _ = color.New(color.FgCyan).Fprintf(w, "NOTICE: '%s' was already Category A for %s. No change needed.\n", word, result.Date)
			return
		}
		_, _ = color.New(color.FgGreen).Fprintf(w, "SUCCESS: '%s' updated to Category A for %s.\n", word, result.Date)
		if result.Normalized > 0 {
			_, _ = fmt.Fprintf(w, "Converted %d legacy record(s) to the structured format.\n", result.Normalized)
		}
	case archiver.FailureSourceUnavailable:
		_, _ = color.New(color.FgRed).Fprintf(w, "Error: the solution for %s is not available: %v\n", result.Date, err)
	case archiver.FailureParseMismatch:
		if result.Word != "" {
			_, _ = color.New(color.FgRed).Fprintf(w, "Error: Scraped word '%s' is not %d letters.\n", result.Word, archiver.WordLength)
			return
		}
		_, _ = color.New(color.FgRed).Fprintf(w, "Error: could not find the solution word: %v\n", err)
	case archiver.FailureWordNotTracked:
		_, _ = color.New(color.FgYellow).Fprintf(w, "WARNING: '%s' not found in your dictionary.\n", word)
	default:
		_, _ = color.New(color.FgRed, color.Bold).Fprintf(w, "CRITICAL ERROR: %v\n", err)
	}
}
