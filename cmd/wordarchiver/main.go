package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordarchiver/internal/archiver"
)

var (
	configFile string
)

const (
	exitCodeUnexpected        = 1
	exitCodeSourceUnavailable = 2
	exitCodeParseMismatch     = 3
	exitCodeWordNotTracked    = 4
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCommand := newRootCommand()
	if err := rootCommand.ExecuteContext(ctx); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		stop()
		os.Exit(exitCode(err))
	}
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "wordarchiver",
		Short:         "Keep a local word puzzle dictionary in sync with the daily solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newArchiveCommand(),
		newMigrateCommand(),
		newSuggestCommand(),
		newShowCommand(),
	)
	return &rootCommand
}

// setupLogger configures the default logger based on debug mode
func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func exitCode(err error) int {
	switch archiver.Classify(err) {
	case archiver.FailureNone:
		return 0
	case archiver.FailureSourceUnavailable:
		return exitCodeSourceUnavailable
	case archiver.FailureParseMismatch:
		return exitCodeParseMismatch
	case archiver.FailureWordNotTracked:
		return exitCodeWordNotTracked
	}
	return exitCodeUnexpected
}
