package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordarchiver/internal/solver"
	"github.com/at-ishikawa/wordarchiver/internal/wordlist"
)

func newSuggestCommand() *cobra.Command {
	var (
		turns []string
		limit int
	)

	command := &cobra.Command{
		Use:   "suggest",
		Short: "Rank the words that can still be the answer after the given guesses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedTurns := make([]solver.Turn, 0, len(turns))
			for _, value := range turns {
				turn, err := solver.ParseTurn(value)
				if err != nil {
					return err
				}
				parsedTurns = append(parsedTurns, turn)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dictionary, err := newRepository(cfg).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.Load > %w", err)
			}

			suggestion, err := solver.Suggest(dictionary, parsedTurns, limit)
			if err != nil {
				return fmt.Errorf("solver.Suggest > %w", err)
			}
			printSuggestion(cmd.OutOrStdout(), suggestion)
			return nil
		},
	}

	command.Flags().StringArrayVar(&turns, "turn", nil, "A guess and its pattern as guess=pattern, e.g. crane=g-y--. g: green, y: yellow, -: miss")
	command.Flags().IntVar(&limit, "limit", 20, "Number of suggestions to show")
	return command
}

func printSuggestion(w io.Writer, suggestion solver.Suggestion) {
	bold := color.New(color.Bold)
	if suggestion.Solved {
		_, _ = color.New(color.FgGreen).Fprintf(w, "Solved! The answer is %s. Run the archive command to record it.\n", strings.ToUpper(suggestion.Answer))
		return
	}

	_, _ = fmt.Fprintf(w, "Original: %d  Extended: %d  Zero-Chance: %d\n",
		suggestion.Counts[wordlist.CategoryOriginal],
		suggestion.Counts[wordlist.CategoryExtended],
		suggestion.Counts[wordlist.CategoryZeroChance],
	)
	if len(suggestion.Ranked) == 0 {
		_, _ = color.New(color.FgYellow).Fprintln(w, "No words match the given guesses.")
		return
	}

	_, _ = bold.Fprintln(w, "TOP SUGGESTIONS:")
	if detector := suggestion.Detector; detector != nil {
		_, _ = color.New(color.FgMagenta).Fprintf(w, "!!. %s (%s) - %.2f [BEST DETECTOR]\n", strings.ToUpper(detector.Text), detector.Category, detector.Entropy)
		_, _ = fmt.Fprintln(w, strings.Repeat("-", 30))
	}
	for i, word := range suggestion.Ranked {
		_, _ = fmt.Fprintf(w, "%2d. %s (%s) - %.2f\n", i+1, strings.ToUpper(word.Text), word.Category, word.Entropy)
	}
	if hidden := suggestion.Remaining - len(suggestion.Ranked); hidden > 0 {
		_, _ = fmt.Fprintf(w, "... and %d more\n", hidden)
	}
}
