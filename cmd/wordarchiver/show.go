package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordarchiver/internal/wordlist"
)

type wordView struct {
	Word     string            `yaml:"word"`
	Category wordlist.Category `yaml:"category"`
	Date     *wordlist.Date    `yaml:"date"`
	Legacy   bool              `yaml:"legacy_format,omitempty"`
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <word>",
		Short: "Show the dictionary record of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := strings.ToLower(strings.TrimSpace(args[0]))

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			dictionary, err := newRepository(cfg).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("repository.Load > %w", err)
			}

			record, ok := dictionary[word]
			if !ok {
				return fmt.Errorf("%w: %s", wordlist.ErrWordNotTracked, word)
			}
			return writeWordView(cmd.OutOrStdout(), word, record)
		},
	}
}

func writeWordView(w io.Writer, word string, record wordlist.Record) error {
	encoder := yaml.NewEncoder(w)
	defer func() {
		_ = encoder.Close()
	}()
	if err := encoder.Encode(wordView{
		Word:     word,
		Category: record.Category,
		Date:     record.Date,
		Legacy:   record.IsFlat(),
	}); err != nil {
		return fmt.Errorf("yaml.Encode > %w", err)
	}
	return nil
}
