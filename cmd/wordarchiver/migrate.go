package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordarchiver/internal/wordlist"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Convert legacy category-only records to the structured format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			converted, err := wordlist.Migrate(cmd.Context(), newRepository(cfg))
			if err != nil {
				return fmt.Errorf("wordlist.Migrate > %w", err)
			}

			if converted == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "The dictionary is already in the structured format.")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d record(s) in %s\n", converted, cfg.Dictionary.Path)
			return nil
		},
	}
}
