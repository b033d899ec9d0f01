package wordlist

import (
	"context"
	"fmt"
	"log/slog"
)

// Migrate rewrites every flat record in the structured form.
// The file is only written when at least one record was converted.
func Migrate(ctx context.Context, repository Repository) (int, error) {
	unlock, err := repository.Lock(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository.Lock > %w", err)
	}
	defer func() {
		if err := unlock(); err != nil {
			slog.Default().Warn("failed to release the dictionary lock", "error", err)
		}
	}()

	dictionary, err := repository.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository.Load > %w", err)
	}

	converted := dictionary.Normalize()
	if converted == 0 {
		return 0, nil
	}
	if err := repository.Save(ctx, dictionary); err != nil {
		return 0, fmt.Errorf("repository.Save > %w", err)
	}
	slog.Default().Debug("migrated flat records", "count", converted)
	return converted, nil
}
