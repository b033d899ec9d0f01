package wordlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/avast/retry-go"
)

var ErrLocked = errors.New("dictionary is locked by another process")

func (r *JSONRepository) lockPath() string {
	return r.path + ".lock"
}

// Lock takes an exclusive advisory lock on a file next to the dictionary.
// A held lock is polled until the configured attempts run out.
func (r *JSONRepository) Lock(ctx context.Context) (UnlockFunc, error) {
	path := r.lockPath()
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("os.OpenFile(%s) > %w", path, err)
	}

	if err := retry.Do(
		func() error {
			if err := lockFile(file); err != nil {
				if isLockHeld(err) {
					slog.Default().Debug("dictionary lock is held, waiting", "path", path)
					return ErrLocked
				}
				return retry.Unrecoverable(err)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.lockConfig.Attempts),
		retry.Delay(r.lockConfig.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	); err != nil {
		_ = file.Close()
		if errors.Is(err, ErrLocked) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, path)
		}
		return nil, fmt.Errorf("lockFile(%s) > %w", path, err)
	}

	return func() error {
		defer func() {
			_ = file.Close()
		}()
		if err := unlockFile(file); err != nil {
			return fmt.Errorf("unlockFile(%s) > %w", path, err)
		}
		return nil
	}, nil
}
