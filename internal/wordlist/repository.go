package wordlist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// UnlockFunc releases a lock obtained from Repository.Lock.
type UnlockFunc func() error

//go:generate mockgen -source=repository.go -destination=../mocks/wordlist/mock_repository.go -package=mock_wordlist

// Repository loads and stores the whole dictionary at once.
type Repository interface {
	Load(ctx context.Context) (Dictionary, error)
	Save(ctx context.Context, dictionary Dictionary) error
	Lock(ctx context.Context) (UnlockFunc, error)
}

type LockConfig struct {
	Attempts uint
	Delay    time.Duration
}

// JSONRepository keeps the dictionary in a single JSON file.
type JSONRepository struct {
	path       string
	lockConfig LockConfig
}

func NewJSONRepository(path string, lockConfig LockConfig) *JSONRepository {
	if lockConfig.Attempts == 0 {
		lockConfig.Attempts = 1
	}
	return &JSONRepository{
		path:       path,
		lockConfig: lockConfig,
	}
}

func (r *JSONRepository) Path() string {
	return r.path
}

func (r *JSONRepository) Load(ctx context.Context) (Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contents, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", r.path, err)
	}

	var dictionary Dictionary
	if err := json.Unmarshal(contents, &dictionary); err != nil {
		return nil, fmt.Errorf("%w: json.Unmarshal(%s) > %w", ErrCorruptDictionary, r.path, err)
	}
	if dictionary == nil {
		return nil, fmt.Errorf("%w: %s is not a JSON object", ErrCorruptDictionary, r.path)
	}
	return dictionary, nil
}

// Save rewrites the whole file. The contents go to a temporary file next to the
// dictionary first and then replace it with a rename.
func (r *JSONRepository) Save(ctx context.Context, dictionary Dictionary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contents, err := json.MarshalIndent(dictionary, "", "    ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(r.path); err == nil {
		mode = info.Mode().Perm()
	}

	file, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tempPath := file.Name()
	defer func() {
		_ = file.Close()
		_ = os.Remove(tempPath)
	}()

	if _, err := file.Write(contents); err != nil {
		return fmt.Errorf("file.Write(%s) > %w", tempPath, err)
	}
	if err := file.Chmod(mode); err != nil {
		return fmt.Errorf("file.Chmod(%s) > %w", tempPath, err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("file.Sync(%s) > %w", tempPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close(%s) > %w", tempPath, err)
	}
	if err := os.Rename(tempPath, r.path); err != nil {
		return fmt.Errorf("os.Rename(%s, %s) > %w", tempPath, r.path, err)
	}
	return nil
}
