package main

import (
	"fmt"

	"github.com/at-ishikawa/wordarchiver/internal/archiver"
	"github.com/at-ishikawa/wordarchiver/internal/config"
	"github.com/at-ishikawa/wordarchiver/internal/source"
	"github.com/at-ishikawa/wordarchiver/internal/wordlist"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newRepository(cfg *config.Config) *wordlist.JSONRepository {
	return wordlist.NewJSONRepository(cfg.Dictionary.Path, wordlist.LockConfig{
		Attempts: cfg.Dictionary.Lock.Attempts,
		Delay:    cfg.Dictionary.Lock.Delay,
	})
}

func newSource(cfg *config.Config) (source.Source, error) {
	return source.New(source.Config{
		Kind:       source.Kind(cfg.Source.Kind),
		HTMLURL:    cfg.Source.HTML.URL,
		UserAgent:  cfg.Source.HTML.UserAgent,
		NYTimesURL: cfg.Source.NYTimes.URL,
		Timeout:    cfg.Source.Timeout,
	})
}

// newArchiveOptions builds the archiver options. date overrides the configured target when it is not empty.
func newArchiveOptions(cfg *config.Config, date string) (archiver.Options, error) {
	location, err := cfg.Archive.Location()
	if err != nil {
		return archiver.Options{}, err
	}
	options := archiver.Options{
		Location:  location,
		DayOffset: cfg.Archive.DayOffset(),
	}
	if date != "" {
		parsed, err := wordlist.ParseDate(date)
		if err != nil {
			return archiver.Options{}, fmt.Errorf("invalid --date %q: %w", date, err)
		}
		options.Date = &parsed
	}
	return options, nil
}
