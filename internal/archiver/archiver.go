package archiver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/at-ishikawa/wordarchiver/internal/source"
	"github.com/at-ishikawa/wordarchiver/internal/wordlist"
)

const WordLength = 5

// ErrInvalidWord is returned when the fetched candidate is not a WordLength-letter word.
var ErrInvalidWord = fmt.Errorf("%w: invalid word", source.ErrParseMismatch)

// Result describes a run that finished without an error.
type Result struct {
	Word    string
	Date    wordlist.Date
	Source  string
	Outcome wordlist.Outcome
	// Normalized is the number of flat records rewritten in the structured form alongside the update.
	Normalized int
}

type Options struct {
	// Location is the time zone the target date is computed in.
	Location *time.Location
	// DayOffset is added to the current day, 0 for today and -1 for yesterday.
	DayOffset int
	// Date overrides the computed target date when set.
	Date *wordlist.Date
	Now  func() time.Time
}

type Archiver struct {
	source     source.Source
	repository wordlist.Repository
	options    Options
}

func New(wordSource source.Source, repository wordlist.Repository, options Options) *Archiver {
	if options.Location == nil {
		options.Location = time.UTC
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	return &Archiver{
		source:     wordSource,
		repository: repository,
		options:    options,
	}
}

// TargetDate converts now into location and shifts it by offsetDays calendar days.
func TargetDate(now time.Time, location *time.Location, offsetDays int) wordlist.Date {
	local := now.In(location)
	return wordlist.NewDate(local.AddDate(0, 0, offsetDays))
}

func (a *Archiver) targetDate() wordlist.Date {
	if a.options.Date != nil {
		return *a.options.Date
	}
	return TargetDate(a.options.Now(), a.options.Location, a.options.DayOffset)
}

// Run fetches the solution word and marks it as answered in the dictionary.
// The dictionary is only written when the record changes.
func (a *Archiver) Run(ctx context.Context) (Result, error) {
	result := Result{
		Date:   a.targetDate(),
		Source: a.source.Name(),
	}
	logger := slog.Default().With("source", result.Source, "date", result.Date.String())

	logger.Debug("fetching the solution word")
	word, err := a.source.Fetch(ctx, result.Date)
	if err != nil {
		return result, fmt.Errorf("source.Fetch > %w", err)
	}
	result.Word = word
	logger = logger.With("word", word)

	if utf8.RuneCountInString(word) != WordLength {
		return result, fmt.Errorf("%w: %q is not %d letters", ErrInvalidWord, word, WordLength)
	}

	unlock, err := a.repository.Lock(ctx)
	if err != nil {
		return result, fmt.Errorf("repository.Lock > %w", err)
	}
	defer func() {
		if err := unlock(); err != nil {
			logger.Warn("failed to release the dictionary lock", "error", err)
		}
	}()

	dictionary, err := a.repository.Load(ctx)
	if err != nil {
		return result, fmt.Errorf("repository.Load > %w", err)
	}

	outcome, err := dictionary.Apply(word, result.Date)
	if err != nil {
		return result, fmt.Errorf("dictionary.Apply > %w", err)
	}
	result.Outcome = outcome
	if outcome == wordlist.OutcomeAlreadyCurrent {
		logger.Debug("record is already current")
		return result, nil
	}

	result.Normalized = dictionary.Normalize()
	if err := a.repository.Save(ctx, dictionary); err != nil {
		return result, fmt.Errorf("repository.Save > %w", err)
	}
	logger.Debug("dictionary updated", "normalized", result.Normalized)
	return result, nil
}

type Failure int

const (
	FailureNone Failure = iota
	FailureSourceUnavailable
	FailureParseMismatch
	FailureWordNotTracked
	FailureUnexpected
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureSourceUnavailable:
		return "source unavailable"
	case FailureParseMismatch:
		return "parse mismatch"
	case FailureWordNotTracked:
		return "word not tracked"
	}
	return "unexpected failure"
}

// Classify maps an error returned by Run to the kind of failure it represents.
func Classify(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, source.ErrSourceUnavailable):
		return FailureSourceUnavailable
	case errors.Is(err, source.ErrParseMismatch):
		return FailureParseMismatch
	case errors.Is(err, wordlist.ErrWordNotTracked):
		return FailureWordNotTracked
	}
	return FailureUnexpected
}
