// Package source fetches the daily solution word from remote word sources.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/at-ishikawa/wordarchiver/internal/wordlist"
)

var (
	// ErrSourceUnavailable is returned for transport failures, unexpected statuses and malformed bodies.
	ErrSourceUnavailable = errors.New("word source unavailable")
	// ErrParseMismatch is returned when the response does not contain the expected element or field.
	ErrParseMismatch = errors.New("word not found in the source response")
)

//go:generate mockgen -source=source.go -destination=../mocks/source/mock_source.go -package=mock_source

type Source interface {
	Name() string
	// Fetch returns the lowercased solution word for date.
	Fetch(ctx context.Context, date wordlist.Date) (string, error)
	Close() error
}

type Kind string

const (
	KindHTML    Kind = "html"
	KindNYTimes Kind = "nytimes"
)

var AllKinds = []Kind{KindHTML, KindNYTimes}

type Config struct {
	Kind       Kind
	HTMLURL    string
	UserAgent  string
	NYTimesURL string
	Timeout    time.Duration
}

func New(config Config) (Source, error) {
	switch config.Kind {
	case KindHTML:
		return NewHTMLSource(config.HTMLURL, config.UserAgent, config.Timeout), nil
	case KindNYTimes:
		return NewNYTimesSource(config.NYTimesURL, config.Timeout), nil
	}
	return nil, fmt.Errorf("unknown source: %q. Possible values are %v", config.Kind, AllKinds)
}
