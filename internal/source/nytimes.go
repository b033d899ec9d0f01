package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/at-ishikawa/wordarchiver/internal/wordlist"
)

// NYTimesSource reads the solution from the date-parameterized puzzle API.
type NYTimesSource struct {
	httpClient *resty.Client
}

type Puzzle struct {
	ID              int    `json:"id"`
	Solution        string `json:"solution"`
	PrintDate       string `json:"print_date"`
	DaysSinceLaunch int    `json:"days_since_launch"`
	Editor          string `json:"editor"`
}

func NewNYTimesSource(baseURL string, timeout time.Duration) *NYTimesSource {
	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	client.SetTimeout(timeout)

	return &NYTimesSource{
		httpClient: client,
	}
}

func (s *NYTimesSource) Name() string {
	return string(KindNYTimes)
}

func (s *NYTimesSource) Close() error {
	return s.httpClient.Close()
}

func (s *NYTimesSource) Fetch(ctx context.Context, date wordlist.Date) (string, error) {
	path := fmt.Sprintf("/%s.json", date)
	response, err := s.httpClient.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return "", fmt.Errorf("%w: httpClient.Get(%s) > %w", ErrSourceUnavailable, path, err)
	}
	if response.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: no solution published for %s (status code: %d)", ErrSourceUnavailable, date, response.StatusCode())
	}

	var puzzle Puzzle
	if err := json.Unmarshal([]byte(response.String()), &puzzle); err != nil {
		return "", fmt.Errorf("%w: json.Unmarshal(%s) > %w", ErrSourceUnavailable, response.String(), err)
	}

	solution := strings.ToLower(strings.TrimSpace(puzzle.Solution))
	if solution == "" {
		return "", fmt.Errorf("%w: no solution field for %s", ErrParseMismatch, date)
	}
	return solution, nil
}
