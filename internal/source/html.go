package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"resty.dev/v3"

	"github.com/at-ishikawa/wordarchiver/internal/wordlist"
)

// HTMLSource scrapes an answers page whose first table cell holds today's word in bold.
// The page only ever shows the latest answer, so the requested date is not sent.
type HTMLSource struct {
	httpClient *resty.Client
	url        string
}

func NewHTMLSource(url, userAgent string, timeout time.Duration) *HTMLSource {
	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	client.SetTimeout(timeout)

	return &HTMLSource{
		httpClient: client,
		url:        url,
	}
}

func (s *HTMLSource) Name() string {
	return string(KindHTML)
}

func (s *HTMLSource) Close() error {
	return s.httpClient.Close()
}

func (s *HTMLSource) Fetch(ctx context.Context, _ wordlist.Date) (string, error) {
	response, err := s.httpClient.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		return "", fmt.Errorf("%w: httpClient.Get(%s) > %w", ErrSourceUnavailable, s.url, err)
	}
	if response.IsError() {
		return "", fmt.Errorf("%w: status code: %d from %s", ErrSourceUnavailable, response.StatusCode(), s.url)
	}

	return ParseAnswerPage(strings.NewReader(response.String()))
}

// ParseAnswerPage returns the trimmed, lowercased bold text of the first table cell.
func ParseAnswerPage(r io.Reader) (string, error) {
	document, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("%w: goquery.NewDocumentFromReader > %w", ErrParseMismatch, err)
	}

	cell := document.Find("td").First()
	if cell.Length() == 0 {
		return "", fmt.Errorf("%w: could not find the answer table", ErrParseMismatch)
	}
	bold := cell.Find("b").First()
	if bold.Length() == 0 {
		return "", fmt.Errorf("%w: the answer cell has no bold text", ErrParseMismatch)
	}

	return strings.ToLower(strings.TrimSpace(nodeText(bold.Nodes[0]))), nil
}

func nodeText(node *html.Node) string {
	var buffer bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buffer.WriteString(n.Data)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return buffer.String()
}
