package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const docFetcherUserAgent = "fourd-doc-lookup/1.0"

// DocFetcher retrieves a documentation page and reduces it to plain text.
type DocFetcher interface {
	Fetch(ctx context.Context, url string, maxChars int) (string, error)
}

// HTTPDocFetcher fetches pages over HTTP and strips them with a tag-aware
// tokenizer pass.
type HTTPDocFetcher struct {
	client *http.Client
}

// NewHTTPDocFetcher constructs an HTTPDocFetcher with a 10s request timeout.
func NewHTTPDocFetcher() *HTTPDocFetcher {
	return &HTTPDocFetcher{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch downloads url and returns its article text, truncated to maxChars.
func (f *HTTPDocFetcher) Fetch(ctx context.Context, url string, maxChars int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("User-Agent", docFetcherUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: page not found at %s", resp.StatusCode, url)
	}

	text := ExtractText(resp.Body)
	if maxChars > 0 && len(text) > maxChars {
		// Back up to a rune boundary so a multi-byte character is never
		// split mid-sequence.
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}

		text = text[:cut] + "\n\n[... truncated]"
	}

	return text, nil
}

// skippedTags are containers whose text is navigation or chrome, never
// documentation content.
var skippedTags = map[string]bool{
	"nav":    true,
	"footer": true,
	"script": true,
	"style":  true,
	"header": true,
}

// ExtractText reduces an HTML document to markdown-ish text. It tracks whether
// the tokenizer is inside a navigational/script container (skipping its text)
// and emits lightweight markers for headings, paragraphs, and code.
func ExtractText(r io.Reader) string {
	tokenizer := html.NewTokenizer(r)

	var parts []string

	skipDepth := 0

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			return strings.TrimSpace(strings.Join(parts, ""))

		case html.StartTagToken:
			token := tokenizer.Token()
			tag := token.Data

			if skippedTags[tag] {
				skipDepth++
				continue
			}

			switch tag {
			case "h1", "h2", "h3", "h4":
				parts = append(parts, "\n## ")
			case "p":
				parts = append(parts, "\n")
			case "code":
				parts = append(parts, "`")
			case "pre":
				parts = append(parts, "\n```\n")
			}

		case html.EndTagToken:
			token := tokenizer.Token()
			tag := token.Data

			if skippedTags[tag] {
				if skipDepth > 0 {
					skipDepth--
				}

				continue
			}

			switch tag {
			case "code":
				parts = append(parts, "`")
			case "pre":
				parts = append(parts, "\n```\n")
			}

		case html.TextToken:
			if skipDepth == 0 {
				parts = append(parts, string(tokenizer.Text()))
			}
		}
	}
}
