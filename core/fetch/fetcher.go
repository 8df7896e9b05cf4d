// Package fetch implements the Fetcher interface.
// HTTP(S) URLs are fetched with a GET request; anything else is read as a
// file path, with "-" or an empty source meaning standard input.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gaurav-prasanna/pastewiki/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "pastewiki/1.0 (https://github.com/gaurav-prasanna/pastewiki)"
)

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTP creates an HTTPFetcher with a sensible timeout.
func NewHTTP() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch retrieves the HTML content of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		Source:     rawURL,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

// FileFetcher reads HTML from a file or from Stdin.
type FileFetcher struct {
	Stdin io.Reader
}

// Fetch reads the file at path, or Stdin when path is "-" or empty.
func (f *FileFetcher) Fetch(ctx context.Context, path string) (*core.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(f.Stdin)
		path = "-"
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return &core.FetchResult{Source: path, HTML: string(data)}, nil
}

// SourceFetcher dispatches on the shape of the source.
type SourceFetcher struct {
	HTTP *HTTPFetcher
	File *FileFetcher
}

// New creates a SourceFetcher reading standard input for "-".
func New() *SourceFetcher {
	return &SourceFetcher{
		HTTP: NewHTTP(),
		File: &FileFetcher{Stdin: os.Stdin},
	}
}

// Fetch fetches URLs over HTTP and reads everything else locally.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	if IsURL(source) {
		return f.HTTP.Fetch(ctx, source)
	}
	return f.File.Fetch(ctx, source)
}

// IsURL reports whether source is an absolute http or https URL.
func IsURL(source string) bool {
	parsed, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
