package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "docgrid/1.0 (+https://github.com/tsawler/docgrid)"

// HTTPFetcher fetches http and https URLs with a single GET request.
type HTTPFetcher struct {
	// Client performs the request. A nil Client uses http.DefaultClient.
	Client *http.Client

	// UserAgent is sent as the User-Agent header when non-empty.
	UserAgent string

	// Charset forces the body encoding, ignoring what the response declares.
	// Names are looked up in the WHATWG encoding index, e.g. "iso-8859-1".
	Charset string
}

// NewHTTPFetcher returns an HTTPFetcher with its own client and no timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client:    &http.Client{},
		UserAgent: DefaultUserAgent,
	}
}

// WithTimeout returns a copy of f whose client gives up after d. A zero d
// means no timeout.
func (f *HTTPFetcher) WithTimeout(d time.Duration) *HTTPFetcher {
	newF := *f
	client := http.Client{}
	if f.Client != nil {
		client = *f.Client
	}
	client.Timeout = d
	newF.Client = &client
	return &newF
}

// Fetch implements Fetcher. Any status outside 2xx fails with a
// *StatusError.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	req.Header.Set("Accept", "text/html, text/plain;q=0.9, */*;q=0.1")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &StatusError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", rawURL, err)
	}

	return DecodeBody(rawURL, data, resp.Header.Get("Content-Type"), f.Charset)
}
