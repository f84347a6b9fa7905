// Package fetch retrieves source documents as text.
//
// A [Fetcher] returns the whole body of a source as a UTF-8 string. The body
// is buffered completely before it is returned; nothing is streamed and
// nothing is retried.
//
//	f := fetch.NewSourceFetcher()
//	doc, err := f.Fetch(ctx, "https://example.com/published")
//
// [HTTPFetcher] handles http and https URLs, converting the body to UTF-8
// from the charset the server declares or the document itself announces.
// [FileFetcher] reads local paths and file URLs. [SourceFetcher] picks one of
// the two by looking at the source.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrBinaryBody is returned when a fetched body is not text, for example a
// PDF or an image.
var ErrBinaryBody = errors.New("response body is not text")

// ErrUnsupportedScheme is returned for URLs whose scheme no fetcher serves.
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// Fetcher retrieves the body of a source as text.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (string, error)
}

// StatusError reports an HTTP response whose status is not 2xx.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status %s", e.URL, e.Status)
}

// SourceFetcher routes http and https URLs to HTTP and everything else
// (file URLs and plain paths) to File.
type SourceFetcher struct {
	HTTP *HTTPFetcher
	File *FileFetcher
}

// NewSourceFetcher returns a SourceFetcher with default HTTP and file
// fetchers.
func NewSourceFetcher() *SourceFetcher {
	return &SourceFetcher{
		HTTP: NewHTTPFetcher(),
		File: &FileFetcher{},
	}
}

// Fetch implements Fetcher.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (string, error) {
	switch schemeOf(source) {
	case "http", "https":
		return f.HTTP.Fetch(ctx, source)
	case "", "file":
		return f.File.Fetch(ctx, source)
	default:
		return "", fmt.Errorf("fetching %s: %w", source, ErrUnsupportedScheme)
	}
}

// schemeOf returns the lower-cased URL scheme of source, or "" when source
// reads as a plain path. Single-letter schemes are treated as Windows drive
// letters.
func schemeOf(source string) string {
	u, err := url.Parse(source)
	if err != nil || len(u.Scheme) < 2 {
		return ""
	}
	return strings.ToLower(u.Scheme)
}
