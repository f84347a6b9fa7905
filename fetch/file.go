package fetch

import (
	"context"
	"fmt"
	"net/url"
	"os"
)

// FileFetcher reads local files. Sources may be plain paths or file URLs.
type FileFetcher struct {
	// Charset forces the file encoding. When empty the encoding is taken
	// from a byte order mark or <meta charset>, falling back to UTF-8 for
	// valid UTF-8 and windows-1252 otherwise.
	Charset string
}

// Fetch implements Fetcher.
func (f *FileFetcher) Fetch(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := source
	if schemeOf(source) == "file" {
		u, err := url.Parse(source)
		if err != nil {
			return "", fmt.Errorf("parsing %s: %w", source, err)
		}
		path = u.Path
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("opening file: %w", err)
	}

	return DecodeBody(source, data, "", f.Charset)
}
