package docgrid

import (
	"time"

	"github.com/tsawler/docgrid/fetch"
	"github.com/tsawler/docgrid/model"
)

// DecodeOptions holds configuration for fetching and decoding.
type DecodeOptions struct {
	// Grid assembly
	fill     string // written into uncovered cells
	maxCells int    // 0 means unlimited

	// Transport
	fetcher   fetch.Fetcher // nil means a SourceFetcher built from the fields below
	timeout   time.Duration // 0 means no timeout
	userAgent string
	charset   string // forced body charset, "" to detect
}

// defaultOptions returns the default decode options.
func defaultOptions() DecodeOptions {
	return DecodeOptions{
		fill:      model.DefaultFill,
		maxCells:  0,
		fetcher:   nil,
		timeout:   0,
		userAgent: fetch.DefaultUserAgent,
		charset:   "",
	}
}

// clone creates a copy of DecodeOptions. The fetcher is shared.
func (o DecodeOptions) clone() DecodeOptions {
	return DecodeOptions{
		fill:      o.fill,
		maxCells:  o.maxCells,
		fetcher:   o.fetcher,
		timeout:   o.timeout,
		userAgent: o.userAgent,
		charset:   o.charset,
	}
}

// resolveFetcher returns the configured fetcher, or builds a SourceFetcher
// from the transport options.
func (o DecodeOptions) resolveFetcher() fetch.Fetcher {
	if o.fetcher != nil {
		return o.fetcher
	}

	f := fetch.NewSourceFetcher()
	f.HTTP.UserAgent = o.userAgent
	f.HTTP.Charset = o.charset
	f.File.Charset = o.charset
	if o.timeout > 0 {
		f.HTTP = f.HTTP.WithTimeout(o.timeout)
	}
	return f
}
