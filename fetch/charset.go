package fetch

import (
	"bytes"
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/tsawler/docgrid/format"
)

// prescanLen is how far into a document a <meta> charset declaration is
// looked for, matching the HTML encoding sniffing algorithm.
const prescanLen = 1024

// DecodeBody rejects binary payloads and converts data to UTF-8. source only
// names the data in errors.
//
// A non-empty forced charset wins. Otherwise a byte order mark, the charset
// parameter of contentType or a <meta> declaration decides. Undeclared data
// that is valid UTF-8 stays UTF-8; anything else is decoded with the
// encoding sniffed from its head.
func DecodeBody(source string, data []byte, contentType, forced string) (string, error) {
	if format.IsBinary(data) {
		return "", fmt.Errorf("fetching %s: %w", source, ErrBinaryBody)
	}

	enc, err := determineEncoding(data, contentType, forced)
	if err != nil {
		return "", err
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", source, err)
	}
	return string(out), nil
}

func determineEncoding(data []byte, contentType, forced string) (encoding.Encoding, error) {
	if forced != "" {
		e, err := htmlindex.Get(forced)
		if err != nil {
			return nil, fmt.Errorf("charset %q: %w", forced, err)
		}
		return e, nil
	}

	enc, _, certain := charset.DetermineEncoding(data, contentType)
	if certain || declaresCharset(data[:min(prescanLen, len(data))]) {
		return enc, nil
	}
	// The sniffer only sees the head, so an ASCII head followed by UTF-8
	// text would otherwise come out as windows-1252.
	if utf8.Valid(data) {
		return encoding.Nop, nil
	}
	return enc, nil
}

// declaresCharset reports whether head contains a <meta charset> or a
// <meta http-equiv="Content-Type"> with a charset parameter.
func declaresCharset(head []byte) bool {
	z := html.NewTokenizer(bytes.NewReader(head))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) != "meta" || !hasAttr {
				continue
			}
			if metaDeclaresCharset(z) {
				return true
			}
		}
	}
}

func metaDeclaresCharset(z *html.Tokenizer) bool {
	var httpEquiv, content string
	for {
		key, val, more := z.TagAttr()
		switch string(key) {
		case "charset":
			if strings.TrimSpace(string(val)) != "" {
				return true
			}
		case "http-equiv":
			httpEquiv = string(val)
		case "content":
			content = string(val)
		}
		if !more {
			break
		}
	}

	if !strings.EqualFold(strings.TrimSpace(httpEquiv), "content-type") {
		return false
	}
	_, params, err := mime.ParseMediaType(content)
	return err == nil && params["charset"] != ""
}
