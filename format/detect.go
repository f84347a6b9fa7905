// Package format names the output formats a decoded grid can be written in
// and sniffs fetched bodies that are not text.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text writes one line per grid row.
	Text
	// Markdown wraps the text rendering in a fenced code block.
	Markdown
	// JSON writes the bounds, size and rendered rows as a JSON object.
	JSON
	// PNG rasterizes the text rendering.
	PNG
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case Markdown:
		return "markdown"
	case JSON:
		return "json"
	case PNG:
		return "png"
	default:
		return "unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case Markdown:
		return ".md"
	case JSON:
		return ".json"
	case PNG:
		return ".png"
	default:
		return ""
	}
}

// Binary reports whether the format produces non-text output.
func (f Format) Binary() bool {
	return f == PNG
}

// Detect determines the output format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".text":
		return Text
	case ".md", ".markdown":
		return Markdown
	case ".json":
		return JSON
	case ".png":
		return PNG
	default:
		return Unknown
	}
}

// Parse maps a format name, as accepted on the command line, to a Format.
// Matching is case-insensitive.
func Parse(name string) Format {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "txt", "ascii":
		return Text
	case "markdown", "md":
		return Markdown
	case "json":
		return JSON
	case "png":
		return PNG
	default:
		return Unknown
	}
}

// binaryMagic lists signatures of document and image formats that are never
// decoded as text.
var binaryMagic = [][]byte{
	[]byte("%PDF"),
	{0x50, 0x4B, 0x03, 0x04}, // ZIP (DOCX, ODT, XLSX, ...)
	{0x89, 'P', 'N', 'G'},    // PNG
	[]byte("GIF8"),           // GIF
	{0xFF, 0xD8, 0xFF},       // JPEG
	{0x1F, 0x8B},             // gzip
}

// IsBinary reports whether data looks like a binary payload rather than
// text: it starts with a known binary signature or contains a NUL byte in its
// first 512 bytes.
func IsBinary(data []byte) bool {
	for _, magic := range binaryMagic {
		if bytes.HasPrefix(data, magic) {
			return true
		}
	}

	head := data[:min(512, len(data))]
	return bytes.IndexByte(head, 0) >= 0
}
