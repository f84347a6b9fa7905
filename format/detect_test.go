package format

import (
	"bytes"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Text, "text"},
		{Markdown, "markdown"},
		{JSON, "json"},
		{PNG, "png"},
		{Unknown, "unknown"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Text, ".txt"},
		{Markdown, ".md"},
		{JSON, ".json"},
		{PNG, ".png"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Binary(t *testing.T) {
	if !PNG.Binary() {
		t.Error("PNG.Binary() = false, want true")
	}
	for _, f := range []Format{Text, Markdown, JSON, Unknown} {
		if f.Binary() {
			t.Errorf("%v.Binary() = true, want false", f)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"grid.txt", Text},
		{"grid.TXT", Text},
		{"grid.text", Text},
		{"grid.md", Markdown},
		{"grid.Markdown", Markdown},
		{"grid.json", JSON},
		{"grid.png", PNG},
		{"grid.PNG", PNG},
		{"/path/to/grid.png", PNG},
		{"grid.html", Unknown},
		{"grid", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"text", Text},
		{"ASCII", Text},
		{"txt", Text},
		{" md ", Markdown},
		{"markdown", Markdown},
		{"JSON", JSON},
		{"png", PNG},
		{"svg", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Parse(tt.name); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"PDF", []byte("%PDF-1.4"), true},
		{"ZIP", []byte{0x50, 0x4B, 0x03, 0x04, 0x00}, true},
		{"PNG", []byte{0x89, 'P', 'N', 'G', '\r', '\n'}, true},
		{"GIF", []byte("GIF89a"), true},
		{"JPEG", []byte{0xFF, 0xD8, 0xFF, 0xE0}, true},
		{"gzip", []byte{0x1F, 0x8B, 0x08}, true},
		{"NUL byte", []byte("abc\x00def"), true},
		{"HTML", []byte("<!DOCTYPE html><html></html>"), false},
		{"plain text", []byte("Hello, World!"), false},
		{"UTF-8 text", []byte("héllo █"), false},
		{"empty", []byte{}, false},
		{"NUL past sniff window", append(bytes.Repeat([]byte("a"), 600), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBinary(tt.data); got != tt.want {
				t.Errorf("IsBinary() = %v, want %v", got, tt.want)
			}
		})
	}
}
