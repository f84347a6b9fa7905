package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docgrid.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
source: https://example.com/doc
format: png
output: grid.png
fill: "."
timeout: 1m30s
user_agent: tester/1.0
charset: iso-8859-1
max_cells: 10000
scale: 4
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Config{
		Source:    "https://example.com/doc",
		Format:    "png",
		Output:    "grid.png",
		Fill:      ".",
		Timeout:   Duration(90 * time.Second),
		UserAgent: "tester/1.0",
		Charset:   "iso-8859-1",
		MaxCells:  10000,
		Scale:     4,
	}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "source: doc.html\n"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Fill != " " {
		t.Errorf("Fill = %q, want single space", cfg.Fill)
	}
	if cfg.Scale != 2 {
		t.Errorf("Scale = %d, want 2", cfg.Scale)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", cfg.Timeout)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", "colour: red\n", "colour"},
		{"bad duration", "timeout: soon\n", "soon"},
		{"empty fill", "fill: \"\"\n", "fill"},
		{"negative cells", "max_cells: -1\n", "max_cells"},
		{"zero scale", "scale: 0\n", "scale"},
		{"negative timeout", "timeout: -5s\n", "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	if _, err := Load("/nonexistent/docgrid.yaml"); err == nil {
		t.Error("Load() expected error for nonexistent file")
	}
}

func TestDuration_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(struct {
		Timeout Duration `yaml:"timeout"`
	}{Duration(45 * time.Second)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got := strings.TrimSpace(string(out)); got != "timeout: 45s" {
		t.Errorf("Marshal() = %q, want %q", got, "timeout: 45s")
	}
}
