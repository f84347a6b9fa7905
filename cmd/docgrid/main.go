// Command docgrid prints the character grid described by a published
// coordinate table.
//
// Usage:
//
//	docgrid [options] <url | path | ->
//
// The source document must contain a table whose rows after the header hold
// x coordinate, character and y coordinate. The grid is written to stdout as
// text unless -format or the -o extension says otherwise.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tsawler/docgrid"
	"github.com/tsawler/docgrid/export"
	"github.com/tsawler/docgrid/format"
	"github.com/tsawler/docgrid/internal/config"
	"github.com/tsawler/docgrid/view"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options are the settings that exist only as flags.
type options struct {
	configPath string
	view       bool
	table      bool
	verbose    bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, opts, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "docgrid: %v\n", err)
		return exitUsage
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := execute(ctx, cfg, opts, stdin, stdout, logger); err != nil {
		logger.Error("decode failed", "source", cfg.Source, "err", err)
		return exitError
	}
	return exitOK
}

// parseArgs builds the configuration from an optional config file and the
// flags. Flags set on the command line win over the file.
func parseArgs(args []string, stderr io.Writer) (config.Config, options, error) {
	fs := flag.NewFlagSet("docgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts      options
		formatStr = fs.String("format", "", "Output format: text, markdown, json, png (default: from -o extension, else text)")
		output    = fs.String("o", "", "Output file (default: stdout)")
		fill      = fs.String("fill", " ", "String written into cells no point covers")
		timeout   = fs.Duration("timeout", 0, "HTTP timeout, e.g. 30s (default: none)")
		userAgent = fs.String("user-agent", "", "User-Agent header for HTTP sources")
		charset   = fs.String("charset", "", "Force the source charset, e.g. iso-8859-1 (default: detect)")
		maxCells  = fs.Int("max-cells", 0, "Fail when the grid would exceed this many cells (0: no limit)")
		scale     = fs.Int("scale", 2, "Scale factor for png output")
	)
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	fs.BoolVar(&opts.view, "view", false, "Show the grid in an interactive terminal viewer")
	fs.BoolVar(&opts.table, "table", false, "Print the scanned table as markdown instead of the grid")
	fs.BoolVar(&opts.verbose, "v", false, "Log decode statistics to stderr")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: docgrid [options] <url | path | ->\n\n")
		fmt.Fprintf(stderr, "Rebuilds the character grid described by a published (x, char, y) table.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  docgrid https://docs.google.com/document/d/e/.../pub\n")
		fmt.Fprintf(stderr, "  docgrid -o grid.png saved.html\n")
		fmt.Fprintf(stderr, "  curl -s $URL | docgrid -format json -\n")
		fmt.Fprintf(stderr, "  docgrid -view -config docgrid.yaml\n")
	}

	if err := fs.Parse(args); err != nil {
		return config.Config{}, opts, err
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, opts, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *formatStr
		case "o":
			cfg.Output = *output
		case "fill":
			cfg.Fill = *fill
		case "timeout":
			cfg.Timeout = config.Duration(*timeout)
		case "user-agent":
			cfg.UserAgent = *userAgent
		case "charset":
			cfg.Charset = *charset
		case "max-cells":
			cfg.MaxCells = *maxCells
		case "scale":
			cfg.Scale = *scale
		}
	})

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Source = fs.Arg(0)
	default:
		return config.Config{}, opts, fmt.Errorf("expected one source, got %d", fs.NArg())
	}
	if cfg.Source == "" {
		fs.Usage()
		return config.Config{}, opts, errors.New("no source given")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, opts, err
	}
	return cfg, opts, nil
}

// execute runs one decode with the final configuration.
func execute(ctx context.Context, cfg config.Config, opts options, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	var dec *docgrid.Decoder
	if cfg.Source == "-" {
		dec = docgrid.FromReader(stdin)
	} else {
		dec = docgrid.Open(cfg.Source)
	}
	dec = dec.Fill(cfg.Fill).
		MaxCells(cfg.MaxCells).
		Timeout(time.Duration(cfg.Timeout)).
		Charset(cfg.Charset)
	if cfg.UserAgent != "" {
		dec = dec.UserAgent(cfg.UserAgent)
	}

	if opts.table {
		t, err := dec.Table(ctx)
		if err != nil {
			return err
		}
		logger.Debug("scanned table", "source", cfg.Source, "rows", len(t.Rows))
		return writeOutput(cfg.Output, stdout, func(w io.Writer) error {
			_, err := io.WriteString(w, t.ToMarkdown())
			return err
		})
	}

	start := time.Now()
	res, err := dec.Result(ctx)
	if err != nil {
		return err
	}
	logger.Debug("decoded",
		"source", cfg.Source,
		"rows", len(res.Table.Rows),
		"data_rows", len(res.Table.DataRows()),
		"points", len(res.Points),
		"width", res.Grid.Width(),
		"height", res.Grid.Height(),
		"elapsed", time.Since(start),
	)

	if res.Grid == nil {
		logger.Debug("no points found, nothing to write", "source", cfg.Source)
		return nil
	}

	if opts.view {
		return view.Show(res.Grid, cfg.Source)
	}

	exp, err := newExporter(cfg)
	if err != nil {
		return err
	}
	return writeOutput(cfg.Output, stdout, func(w io.Writer) error {
		return exp.Export(w, res.Grid)
	})
}

// newExporter picks the output format from the configuration, falling back
// to the output file extension and then to text.
func newExporter(cfg config.Config) (export.Exporter, error) {
	f := format.Text
	switch {
	case cfg.Format != "":
		f = format.Parse(cfg.Format)
		if f == format.Unknown {
			return nil, fmt.Errorf("unknown format %q", cfg.Format)
		}
	case cfg.Output != "":
		if detected := format.Detect(cfg.Output); detected != format.Unknown {
			f = detected
		}
	}

	exp, err := export.NewExporter(f)
	if err != nil {
		return nil, err
	}
	if p, ok := exp.(*export.PNGExporter); ok {
		p.Scale = cfg.Scale
	}
	return exp, nil
}

// writeOutput runs write against stdout or the named file.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
