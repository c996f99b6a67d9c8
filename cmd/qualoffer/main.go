package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/qualoffer"
	"github.com/fwojciec/qualoffer/etl"
	"github.com/fwojciec/qualoffer/fs"
	"github.com/fwojciec/qualoffer/goquery"
	"github.com/fwojciec/qualoffer/gopretty"
	qohttp "github.com/fwojciec/qualoffer/http"
	qoslog "github.com/fwojciec/qualoffer/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config overrides environment configuration. Set before calling Run().
	Config *Config

	// Fetcher replaces the HTTP fetcher for end-to-end testing.
	Fetcher qualoffer.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("qualoffer"),
		kong.Description("Compute the MLB qualifying offer from the published salary table"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		if strings.Contains(err.Error(), "unexpected argument") {
			fmt.Fprintln(stderr, "Program only accepts one user provided argument")
		}
		return fmt.Errorf("usage: qualoffer [flags] [URL]: %w", err)
	}

	cfg := m.Config
	if cfg == nil {
		cfg, err = LoadConfig(".env")
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", qualoffer.ErrorMessage(err))
			return err
		}
	}
	cli.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", qualoffer.ErrorMessage(err))
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var fetcher qualoffer.Fetcher = m.Fetcher
	if fetcher == nil {
		fetcher = qohttp.NewFetcher(qohttp.WithTimeout(cfg.Timeout))
	}

	loader := &etl.Loader{
		Fetcher:    qoslog.NewLoggingFetcher(fetcher, logger),
		DefaultURL: cfg.DefaultURL,
		Logf: func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		},
	}

	reporters := etl.MultiReporter{}
	if !cfg.NoAudit {
		reporters = append(reporters, fs.NewAuditWriter(cfg.OutputDir))
	}
	reporters = append(reporters, gopretty.NewReporter(stdout))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Pipeline: &etl.Pipeline{
			Loader:    qoslog.NewLoggingLoader(loader, logger),
			Extractor: qoslog.NewLoggingExtractor(goquery.NewTableExtractor(), logger),
			Reporter:  qoslog.NewLoggingReporter(reporters, logger),
			OfferSize: cfg.TopN,
		},
	}

	cmd := &OfferCmd{URL: cli.URL}
	return cmd.Run(deps)
}
