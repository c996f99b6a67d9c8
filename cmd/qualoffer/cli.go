package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/qualoffer/etl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Pipeline *etl.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string         `arg:"" optional:"" help:"Salary page URL (defaults to the published data page)"`
	OutputDir string         `short:"o" name:"output-dir" help:"Directory for audit files (default: QUALOFFER_OUTPUT_DIR or .)"`
	Timeout   *time.Duration `short:"t" help:"HTTP fetch timeout (default: QUALOFFER_TIMEOUT or 10s)"`
	Top       *int           `short:"n" help:"Number of top salaries to average (default: 125)"`
	NoAudit   bool           `name:"no-audit" help:"Do not write audit files"`
	Verbose   bool           `short:"v" help:"Log pipeline steps to stderr"`
}

// apply overrides cfg with any flags that were set. Explicit zero or
// negative values are kept so Validate can reject them.
func (c *CLI) apply(cfg *Config) {
	if c.OutputDir != "" {
		cfg.OutputDir = c.OutputDir
	}
	if c.Timeout != nil {
		cfg.Timeout = *c.Timeout
	}
	if c.Top != nil {
		cfg.TopN = *c.Top
	}
	if c.NoAudit {
		cfg.NoAudit = true
	}
	if c.Verbose {
		cfg.LogLevel = "debug"
	}
}

// OfferCmd computes and prints the qualifying offer.
type OfferCmd struct {
	URL string
}
