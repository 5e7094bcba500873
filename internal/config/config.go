// internal/config/config.go

// Package config loads the optional TOML run file. Keys mirror the long
// flag names; only keys actually present in the file are applied, and any
// flag the user set explicitly on the command line stays authoritative.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"ampliscan/internal/cli"
)

// fileConfig is the run-file key mapping.
type fileConfig struct {
	Forward    string `toml:"forward"`
	Reverse    string `toml:"reverse"`
	Probe      string `toml:"probe"`
	Primers    string `toml:"primers"`
	Genomes    string `toml:"genomes"`
	Engine     string `toml:"engine"`
	EnginePath string `toml:"engine_path"`
	Mismatches int    `toml:"mismatches"`
	MinLength  int    `toml:"min_length"`
	MaxLength  int    `toml:"max_length"`
	Threads    int    `toml:"threads"`
	Timeout    string `toml:"timeout"`
	Output     string `toml:"output"`
	ProductsOut string `toml:"products_out"`
	Summary    bool   `toml:"summary"`
	Progress   bool   `toml:"progress"`
	Outdir     string `toml:"outdir"`
	DryRun     bool   `toml:"dry_run"`
}

// Apply overlays values from the TOML file at path onto opt. setFlags names
// the long-form flags the user passed explicitly; those are never touched.
func Apply(path string, opt *cli.Options, setFlags map[string]bool) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load run config: %w", err)
	}
	if und := meta.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return fmt.Errorf("run config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	use := func(key, flagName string) bool {
		return meta.IsDefined(key) && !setFlags[flagName]
	}

	if use("forward", "forward") {
		opt.Fwd = strings.TrimSpace(raw.Forward)
	}
	if use("reverse", "reverse") {
		opt.Rev = strings.TrimSpace(raw.Reverse)
	}
	if use("probe", "probe") {
		opt.Probe = strings.TrimSpace(raw.Probe)
	}
	if use("primers", "primers") {
		opt.PrimerFile = strings.TrimSpace(raw.Primers)
	}
	if use("genomes", "genomes") && opt.GenomesDir == "" {
		opt.GenomesDir = strings.TrimSpace(raw.Genomes)
	}
	if use("engine", "engine") {
		opt.Engine = strings.TrimSpace(raw.Engine)
	}
	if use("engine_path", "engine-path") {
		opt.EnginePath = strings.TrimSpace(raw.EnginePath)
	}
	if use("mismatches", "mismatches") {
		opt.Mismatches = raw.Mismatches
	}
	if use("min_length", "min-length") {
		opt.MinLen = raw.MinLength
	}
	if use("max_length", "max-length") {
		opt.MaxLen = raw.MaxLength
	}
	if use("threads", "threads") {
		opt.Threads = raw.Threads
	}
	if use("timeout", "timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return fmt.Errorf("run config %s: timeout: %w", path, err)
		}
		opt.Timeout = d
	}
	if use("output", "output") {
		opt.Output = strings.TrimSpace(raw.Output)
	}
	if use("products_out", "products-out") {
		opt.ProductsOut = strings.TrimSpace(raw.ProductsOut)
	}
	if use("summary", "summary") {
		opt.Summary = raw.Summary
	}
	if use("progress", "progress") {
		opt.Progress = raw.Progress
	}
	if use("outdir", "outdir") {
		opt.Outdir = strings.TrimSpace(raw.Outdir)
	}
	if use("dry_run", "dry-run") {
		opt.DryRun = raw.DryRun
	}
	return nil
}
