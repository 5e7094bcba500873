// internal/app/app.go

// Package app wires the CLI surface to the analysis pipeline: parse and
// merge options, build the primer spec and engine adapter, scan the genome
// tree, run the screen and render the report.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"ampliscan-core/primer"
	"ampliscan/internal/analysis"
	"ampliscan/internal/cli"
	"ampliscan/internal/config"
	"ampliscan/internal/engine"
	"ampliscan/internal/genomes"
	"ampliscan/internal/logx"
	"ampliscan/internal/progress"
	"ampliscan/internal/report"
	"ampliscan/internal/version"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitConfigError = 2
	ExitRunError    = 3
	ExitInterrupted = 130
)

// Run parses argv and executes one screen without an external context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext is the top-level entry used by cmd/ampliscan and the
// integration tests. It never panics across the boundary; every failure
// maps to an exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("ampliscan")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		// Register flags so the usage text can show real defaults.
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		cli.UsageTo(stderr, fs)
		return ExitOK
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.UsageTo(stdout, fs)
			return ExitOK
		}
		fmt.Fprintln(stderr, err)
		cli.UsageTo(stderr, fs)
		return ExitConfigError
	}
	if opts.Version {
		fmt.Fprintf(stdout, "ampliscan version %s\n", version.Version)
		return ExitOK
	}

	if opts.ConfigFile != "" {
		if err := config.Apply(opts.ConfigFile, &opts, cli.SetFlags(fs)); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitConfigError
		}
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitConfigError
	}

	log, closeLog, err := logx.New(stderr, opts.Outdir, opts.Verbose, opts.Quiet)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitRunError
	}
	defer closeLog()

	spec, err := buildSpec(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitConfigError
	}

	targets, species, err := genomes.Scan(opts.GenomesDir)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitConfigError
	}
	log.Info().
		Str("root", opts.GenomesDir).
		Int("species", len(species)).
		Int("genomes", len(targets)).
		Msg("genome collection scanned")
	if opts.DryRun {
		logInventory(log, targets)
	}

	runner, cleanup, err := newRunner(opts, spec, log)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitConfigError
	}
	defer cleanup()

	thr := opts.Threads
	if thr == 0 {
		thr = runtime.NumCPU()
	}
	cfg := analysis.Config{
		Spec:     spec,
		Threads:  thr,
		Observer: observer(opts, thr, stderr),
		Log:      log,
	}

	rep, err := analysis.Run(parent, runner, cfg, targets, species)
	if err != nil {
		var ce *engine.ConfigError
		switch {
		case errors.As(err, &ce):
			fmt.Fprintln(stderr, err)
			return ExitConfigError
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			fmt.Fprintln(stderr, "interrupted")
			return ExitInterrupted
		default:
			fmt.Fprintln(stderr, err)
			return ExitRunError
		}
	}

	if code := render(stdout, stderr, opts, rep); code != ExitOK {
		return code
	}
	if opts.ProductsOut != "" {
		if err := report.WriteProductsFASTA(opts.ProductsOut, rep); err != nil {
			fmt.Fprintln(stderr, err)
			return ExitRunError
		}
		log.Info().Str("path", opts.ProductsOut).Msg("product FASTA written")
	}
	return ExitOK
}

// buildSpec resolves the primer spec from a TSV file or the inline flags.
// TSV min/max fall back to the flag values when the file omits them.
func buildSpec(opts cli.Options) (primer.Spec, error) {
	if opts.PrimerFile != "" {
		specs, err := primer.LoadTSV(opts.PrimerFile)
		if err != nil {
			return primer.Spec{}, err
		}
		if len(specs) != 1 {
			return primer.Spec{}, fmt.Errorf("%s: want exactly one primer set, got %d", opts.PrimerFile, len(specs))
		}
		s := specs[0]
		if s.MinProduct == 0 {
			s.MinProduct = opts.MinLen
		}
		if s.MaxProduct == 0 {
			s.MaxProduct = opts.MaxLen
		}
		if s.Probe == "" {
			s.Probe = strings.ToUpper(opts.Probe)
		}
		s.MaxMismatch = opts.Mismatches
		return s, nil
	}
	return primer.Spec{
		ID:          "manual",
		Forward:     strings.ToUpper(opts.Fwd),
		Reverse:     strings.ToUpper(opts.Rev),
		Probe:       strings.ToUpper(opts.Probe),
		MinProduct:  opts.MinLen,
		MaxProduct:  opts.MaxLen,
		MaxMismatch: opts.Mismatches,
	}, nil
}

// newRunner builds the selected engine adapter. The cleanup func removes
// any run-scoped scratch files.
func newRunner(opts cli.Options, spec primer.Spec, log zerolog.Logger) (engine.Runner, func(), error) {
	binary := opts.EnginePath
	if binary == "" {
		binary = opts.Engine
	}
	switch opts.Engine {
	case cli.EngineIpcr:
		return engine.NewIpcr(binary, spec, opts.Timeout, opts.DryRun, log), func() {}, nil
	default:
		r, err := engine.NewIpcress(binary, spec, opts.Timeout, opts.DryRun, log)
		if err != nil {
			return nil, func() {}, err
		}
		return r, func() { _ = r.Close() }, nil
	}
}

// observer picks the progress bar for interactive parallel runs; serial,
// quiet and dry runs stay silent.
func observer(opts cli.Options, threads int, stderr io.Writer) analysis.Observer {
	if !opts.Progress || opts.Quiet || opts.DryRun || threads <= 1 {
		return nil
	}
	return progress.New(stderr)
}

func logInventory(log zerolog.Logger, targets []genomes.Target) {
	for _, t := range targets {
		n, err := genomes.CountRecords(t.Path)
		if err != nil {
			log.Warn().Err(err).Str("species", t.Species).Str("genome", t.ID).Msg("unreadable genome file")
			continue
		}
		log.Info().
			Str("species", t.Species).
			Str("genome", t.ID).
			Int("records", n).
			Msg("inventory")
	}
}

func render(stdout, stderr io.Writer, opts cli.Options, rep report.AnalysisReport) int {
	outw := bufio.NewWriter(stdout)
	var err error
	switch opts.Output {
	case "json":
		err = report.WriteJSON(outw, rep)
	case "tsv":
		err = report.WriteTSV(outw, rep, true)
	case "grid":
		err = report.WriteText(outw, rep, report.Grid, opts.Summary)
	default:
		err = report.WriteText(outw, rep, report.Plain, opts.Summary)
	}
	if err == nil {
		err = outw.Flush()
	}
	if err != nil && !isBrokenPipe(err) {
		fmt.Fprintln(stderr, err)
		return ExitRunError
	}
	return ExitOK
}

// isBrokenPipe reports whether the report writer lost its reader, e.g.
// `ampliscan ... | head`. That is not an error worth a non-zero exit.
func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
