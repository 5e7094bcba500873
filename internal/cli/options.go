// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"ampliscan/internal/version"
)

// Engine names accepted by --engine.
const (
	EngineIpcress = "ipcress"
	EngineIpcr    = "ipcr"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Primer input
	Fwd        string
	Rev        string
	Probe      string
	PrimerFile string

	// Genomes
	GenomesDir string

	// Engine
	Engine     string
	EnginePath string
	Mismatches int
	MinLen     int
	MaxLen     int
	Timeout    time.Duration

	// Performance
	Threads int

	// Output
	Output      string // text | grid | tsv | json
	ProductsOut string
	Summary     bool
	Progress    bool
	Outdir      string

	// Misc
	ConfigFile string
	DryRun     bool
	Quiet      bool
	Verbose    bool
	Version    bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError and the grouped
// usage text installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	usage(fs, name)
	return fs
}

func usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – amplicon screening across genome collections\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [options] <genomes_root>\n", name)

		fmt.Fprintln(out, "\nPrimers:")
		fmt.Fprintln(out, "  -f, --forward string        Forward primer sequence (5'→3') [*]")
		fmt.Fprintln(out, "  -r, --reverse string        Reverse primer sequence (5'→3') [*]")
		fmt.Fprintln(out, "  -P, --probe string          Internal probe sequence (optional)")
		fmt.Fprintln(out, "  -p, --primers string        Primer TSV (id fwd rev [min] [max]); conflicts with -f/-r")

		fmt.Fprintln(out, "\nEngine:")
		fmt.Fprintf(out, "      --engine string         In-silico PCR engine: ipcress | ipcr [%s]\n", def("engine"))
		fmt.Fprintln(out, "      --engine-path string    Engine binary path (defaults to the engine name on PATH)")
		fmt.Fprintf(out, "  -m, --mismatches int        Engine mismatch tolerance [%s]\n", def("mismatches"))
		fmt.Fprintf(out, "      --min-length int        Minimum product length [%s]\n", def("min-length"))
		fmt.Fprintf(out, "      --max-length int        Maximum product length [%s]\n", def("max-length"))
		fmt.Fprintf(out, "      --timeout duration      Per-invocation engine timeout (0 = none) [%s]\n", def("timeout"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0 = all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "      --output string         Report format: text | grid | tsv | json [%s]\n", def("output"))
		fmt.Fprintln(out, "      --products-out string   Write amplicon sequences as FASTA (.gz supported)")
		fmt.Fprintf(out, "      --summary               Append per-species summary to text outputs [%s]\n", def("summary"))
		fmt.Fprintf(out, "      --progress              Progress bar on parallel runs [%s]\n", def("progress"))
		fmt.Fprintf(out, "  -o, --outdir string         Output/log directory [%s]\n", def("outdir"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --genomes string        Genomes root directory (or positional argument)")
		fmt.Fprintln(out, "      --config string         TOML run config; explicit flags win")
		fmt.Fprintln(out, "      --dry-run               Log engine commands and genome inventory without executing")
		fmt.Fprintln(out, "  -q, --quiet                 Warnings and errors only")
		fmt.Fprintln(out, "      --verbose               Debug-level logging")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// Register wires every flag onto fs. The genomes root may also be given as
// the single positional argument; ParseArgs resolves the two.
func Register(fs *flag.FlagSet, opt *Options) *bool {
	fs.StringVar(&opt.Fwd, "forward", "", "forward primer (5'→3')")
	fs.StringVar(&opt.Fwd, "f", "", "alias of --forward")
	fs.StringVar(&opt.Rev, "reverse", "", "reverse primer (5'→3')")
	fs.StringVar(&opt.Rev, "r", "", "alias of --reverse")
	fs.StringVar(&opt.Probe, "probe", "", "internal probe sequence")
	fs.StringVar(&opt.Probe, "P", "", "alias of --probe")
	fs.StringVar(&opt.PrimerFile, "primers", "", "TSV primer file")
	fs.StringVar(&opt.PrimerFile, "p", "", "alias of --primers")

	fs.StringVar(&opt.GenomesDir, "genomes", "", "genomes root directory")

	fs.StringVar(&opt.Engine, "engine", EngineIpcress, "engine: ipcress | ipcr")
	fs.StringVar(&opt.EnginePath, "engine-path", "", "engine binary path")
	fs.IntVar(&opt.Mismatches, "mismatches", 3, "max mismatches per primer")
	fs.IntVar(&opt.Mismatches, "m", 3, "alias of --mismatches")
	fs.IntVar(&opt.MinLen, "min-length", 60, "minimum product length")
	fs.IntVar(&opt.MaxLen, "max-length", 200, "maximum product length")
	fs.DurationVar(&opt.Timeout, "timeout", 10*time.Minute, "per-invocation engine timeout (0 = none)")

	fs.IntVar(&opt.Threads, "threads", 1, "worker threads (0 = all CPUs)")
	fs.IntVar(&opt.Threads, "t", 1, "alias of --threads")

	fs.StringVar(&opt.Output, "output", "text", "report format: text | grid | tsv | json")
	fs.StringVar(&opt.ProductsOut, "products-out", "", "amplicon FASTA path")
	fs.BoolVar(&opt.Summary, "summary", true, "append per-species summary")
	fs.BoolVar(&opt.Progress, "progress", true, "progress bar on parallel runs")
	fs.StringVar(&opt.Outdir, "outdir", ".", "output/log directory")
	fs.StringVar(&opt.Outdir, "o", ".", "alias of --outdir")

	fs.StringVar(&opt.ConfigFile, "config", "", "TOML run config")
	fs.BoolVar(&opt.DryRun, "dry-run", false, "log commands without executing")
	fs.BoolVar(&opt.Quiet, "quiet", false, "warnings and errors only")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug-level logging")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")

	help := false
	fs.BoolVar(&help, "help", false, "show help")
	fs.BoolVar(&help, "h", false, "alias of --help")
	return &help
}

// ParseArgs registers and parses all flags; positionals may appear anywhere.
// Validation happens separately so config-file values can be merged first.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	help := Register(fs, &opt)

	flagArgs, posArgs := SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if *help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch {
	case len(posArgs) > 1:
		return opt, fmt.Errorf("expected one genomes root, got %d: %v", len(posArgs), posArgs)
	case len(posArgs) == 1:
		if opt.GenomesDir != "" && opt.GenomesDir != posArgs[0] {
			return opt, errors.New("--genomes and the positional genomes root conflict")
		}
		opt.GenomesDir = posArgs[0]
	}
	return opt, nil
}

// Validate checks cross-flag constraints. Call after any config merge.
func (o *Options) Validate() error {
	if o.PrimerFile != "" && (o.Fwd != "" || o.Rev != "") {
		return errors.New("--primers conflicts with --forward/--reverse")
	}
	if o.PrimerFile == "" && (o.Fwd == "" || o.Rev == "") {
		return errors.New("provide --forward and --reverse, or a --primers TSV")
	}
	if o.GenomesDir == "" {
		return errors.New("genomes root is required (positional or --genomes)")
	}
	switch o.Engine {
	case EngineIpcress, EngineIpcr:
	default:
		return fmt.Errorf("unknown --engine %q (want %s or %s)", o.Engine, EngineIpcress, EngineIpcr)
	}
	switch o.Output {
	case "text", "grid", "tsv", "json":
	default:
		return fmt.Errorf("unknown --output %q (want text, grid, tsv or json)", o.Output)
	}
	if o.Mismatches < 0 {
		return errors.New("--mismatches must be >= 0")
	}
	if o.MinLen <= 0 || o.MaxLen <= 0 || o.MinLen > o.MaxLen {
		return fmt.Errorf("bad product length bounds %d..%d", o.MinLen, o.MaxLen)
	}
	if o.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	if o.Timeout < 0 {
		return errors.New("--timeout must be >= 0")
	}
	return nil
}

// SetFlags reports the flag names the user set explicitly, with aliases
// folded onto their long form. Config-file merging uses this to keep
// explicit flags authoritative.
func SetFlags(fs *flag.FlagSet) map[string]bool {
	aliases := map[string]string{
		"f": "forward", "r": "reverse", "P": "probe", "p": "primers",
		"m": "mismatches", "t": "threads", "o": "outdir",
		"q": "quiet", "v": "version", "h": "help",
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := aliases[name]; ok {
			name = long
		}
		set[name] = true
	})
	return set
}

// UsageTo prints the usage text to w regardless of the FlagSet's output.
func UsageTo(w io.Writer, fs *flag.FlagSet) {
	old := fs.Output()
	fs.SetOutput(w)
	fs.Usage()
	fs.SetOutput(old)
}

// boolFlags returns names of registered flags that take no value.
func boolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals while
// preserving '-', '--' and '--x=y' semantics, so the genomes root may
// follow or precede any flag.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	bools := boolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			posArgs = append(posArgs, arg)
			continue
		}
		if strings.Contains(arg, "=") {
			flagArgs = append(flagArgs, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		flagArgs = append(flagArgs, arg)
		if !bools[name] && i+1 < len(argv) {
			flagArgs = append(flagArgs, argv[i+1])
			i++
		}
	}
	return
}
