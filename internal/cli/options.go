// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"seqcheck/internal/cliutil"
	"seqcheck/internal/config"
	"seqcheck/internal/engine"
	"seqcheck/internal/output"
	"seqcheck/internal/runutil"
	"seqcheck/internal/version"
)

// ErrHelp is returned by ParseArgs when help was requested.
var ErrHelp = pflag.ErrHelp

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Inputs     []string
	ConfigFile string

	// Detection
	Window        int // effective window after profile resolution
	Fixture       bool
	Strategy      engine.Strategy
	RangeStrategy engine.RangeStrategy

	// Performance
	Threads int // 0=all CPUs
	Jobs    int

	// Output
	Output            string
	Header            bool // true unless --no-header
	NoAnomalyExitCode int

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// raw holds flag values before validation.
type raw struct {
	inputs        []string
	configFile    string
	window        int
	fixture       bool
	strategy      string
	rangeStrategy string
	threads       int
	jobs          int
	output        string
	noHeader      bool
	noAnomalyExit int
	quiet         bool
	verbose       bool
	version       bool
}

// NewCommand returns the root command with no flags registered yet.
func NewCommand(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [flags] [file ...]",
		Short: "find the first sequence value that is not a sum of two recent predecessors",
		Long: fmt.Sprintf(`%s: sum-of-two-predecessors sequence checker

Version: %s

Each input holds one unsigned integer per line ('-' or no input = STDIN,
.gz accepted). For every input the first value that is not the sum of two
distinct values among the preceding --window values is reported, followed
by the first contiguous run (length >= 2) summing to it and min+max of
that run.`, name, version.Version),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func register(fs *pflag.FlagSet, r *raw) {
	// Input
	fs.StringArrayVarP(&r.inputs, "input", "i", nil, "input file (repeatable, '-' = STDIN)")
	fs.StringVarP(&r.configFile, "config", "c", "", "YAML config file")

	// Detection
	fs.IntVarP(&r.window, "window", "w", 0, fmt.Sprintf("preceding values considered (0=auto: %d, or %d with --fixture)", runutil.DefaultWindow, runutil.FixtureWindow))
	fs.BoolVar(&r.fixture, "fixture", false, "use the small-fixture window profile")
	fs.StringVarP(&r.strategy, "strategy", "s", string(engine.StrategyTwoPointer), "pair check: twopointer | table | brute")
	fs.StringVar(&r.rangeStrategy, "range-strategy", string(engine.RangeBinary), "range search: binary | scan")

	// Performance
	fs.IntVarP(&r.threads, "threads", "t", 1, "scan threads per input (0=all CPUs)")
	fs.IntVarP(&r.jobs, "jobs", "j", 1, "inputs analysed concurrently")

	// Output
	fs.StringVarP(&r.output, "output", "o", output.FormatText, "output: text | json | jsonl")
	fs.BoolVar(&r.noHeader, "no-header", false, "suppress header line in text output")
	fs.IntVar(&r.noAnomalyExit, "no-anomaly-exit-code", 1, "exit code when no input has an anomaly")

	// Misc
	fs.BoolVarP(&r.quiet, "quiet", "q", false, "log errors only")
	fs.BoolVar(&r.verbose, "verbose", false, "debug logging")
	fs.BoolVarP(&r.version, "version", "v", false, "print version and exit")
}

// ParseArgs registers flags on cmd, parses argv and returns validated
// Options. Values from --config fill in every flag not given explicitly.
func ParseArgs(cmd *cobra.Command, argv []string) (Options, error) {
	var r raw
	var opt Options
	register(cmd.Flags(), &r)

	ran := false
	cmd.RunE = func(c *cobra.Command, args []string) error {
		ran = true
		if r.version {
			opt.Version = true
			return nil
		}
		var err error
		opt, err = finalize(c.Flags(), &r, args)
		return err
	}
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	if err := cmd.Execute(); err != nil {
		return opt, err
	}
	if !ran {
		return opt, ErrHelp
	}
	return opt, nil
}

func finalize(fs *pflag.FlagSet, r *raw, args []string) (Options, error) {
	if r.configFile != "" {
		f, err := config.Load(r.configFile)
		if err != nil {
			return Options{}, err
		}
		applyConfig(fs, r, f)
	}

	opt := Options{
		ConfigFile:        r.configFile,
		Fixture:           r.fixture,
		Threads:           r.threads,
		Jobs:              r.jobs,
		Output:            r.output,
		Header:            !r.noHeader,
		NoAnomalyExitCode: r.noAnomalyExit,
		Quiet:             r.quiet,
		Verbose:           r.verbose,
	}

	// Validation
	// A window of 1 has no two distinct positions; engine.ValidateWindow
	// rejects it too, this just fails before any input is read.
	if r.window < 0 || r.window == 1 {
		return opt, errors.New("--window must be 0 (auto) or ≥ 2")
	}
	opt.Window = runutil.ComputeWindow(r.window, r.fixture)

	var err error
	if opt.Strategy, err = engine.ParseStrategy(r.strategy); err != nil {
		return opt, fmt.Errorf("invalid --strategy: %w", err)
	}
	if opt.RangeStrategy, err = engine.ParseRangeStrategy(r.rangeStrategy); err != nil {
		return opt, fmt.Errorf("invalid --range-strategy: %w", err)
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Jobs < 1 {
		return opt, errors.New("--jobs must be ≥ 1")
	}
	if !slices.Contains(output.Formats, opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.NoAnomalyExitCode < 0 || opt.NoAnomalyExitCode > 255 {
		return opt, errors.New("--no-anomaly-exit-code must be in 0..255")
	}
	if opt.Quiet && opt.Verbose {
		return opt, errors.New("--quiet conflicts with --verbose")
	}

	if opt.Inputs, err = cliutil.Inputs(r.inputs, args); err != nil {
		return opt, err
	}
	return opt, nil
}

// applyConfig copies config values into r for flags the user did not set.
func applyConfig(fs *pflag.FlagSet, r *raw, f config.File) {
	unset := func(name string) bool { return !fs.Changed(name) }

	if f.Window != nil && unset("window") {
		r.window = *f.Window
	}
	if f.Fixture != nil && unset("fixture") {
		r.fixture = *f.Fixture
	}
	if f.Strategy != "" && unset("strategy") {
		r.strategy = f.Strategy
	}
	if f.RangeStrategy != "" && unset("range-strategy") {
		r.rangeStrategy = f.RangeStrategy
	}
	if f.Threads != nil && unset("threads") {
		r.threads = *f.Threads
	}
	if f.Jobs != nil && unset("jobs") {
		r.jobs = *f.Jobs
	}
	if f.Output != "" && unset("output") {
		r.output = f.Output
	}
	if f.Header != nil && unset("no-header") {
		r.noHeader = !*f.Header
	}
	if f.NoAnomalyExitCode != nil && unset("no-anomaly-exit-code") {
		r.noAnomalyExit = *f.NoAnomalyExitCode
	}
}
