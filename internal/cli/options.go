// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"dnadist-core/model"
	"dnadist/internal/cliutil"
	"dnadist/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string

	// Estimation
	Model     string
	Bootstrap int
	Seed      uint64

	// Performance
	Threads int

	// Output
	Output string
	Header bool // true unless --no-header

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: evolutionary distances between aligned DNA sequences

Reads aligned multi-FASTA (plain or gzipped, '-' for stdin), counts
substitutions for every sequence pair and prints a distance matrix.

Version: %s

Usage:
  %s [options] alignment.fa[.gz] [...]

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	// Estimation
	fs.StringVar(&opt.Model, "model", "jc", "distance model: raw | jc | kimura [jc]")
	fs.StringVar(&opt.Model, "m", "jc", "alias of --model")
	fs.IntVar(&opt.Bootstrap, "bootstrap", 0, "number of bootstrapped matrices to append [0]")
	fs.IntVar(&opt.Bootstrap, "b", 0, "alias of --bootstrap")
	fs.Uint64Var(&opt.Seed, "seed", 0, "seed for bootstrap resampling (0 = time-based) [0]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&opt.Output, "output", "phylip", "output format: phylip | tsv | jsonl [phylip]")
	fs.StringVar(&opt.Output, "o", "phylip", "alias of --output")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line (tsv) [false]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	posArgs = append(posArgs, fs.Args()...)
	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.SeqFiles = files
	opt.Header = !noHeader

	return opt, validate(&opt)
}

func validate(opt *Options) error {
	if _, err := model.ParseModel(opt.Model); err != nil {
		return err
	}
	if len(opt.SeqFiles) == 0 {
		return errors.New("at least one aligned FASTA file is required")
	}
	if opt.Bootstrap < 0 {
		return errors.New("--bootstrap must be ≥ 0")
	}
	if opt.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch opt.Output {
	case "phylip", "tsv", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", opt.Output)
	}
	return nil
}
